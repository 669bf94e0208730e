package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/progress"
	"github.com/docnav/docnav/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a static documentation website",
	Long:  `Renders every page listed in the navigation trees to a self-contained static site, with sidebar, previous/next links and a search index.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Bool("serve", false, "start the live server after building")
	buildCmd.Flags().Int("port", 0, "port for the server (defaults to server.port)")
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, logger, router, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	generator := site.NewGenerator(renderer, router, outputDir)
	generator.Logger = logger
	generator.Progress = progress.NewReporter()

	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	orphans, err := orphanSources(cfg, router)
	if err != nil {
		return err
	}
	for _, o := range orphans {
		logger.Warn("markdown page is not in any navigation tree",
			zap.String("source", o.RelPath),
			zap.String("link", o.Link),
		)
	}

	if serveFlag, _ := cmd.Flags().GetBool("serve"); serveFlag {
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}
		return serve(cfg, logger, router, port)
	}
	return nil
}
