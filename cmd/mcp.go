package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/docnav/docnav/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the documentation navigation (page lists, previous/next pages, sidebar state) to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, router, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		pages := 0
		for _, s := range router.Sets() {
			pages += len(s.Pages())
		}
		fmt.Fprintf(os.Stderr, "docnav MCP server started on stdio (sets=%d, pages=%d)\n", len(router.Sets()), pages)
		logger.Debug("mcp server starting", zap.String("config", cfgFile))

		srv := mcpserver.NewServer(router)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
