package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docnav",
	Short: "Sidebar and previous/next navigation for markdown documentation sites",
	Long: `docnav reads hierarchical navigation trees describing a documentation
site, flattens them into a reading order, and renders every page with its
sidebar and previous/next links. Pages can be built into a static site,
served live, or queried by AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docnav.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
