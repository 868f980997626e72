package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sitescribe.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitescribe",
		Short: "Crawl a website and summarize its content",
		Long: `Sitescribe crawls a single website breadth-first, extracts structured
content from every page, and writes markdown reports.

Given a YAML file of questions, it also answers them from the crawled
text using pattern and keyword matching. No network calls are made
beyond the crawl itself.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
