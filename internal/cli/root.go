// Package cli provides the Cobra command structure for catlint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/catlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root catlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "catlint",
		Short: "Validate curated Markdown catalog listings",
		Long: `catlint validates catalog-style Markdown listings: directories of linked
entries laid out as pipe tables under ### category headers.

It ships two checkers: "check" enforces the catalog formatting rules
(category ordering, entry fields, Index cross-references), and "links"
extracts every hyperlink, flags duplicates, and probes liveness over the
network.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newLinksCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
