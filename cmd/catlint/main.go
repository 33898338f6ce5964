// Package main is the entry point for the catlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/catlint/internal/cli"
	"github.com/yaklabco/catlint/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrFindings) {
		// ErrFindings is just a signal for the exit code; everything else
		// is a real failure worth logging.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeForError(err)
}
