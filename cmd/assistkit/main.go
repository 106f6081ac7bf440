// Package main is the entry point for the assistkit CLI.
package main

import (
	"os"

	"github.com/yaklabco/assistkit/internal/cli"
	"github.com/yaklabco/assistkit/internal/logging"

	// Register built-in handlers via init().
	_ "github.com/yaklabco/assistkit/pkg/assist/handlers"
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
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.Execute()
	if err != nil && !cli.IsSignal(err) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
