// Package cli implements the morph command-line interface.
//
// Commands:
//   - solve: lay out a scene file and print the boxes
//   - check: validate scene files without solving them
//   - batch: solve many scene files concurrently and summarize them
//   - version: print build information
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// through the command's context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information shown by --version and the version
// command. It is called from main with values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context, stdout, stderr io.Writer) error {
	root := newRootCmd(stderr)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "morph",
		Short:         "morph lays out box trees described in scene files",
		Long:          `morph solves stretch-based box layouts: rows and columns of boxes with fixed, percentage, automatic and stretch sizes and spacing.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func versionString() string {
	return fmt.Sprintf("morph %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionString())
		},
	}
}
