// Command morph lays out box trees described in TOML scene files.
//
// Usage:
//
//	morph solve scene.toml                 Print the solved boxes as a table
//	morph solve -f boxes scene.toml        Draw the boxes with box characters
//	morph solve -f svg -o out.svg scene.toml
//	morph check ./...                      Validate every scene under a directory
//	morph batch -j 4 scenes/               Solve many scenes concurrently
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/connorcarpenter/morph/internal/cli"
)

// Set through ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
