package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/connorcarpenter/morph/internal/scene"
)

var errNoScenes = errors.New("no scene files found")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate scene files without solving them",
		Long:  `Check parses every scene file and validates each node's style. Paths may be files, directories or end in /... to search recursively. With no paths the current directory is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.ErrOrStderr(), args)
		},
	}
}

func runCheck(ctx context.Context, stderr io.Writer, paths []string) error {
	logger := loggerFromContext(ctx)
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectScenes(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errNoScenes
	}
	logger.Debugf("Checking %d scene file(s)", len(files))

	failed := 0
	for _, path := range files {
		logger.Debug("checking", "path", path)
		if err := checkScene(path); err != nil {
			fmt.Fprintln(stderr, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) had errors", failed)
	}

	logger.Infof("All %d file(s) passed checks", len(files))
	return nil
}

// checkScene loads a scene and builds its tree, which validates every style.
func checkScene(path string) error {
	sc, err := scene.Load(path)
	if err != nil {
		return err
	}
	if _, _, err := sc.Build(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
