package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/connorcarpenter/morph"
	"github.com/connorcarpenter/morph/internal/render"
	"github.com/connorcarpenter/morph/internal/scene"
)

type batchOpts struct {
	jobs   int
	width  float32
	height float32
}

// batchResult is the outcome of solving one scene.
type batchResult struct {
	path  string
	nodes int
	root  morph.Rect
	err   error
}

func newBatchCmd() *cobra.Command {
	opts := batchOpts{jobs: runtime.GOMAXPROCS(0)}

	cmd := &cobra.Command{
		Use:   "batch [path...]",
		Short: "Solve many scene files concurrently",
		Long:  `Batch solves every scene file found under the given paths, several at a time, and prints one line per scene with its root box and the number of nodes laid out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of scenes solved at once")
	cmd.Flags().Float32Var(&opts.width, "width", 0, "viewport width for every scene")
	cmd.Flags().Float32Var(&opts.height, "height", 0, "viewport height for every scene")
	return cmd
}

func runBatch(ctx context.Context, stdout, stderr io.Writer, paths []string, opts batchOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
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

	results := make([]batchResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = solveFile(path, opts, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintln(stderr, r.err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s\t%gx%g\t%d nodes\n", r.path, r.root.Width, r.root.Height, r.nodes)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scene(s) failed", failed, len(files))
	}

	prog.done(fmt.Sprintf("Solved %d scene(s)", len(files)))
	return nil
}

// solveFile solves one scene in its own tree.
func solveFile(path string, opts batchOpts, logger *log.Logger) batchResult {
	res := batchResult{path: path}
	sc, err := scene.Load(path)
	if err != nil {
		res.err = err
		return res
	}
	solve := solveOpts{width: opts.width, height: opts.height}
	solve.apply(sc)

	tree, root, err := sc.Solve(morph.WithLogger(logger))
	if err != nil {
		res.err = fmt.Errorf("%s: %w", path, err)
		return res
	}
	entries, err := render.Collect(tree, root)
	if err != nil {
		res.err = fmt.Errorf("%s: %w", path, err)
		return res
	}
	res.nodes = len(entries)
	res.root = entries[0].Bounds
	return res
}
