package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connorcarpenter/morph"
	"github.com/connorcarpenter/morph/internal/render"
	"github.com/connorcarpenter/morph/internal/scene"
)

const (
	formatText  = "text"  // table of boxes
	formatJSON  = "json"  // nested boxes
	formatSVG   = "svg"   // outlined rectangles
	formatBoxes = "boxes" // character drawing
)

var formats = []string{formatText, formatJSON, formatSVG, formatBoxes}

// solveOpts holds the flags of the solve command. Zero viewport and font
// values keep what the scene file says.
type solveOpts struct {
	output   string
	format   string
	width    float32
	height   float32
	fontSize float32
	scale    float32 // pixels per character column in boxes output
	border   string
}

func newSolveCmd() *cobra.Command {
	opts := solveOpts{format: formatText, scale: 8, border: render.BorderRounded.String()}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Lay out a scene and print its boxes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(formats, ", "))
	cmd.Flags().Float32Var(&opts.width, "width", 0, "viewport width, overrides the scene")
	cmd.Flags().Float32Var(&opts.height, "height", 0, "viewport height, overrides the scene")
	cmd.Flags().Float32Var(&opts.fontSize, "font-size", 0, "font size in pixels, overrides the scene")
	cmd.Flags().Float32Var(&opts.scale, "scale", opts.scale, "pixels per column in boxes output; rows are twice as tall")
	cmd.Flags().StringVar(&opts.border, "border", opts.border, "box style in boxes output: single, double, rounded, thick, ascii")
	return cmd
}

func validateFormat(format string) error {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q, want one of %s", format, strings.Join(formats, ", "))
	}
	return nil
}

// apply overrides the scene's viewport and font with the flags that were
// given.
func (o *solveOpts) apply(sc *scene.Scene) {
	if o.width > 0 {
		sc.Viewport.Width = o.width
	}
	if o.height > 0 {
		sc.Viewport.Height = o.height
	}
	if o.fontSize > 0 {
		sc.Font.Size = o.fontSize
	}
}

func runSolve(ctx context.Context, stdout io.Writer, path string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := scene.Load(path)
	if err != nil {
		return err
	}
	opts.apply(sc)
	logger.Debug("loaded scene", "path", path, "nodes", sc.Count(),
		"viewport", fmt.Sprintf("%gx%g", sc.Viewport.Width, sc.Viewport.Height))

	tree, root, err := sc.Solve(morph.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	write := func(w io.Writer) error {
		return writeFormat(w, tree, root, sc, opts)
	}
	if opts.output == "" {
		err = write(stdout)
	} else {
		var f *os.File
		if f, err = os.Create(opts.output); err != nil {
			return err
		}
		err = writeAndClose(f, write)
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Solved %s", path))
	return nil
}

// writeAndClose runs write against wc and closes it. A failed close is
// reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func writeFormat(w io.Writer, tree *morph.Tree, root morph.Node, sc *scene.Scene, opts *solveOpts) error {
	switch opts.format {
	case formatJSON:
		return render.JSON(w, tree, root)
	case formatSVG:
		return render.SVG{FontSize: sc.Font.Size}.Write(w, tree, root)
	case formatBoxes:
		border, err := render.ParseBorder(opts.border)
		if err != nil {
			return err
		}
		boxes := render.Boxes{CellWidth: opts.scale, CellHeight: opts.scale * 2, Border: border}
		g, err := boxes.Draw(tree, root)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, g.StringTrimmed())
		return err
	default:
		out, err := render.Table(tree, root)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
}
