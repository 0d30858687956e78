package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/molviz/molviz/pkg/errors"
	"github.com/molviz/molviz/pkg/molfile"
	"github.com/molviz/molviz/pkg/pipeline"
	"github.com/molviz/molviz/pkg/render"
)

const (
	formatSVG  = "svg"  // skeletal-formula SVG (default)
	formatDOT  = "dot"  // Graphviz DOT source of the connectivity graph
	formatJSON = "json" // serialized molecular graph
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatDOT: true, formatJSON: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string  // output file path (stdout when empty)
	format        string  // svg, dot, or json
	graph         bool    // render the abstract connectivity view instead of the skeletal one
	width         float64 // viewport width in pixels
	height        float64 // viewport height in pixels
	bondWidth     float64 // bond stroke width
	spacing       float64 // parallel line separation for multiple bonds
	fontSize      float64 // label font size
	padding       float64 // frame padding
	bondMargin    float64 // gap between bond ends and labels
	showCarbons   bool    // label every carbon
	showHydrogens bool    // hydrogen counts on carbon labels
	configPath    string  // optional TOML style file
	sample        string  // use a named built-in sample instead of an argument
}

// newRenderCmd creates the render command. It accepts a SMILES string
// (or a --sample name) and writes the rendered output to stdout or a
// file.
//
// Rendering never fails on bad notation: the parser recovers and the
// command prints what it skipped as warnings. Only genuinely broken
// invocations (unknown format, unreadable config, unwritable output)
// return an error.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: formatSVG,
	}

	cmd := &cobra.Command{
		Use:   "render [notation]",
		Short: "Render a SMILES string as a skeletal-formula diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notation, err := resolveNotation(args, opts.sample)
			if err != nil {
				return err
			}
			if !validFormats[opts.format] {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid format: %q (must be 'svg', 'dot', or 'json')", opts.format)
			}
			return runRender(cmd, notation, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout when omitted)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, json")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "render the connectivity graph via Graphviz instead of the skeletal view")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width in pixels (default 400)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height in pixels (default 400)")
	cmd.Flags().Float64Var(&opts.bondWidth, "bond-width", 0, "bond stroke width (default 2)")
	cmd.Flags().Float64Var(&opts.spacing, "bond-spacing", 0, "separation of parallel bond lines (default 4)")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "atom label font size (default 14)")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "frame padding (default 20)")
	cmd.Flags().Float64Var(&opts.bondMargin, "bond-margin", 0, "gap between bond ends and labels (default 6)")
	cmd.Flags().BoolVar(&opts.showCarbons, "show-carbons", false, "label every carbon atom")
	cmd.Flags().BoolVar(&opts.showHydrogens, "show-hydrogens", false, "include hydrogen counts on carbon labels")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML style configuration file")
	cmd.Flags().StringVar(&opts.sample, "sample", "", "render a built-in sample molecule by name")

	return cmd
}

// resolveNotation picks the notation from the positional argument or
// the --sample flag, rejecting ambiguous or empty invocations.
func resolveNotation(args []string, sample string) (string, error) {
	if sample != "" {
		if len(args) > 0 {
			return "", errors.New(errors.ErrCodeInvalidNotation, "pass either a notation argument or --sample, not both")
		}
		s, ok := sampleByName(sample)
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidNotation, "unknown sample %q (see 'molviz samples')", sample)
		}
		return s.Notation, nil
	}
	if len(args) == 0 {
		return "", errors.New(errors.ErrCodeEmptyNotation, "notation argument required (or use --sample)")
	}
	return args[0], nil
}

func runRender(cmd *cobra.Command, notation string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	if err := errors.ValidateNotation(notation); err != nil {
		// Lenient policy: warn, then render whatever comes out, which
		// may be the placeholder or an error graphic.
		logger.Warn("suspicious notation", "reason", errors.UserMessage(err))
	}

	pOpts := pipeline.Options{
		Width:             opts.width,
		Height:            opts.height,
		BondWidth:         opts.bondWidth,
		DoubleBondSpacing: opts.spacing,
		FontSize:          opts.fontSize,
		ShowCarbons:       opts.showCarbons,
		ShowHydrogens:     opts.showHydrogens,
		Padding:           opts.padding,
		BondMargin:        opts.bondMargin,
	}
	if opts.configPath != "" {
		cfg, err := loadStyleConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg.apply(&pOpts)
	}

	runner := pipeline.NewRunner(logger)
	result := runner.Run(notation, pOpts)
	printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)

	out, err := renderOutput(cmd, result, opts)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out, opts.output, result)
}

// renderOutput produces the requested bytes from the pipeline result.
func renderOutput(cmd *cobra.Command, result *pipeline.Result, opts *renderOpts) ([]byte, error) {
	switch {
	case opts.format == formatJSON:
		if result.Molecule == nil {
			return []byte("{\"atoms\":[],\"bonds\":[]}\n"), nil
		}
		return molfile.Marshal(result.Molecule)

	case opts.format == formatDOT || opts.graph:
		if result.Molecule == nil {
			return nil, errors.New(errors.ErrCodeEmptyNotation, "nothing to export for empty input")
		}
		dot := render.ToDOT(result.Molecule)
		if opts.format == formatDOT {
			return []byte(dot), nil
		}
		svg, err := render.RenderDOT(cmd.Context(), dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "graphviz render failed")
		}
		return svg, nil

	default:
		return []byte(result.SVG), nil
	}
}

func writeOutput(cmd *cobra.Command, data []byte, path string, result *pipeline.Result) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSummary(cmd.ErrOrStderr(), path, result)
	return nil
}
