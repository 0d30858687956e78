package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/molviz/molviz/pkg/layout"
	"github.com/molviz/molviz/pkg/mol"
	"github.com/molviz/molviz/pkg/render"
	"github.com/molviz/molviz/pkg/smiles"
)

// Runner executes the pipeline with structured logging and timing.
// It is stateless apart from the logger; a single Runner can serve
// concurrent calls with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the rendered document. Always a complete SVG string,
	// even when the input was empty or malformed.
	SVG string

	// Molecule is the parsed (and laid out) graph, nil only when the
	// input was empty. Exposed so callers can export it in other
	// formats without re-parsing.
	Molecule *mol.Molecule

	// Diagnostics lists every lenient-parsing recovery. Empty for
	// clean input.
	Diagnostics []smiles.Diagnostic

	// Stats contains size and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	AtomCount  int
	BondCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Run executes parse → layout → render. Like [Render] it never fails:
// panics are recovered and converted into an error graphic on the
// returned result.
func (r *Runner) Run(notation string, opts Options) (result *Result) {
	ro := opts.renderOptions()
	result = &Result{}
	defer func() {
		if rec := recover(); rec != nil {
			r.Logger.Error("render pipeline panicked", "err", rec)
			result.SVG = render.ErrorSVG(fmt.Sprint(rec), ro)
		}
	}()

	if strings.TrimSpace(notation) == "" {
		r.Logger.Debug("empty notation, rendering placeholder")
		result.SVG = render.Placeholder(ro)
		return result
	}

	parseStart := time.Now()
	m, diags := smiles.ParseWithDiagnostics(notation)
	result.Molecule = m
	result.Diagnostics = diags
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.AtomCount = m.AtomCount()
	result.Stats.BondCount = m.BondCount()
	r.Logger.Info("parsed notation",
		"atoms", m.AtomCount(),
		"bonds", m.BondCount(),
		"diagnostics", len(diags),
		"duration", result.Stats.ParseTime)
	for _, d := range diags {
		r.Logger.Warn("notation recovered", "pos", d.Pos, "code", d.Code, "detail", d.Message)
	}

	layoutStart := time.Now()
	layout.Assign(m)
	result.Stats.LayoutTime = time.Since(layoutStart)
	r.Logger.Debug("computed layout", "duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	result.SVG = render.SVG(m, ro)
	result.Stats.RenderTime = time.Since(renderStart)
	r.Logger.Info("rendered structure",
		"bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	return result
}
