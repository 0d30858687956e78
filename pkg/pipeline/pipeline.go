// Package pipeline composes the molviz rendering stages.
//
// The pipeline is parse → ring classification → layout → render:
// a notation string goes in, a complete SVG document comes out. The
// whole path is synchronous and purely functional; every call builds
// fresh state, so concurrent calls are safe without locks.
//
// # Usage
//
// The one-shot entry point guarantees a valid SVG string for any
// input, including garbage:
//
//	svg := pipeline.Render("CC(=O)O", pipeline.Options{Width: 500})
//
// The Runner variant adds structured logging, stage timings, and
// parser diagnostics:
//
//	runner := pipeline.NewRunner(logger)
//	result := runner.Run("CC(=O)O", pipeline.Options{})
//	fmt.Println(result.Stats.AtomCount, len(result.Diagnostics))
package pipeline

import (
	"fmt"
	"strings"

	"github.com/molviz/molviz/pkg/layout"
	"github.com/molviz/molviz/pkg/render"
	"github.com/molviz/molviz/pkg/smiles"
)

// Options configures one rendering run. The zero value renders with
// all defaults. Fields mirror the render options; the struct supports
// JSON serialization so embedding applications can pass it through
// request payloads.
type Options struct {
	Width             float64 `json:"width,omitempty"`               // default 400
	Height            float64 `json:"height,omitempty"`              // default 400
	BondWidth         float64 `json:"bond_width,omitempty"`          // default 2
	DoubleBondSpacing float64 `json:"double_bond_spacing,omitempty"` // default 4
	FontSize          float64 `json:"font_size,omitempty"`           // default 14
	ShowCarbons       bool    `json:"show_carbons,omitempty"`        // label every carbon
	ShowHydrogens     bool    `json:"show_hydrogens,omitempty"`      // hydrogen counts on carbons
	Padding           float64 `json:"padding,omitempty"`             // default 20
	BondMargin        float64 `json:"bond_margin,omitempty"`         // default 6

	// Palette overrides drawing colors; the zero value uses the
	// default black-on-white palette. Not serialized.
	Palette render.Palette `json:"-"`
}

// renderOptions maps pipeline options onto normalized render options.
func (o Options) renderOptions() render.Options {
	ro := render.Options{
		Width:             o.Width,
		Height:            o.Height,
		BondWidth:         o.BondWidth,
		DoubleBondSpacing: o.DoubleBondSpacing,
		FontSize:          o.FontSize,
		ShowCarbons:       o.ShowCarbons,
		ShowHydrogens:     o.ShowHydrogens,
		Padding:           o.Padding,
		BondMargin:        o.BondMargin,
		Palette:           o.Palette,
	}
	ro.Normalize()
	return ro
}

// Render runs the full pipeline and always returns a complete SVG
// document:
//
//   - empty or all-whitespace notation yields the placeholder graphic
//   - malformed notation degrades into whatever partial structure the
//     lenient parser built
//   - an unexpected panic in any stage is caught here, once, and
//     converted into a graphic carrying the error message
//
// No error ever propagates to the caller.
func Render(notation string, opts Options) (svg string) {
	ro := opts.renderOptions()
	defer func() {
		if r := recover(); r != nil {
			svg = render.ErrorSVG(fmt.Sprint(r), ro)
		}
	}()

	if strings.TrimSpace(notation) == "" {
		return render.Placeholder(ro)
	}

	m := smiles.Parse(notation)
	layout.Assign(m)
	return render.SVG(m, ro)
}
