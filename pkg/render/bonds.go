package render

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/molviz/molviz/pkg/mol"
)

// drawBond emits the SVG for bond i. Line style follows skeletal
// conventions: one line for order 1 (or a wedge/hash for stereo
// bonds), parallel pairs and triples for orders 2 and 3, and a dashed
// line for aromatic bonds. Endpoints are pulled back from labeled
// atoms so lines do not run into text.
func drawBond(buf *bytes.Buffer, m *mol.Molecule, i int, labels []string, opts Options, scale float64) {
	b := &m.Bonds[i]
	pa := m.Atoms[b.A].Pos
	pb := m.Atoms[b.B].Pos

	dir := r2.Sub(pb, pa)
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 {
		return
	}
	unit := r2.Scale(1/length, dir)

	// Pull each endpoint clear of its label: half the text height plus
	// the configured margin, in on-screen pixels.
	clearance := (opts.FontSize*labelHalfHeight + opts.BondMargin) / scale
	if labels[b.A] != "" {
		pa = r2.Add(pa, r2.Scale(clearance, unit))
	}
	if labels[b.B] != "" {
		pb = r2.Sub(pb, r2.Scale(clearance, unit))
	}

	width := opts.BondWidth / scale
	perp := r2.Vec{X: -unit.Y, Y: unit.X}
	spacing := opts.DoubleBondSpacing / scale

	switch {
	case b.Aromatic:
		dashedLine(buf, pa, pb, width, opts, scale)
	case b.Order == 2:
		off := r2.Scale(spacing/2+width/2, perp)
		line(buf, r2.Add(pa, off), r2.Add(pb, off), width, opts)
		line(buf, r2.Sub(pa, off), r2.Sub(pb, off), width, opts)
	case b.Order == 3:
		off := r2.Scale(spacing+width, perp)
		line(buf, pa, pb, width, opts)
		line(buf, r2.Add(pa, off), r2.Add(pb, off), width, opts)
		line(buf, r2.Sub(pa, off), r2.Sub(pb, off), width, opts)
	case b.Dir == mol.DirUp:
		wedge(buf, pa, pb, perp, width, opts)
	case b.Dir == mol.DirDown:
		dashedLine(buf, pa, pb, width, opts, scale)
	default:
		line(buf, pa, pb, width, opts)
	}
}

func line(buf *bytes.Buffer, a, b r2.Vec, width float64, opts Options) {
	fmt.Fprintf(buf,
		`    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		a.X, a.Y, b.X, b.Y, opts.Palette.Bond, width)
}

func dashedLine(buf *bytes.Buffer, a, b r2.Vec, width float64, opts Options, scale float64) {
	fmt.Fprintf(buf,
		`    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-dasharray="%.2f %.2f"/>`+"\n",
		a.X, a.Y, b.X, b.Y, opts.Palette.Bond, width, 5/scale, 4/scale)
}

// wedge draws a filled triangle: narrow at a, widening toward b, the
// conventional rendering for a bond pointing at the viewer.
func wedge(buf *bytes.Buffer, a, b, perp r2.Vec, width float64, opts Options) {
	half := r2.Scale(width*2.5, perp)
	p1 := r2.Add(b, half)
	p2 := r2.Sub(b, half)
	fmt.Fprintf(buf,
		`    <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
		a.X, a.Y, p1.X, p1.Y, p2.X, p2.Y, opts.Palette.Bond)
}
