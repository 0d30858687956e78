package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/molviz/molviz/pkg/layout"
	"github.com/molviz/molviz/pkg/mol"
)

// maxScale keeps very small molecules from being blown up to fill the
// whole frame; structures smaller than the frame render at most this
// much larger than their layout size.
const maxScale = 1.5

// SVG renders a laid-out molecule as a complete SVG document sized
// exactly opts.Width by opts.Height. An empty molecule produces the
// placeholder graphic. The output depends only on the molecule and
// options, so identical inputs yield byte-identical documents.
func SVG(m *mol.Molecule, opts Options) string {
	opts.Normalize()
	if m == nil || m.AtomCount() == 0 {
		return Placeholder(opts)
	}

	labels := make([]string, m.AtomCount())
	for i := range m.Atoms {
		labels[i] = Label(m, i, opts)
	}

	min, max := labelBounds(m, labels, opts)
	scale := fitScale(min, max, opts)

	var buf bytes.Buffer
	openSVG(&buf, opts)
	fmt.Fprintf(&buf, `  <g transform="translate(%.2f %.2f) scale(%.4f)">`+"\n",
		opts.Width/2, opts.Height/2, scale)

	for i := range m.Bonds {
		drawBond(&buf, m, i, labels, opts, scale)
	}
	for i := range m.Atoms {
		if labels[i] == "" {
			continue
		}
		p := m.Atoms[i].Pos
		fmt.Fprintf(&buf,
			`    <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" fill="%s">%s</text>`+"\n",
			p.X, p.Y, opts.Palette.FontFamily, opts.FontSize/scale, opts.Palette.Label, escapeXML(labels[i]))
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.String()
}

// Placeholder returns the graphic shown for empty or all-whitespace
// input: an empty canvas with a "no structure" note.
func Placeholder(opts Options) string {
	opts.Normalize()
	var buf bytes.Buffer
	openSVG(&buf, opts)
	fmt.Fprintf(&buf,
		`  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" fill="%s">No structure to display</text>`+"\n",
		opts.Width/2, opts.Height/2, opts.Palette.FontFamily, opts.FontSize, opts.Palette.Muted)
	buf.WriteString("</svg>\n")
	return buf.String()
}

// ErrorSVG returns a diagram-sized graphic carrying an inline error
// message. The pipeline uses it to convert unexpected rendering
// failures into displayable output instead of propagating them.
func ErrorSVG(message string, opts Options) string {
	opts.Normalize()
	var buf bytes.Buffer
	openSVG(&buf, opts)
	fmt.Fprintf(&buf,
		`  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" fill="%s">Unable to render structure</text>`+"\n",
		opts.Width/2, opts.Height/2-opts.FontSize, opts.Palette.FontFamily, opts.FontSize, opts.Palette.Muted)
	fmt.Fprintf(&buf,
		`  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f" fill="%s">%s</text>`+"\n",
		opts.Width/2, opts.Height/2+opts.FontSize/2, opts.Palette.FontFamily, opts.FontSize*0.75, opts.Palette.Muted, escapeXML(message))
	buf.WriteString("</svg>\n")
	return buf.String()
}

// openSVG writes the document header and background rect.
func openSVG(buf *bytes.Buffer, opts Options) {
	fmt.Fprintf(buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	if opts.Palette.Background != "" && opts.Palette.Background != "none" {
		fmt.Fprintf(buf, `  <rect width="%.0f" height="%.0f" fill="%s"/>`+"\n",
			opts.Width, opts.Height, opts.Palette.Background)
	}
}

// labelBounds expands the positioned atoms' bounding box by the
// estimated footprint of each label so wide or tall labels are not
// clipped at the frame edge. Footprints are approximations from
// character counts; no font metrics are consulted.
func labelBounds(m *mol.Molecule, labels []string, opts Options) (min, max r2.Vec) {
	min, max = layout.Bounds(m)
	for i := range m.Atoms {
		if labels[i] == "" {
			continue
		}
		p := m.Atoms[i].Pos
		hw := labelHalfWidth(labels[i], opts.FontSize)
		hh := opts.FontSize * labelHalfHeight
		if p.X-hw < min.X {
			min.X = p.X - hw
		}
		if p.X+hw > max.X {
			max.X = p.X + hw
		}
		if p.Y-hh < min.Y {
			min.Y = p.Y - hh
		}
		if p.Y+hh > max.Y {
			max.Y = p.Y + hh
		}
	}
	return min, max
}

// fitScale computes the uniform scale factor fitting the bounding box
// into the frame minus padding.
func fitScale(min, max r2.Vec, opts Options) float64 {
	w := max.X - min.X
	h := max.Y - min.Y
	scale := maxScale
	if w > 0 {
		if s := (opts.Width - 2*opts.Padding) / w; s < scale {
			scale = s
		}
	}
	if h > 0 {
		if s := (opts.Height - 2*opts.Padding) / h; s < scale {
			scale = s
		}
	}
	if scale <= 0 {
		scale = 1
	}
	return scale
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
