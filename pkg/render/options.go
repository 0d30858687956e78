// Package render turns laid-out molecular graphs into SVG diagrams
// following skeletal-formula drawing conventions: carbon chains are
// drawn as bare lines, heteroatoms get element labels with hydrogen
// counts, and bond order controls the line style.
//
// Rendering is pure string building on a bytes.Buffer; it performs no
// I/O and always returns a complete, well-formed SVG document.
package render

// Default option values. Declared width/height of the emitted SVG
// always match the (defaulted) options exactly.
const (
	DefaultWidth             = 400.0
	DefaultHeight            = 400.0
	DefaultBondWidth         = 2.0
	DefaultDoubleBondSpacing = 4.0
	DefaultFontSize          = 14.0
	DefaultPadding           = 20.0
	DefaultBondMargin        = 6.0
)

// Palette holds the colors and font used by the renderer. All values
// are written verbatim into SVG attributes.
type Palette struct {
	Background string // canvas fill ("none" for transparent)
	Bond       string // bond stroke color
	Label      string // atom label fill color
	Muted      string // placeholder and error text color
	FontFamily string // label font stack
}

// DefaultPalette returns the standard black-on-white drawing colors.
func DefaultPalette() Palette {
	return Palette{
		Background: "white",
		Bond:       "#1a1a1a",
		Label:      "#1a1a1a",
		Muted:      "#888888",
		FontFamily: "Helvetica, Arial, sans-serif",
	}
}

// Options controls diagram geometry and labeling. The zero value is
// usable: Normalize fills every unset field with its default, so
// callers only set what they want to change.
type Options struct {
	Width             float64 // SVG width in pixels
	Height            float64 // SVG height in pixels
	BondWidth         float64 // bond stroke width in pixels
	DoubleBondSpacing float64 // separation between parallel bond lines
	FontSize          float64 // atom label font size in pixels
	ShowCarbons       bool    // label every carbon atom
	ShowHydrogens     bool    // include hydrogen counts on labeled carbons
	Padding           float64 // frame padding in pixels
	BondMargin        float64 // gap between a bond end and a labeled atom
	Palette           Palette // colors and font
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	var o Options
	o.Normalize()
	return o
}

// Normalize fills unset (zero) fields with defaults and clamps
// nonsensical values. It is idempotent.
//
// Boolean fields are left alone; their zero value false is the
// documented default.
func (o *Options) Normalize() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.BondWidth <= 0 {
		o.BondWidth = DefaultBondWidth
	}
	if o.DoubleBondSpacing <= 0 {
		o.DoubleBondSpacing = DefaultDoubleBondSpacing
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Padding <= 0 || o.Padding*2 >= o.Width || o.Padding*2 >= o.Height {
		o.Padding = DefaultPadding
	}
	if o.BondMargin <= 0 {
		o.BondMargin = DefaultBondMargin
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette()
	}
}
