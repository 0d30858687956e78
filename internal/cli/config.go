package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/molviz/molviz/pkg/errors"
	"github.com/molviz/molviz/pkg/pipeline"
	"github.com/molviz/molviz/pkg/render"
)

// styleConfig mirrors the optional TOML style file passed with
// --config. Every field is optional; unset fields keep their default.
//
//	background   = "white"
//	bond_color   = "#1a1a1a"
//	label_color  = "#1a1a1a"
//	muted_color  = "#888888"
//	font_family  = "Helvetica, Arial, sans-serif"
//	bond_width   = 2.0
//	font_size    = 14.0
type styleConfig struct {
	Background string  `toml:"background"`
	BondColor  string  `toml:"bond_color"`
	LabelColor string  `toml:"label_color"`
	MutedColor string  `toml:"muted_color"`
	FontFamily string  `toml:"font_family"`
	BondWidth  float64 `toml:"bond_width"`
	FontSize   float64 `toml:"font_size"`
}

// loadStyleConfig decodes a TOML style file. Unknown keys are
// rejected so typos surface instead of silently doing nothing.
func loadStyleConfig(path string) (styleConfig, error) {
	var cfg styleConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return styleConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load style config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return styleConfig{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// apply copies the configured values onto pipeline options, filling
// palette gaps with the renderer defaults. Command-line flags that
// were set explicitly (nonzero) win over the config file.
func (c styleConfig) apply(opts *pipeline.Options) {
	p := render.DefaultPalette()
	if c.Background != "" {
		p.Background = c.Background
	}
	if c.BondColor != "" {
		p.Bond = c.BondColor
	}
	if c.LabelColor != "" {
		p.Label = c.LabelColor
	}
	if c.MutedColor != "" {
		p.Muted = c.MutedColor
	}
	if c.FontFamily != "" {
		p.FontFamily = c.FontFamily
	}
	opts.Palette = p

	if opts.BondWidth == 0 && c.BondWidth > 0 {
		opts.BondWidth = c.BondWidth
	}
	if opts.FontSize == 0 && c.FontSize > 0 {
		opts.FontSize = c.FontSize
	}
}
