package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/molviz/molviz/pkg/errors"
	"github.com/molviz/molviz/pkg/pipeline"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadStyleConfig(t *testing.T) {
	path := writeTempConfig(t, `
background = "#fdf6e3"
bond_color = "#073642"
font_family = "Georgia, serif"
bond_width = 3.0
`)

	cfg, err := loadStyleConfig(path)
	if err != nil {
		t.Fatalf("loadStyleConfig: %v", err)
	}
	if cfg.Background != "#fdf6e3" {
		t.Errorf("Background = %q, want #fdf6e3", cfg.Background)
	}
	if cfg.BondColor != "#073642" {
		t.Errorf("BondColor = %q, want #073642", cfg.BondColor)
	}
	if cfg.BondWidth != 3.0 {
		t.Errorf("BondWidth = %v, want 3", cfg.BondWidth)
	}
}

func TestLoadStyleConfigUnknownKey(t *testing.T) {
	path := writeTempConfig(t, `bond_colour = "#000000"`)

	_, err := loadStyleConfig(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestLoadStyleConfigMissingFile(t *testing.T) {
	_, err := loadStyleConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStyleConfigApply(t *testing.T) {
	cfg := styleConfig{
		Background: "black",
		BondColor:  "white",
		BondWidth:  5,
		FontSize:   18,
	}

	// Unset flags take the config values.
	opts := pipeline.Options{}
	cfg.apply(&opts)
	if opts.Palette.Background != "black" {
		t.Errorf("Palette.Background = %q, want black", opts.Palette.Background)
	}
	if opts.Palette.Bond != "white" {
		t.Errorf("Palette.Bond = %q, want white", opts.Palette.Bond)
	}
	if opts.Palette.FontFamily == "" {
		t.Error("unset font family should fall back to the default palette")
	}
	if opts.BondWidth != 5 {
		t.Errorf("BondWidth = %v, want 5", opts.BondWidth)
	}
	if opts.FontSize != 18 {
		t.Errorf("FontSize = %v, want 18", opts.FontSize)
	}

	// Explicit flags win over the config file.
	opts = pipeline.Options{BondWidth: 1.5}
	cfg.apply(&opts)
	if opts.BondWidth != 1.5 {
		t.Errorf("BondWidth = %v, want flag value 1.5", opts.BondWidth)
	}
}
