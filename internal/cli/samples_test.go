package cli

import (
	"strings"
	"testing"

	"github.com/molviz/molviz/pkg/pipeline"
	"github.com/molviz/molviz/pkg/smiles"
)

func TestSampleByName(t *testing.T) {
	s, ok := sampleByName("benzene")
	if !ok {
		t.Fatal("benzene should exist")
	}
	if s.Notation != "c1ccccc1" {
		t.Errorf("Notation = %q, want c1ccccc1", s.Notation)
	}

	if _, ok := sampleByName("unobtainium"); ok {
		t.Error("unknown sample should not resolve")
	}
}

// Every shipped sample must parse without diagnostics and render to a
// real drawing, not the placeholder.
func TestSamplesAreClean(t *testing.T) {
	for _, s := range samples {
		t.Run(s.Name, func(t *testing.T) {
			_, diags := smiles.ParseWithDiagnostics(s.Notation)
			if len(diags) > 0 {
				t.Errorf("sample %q produced diagnostics: %v", s.Name, diags)
			}
			svg := pipeline.Render(s.Notation, pipeline.Options{})
			if strings.Contains(svg, "No structure to display") {
				t.Errorf("sample %q rendered as placeholder", s.Name)
			}
		})
	}
}

func TestSampleNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range samples {
		if seen[s.Name] {
			t.Errorf("duplicate sample name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestSampleListModelNavigation(t *testing.T) {
	m := NewSampleListModel(samples)
	if m.Cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.Cursor)
	}

	view := m.View()
	if !strings.Contains(view, samples[0].Name) {
		t.Errorf("view should list %q", samples[0].Name)
	}
}
