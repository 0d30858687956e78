package molfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/molviz/molviz/pkg/layout"
	"github.com/molviz/molviz/pkg/mol"
	"github.com/molviz/molviz/pkg/smiles"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		layout   bool
	}{
		{"Empty", "", false},
		{"AceticAcid", "CC(=O)O", false},
		{"Benzene", "c1ccccc1", false},
		{"Ammonium", "[NH4+]", false},
		{"StereoAndIsotope", "[13C]/C=C\\[C@@H](N)O", false},
		{"WithLayout", "CC(=O)Oc1ccccc1C(=O)O", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := smiles.Parse(tt.notation)
			if tt.layout {
				layout.Assign(orig)
			}

			data, err := Marshal(orig)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			got, err := Read(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}

			if got.AtomCount() != orig.AtomCount() || got.BondCount() != orig.BondCount() {
				t.Fatalf("size = %d/%d, want %d/%d",
					got.AtomCount(), got.BondCount(), orig.AtomCount(), orig.BondCount())
			}
			for i := range orig.Atoms {
				a, b := orig.Atoms[i], got.Atoms[i]
				if a.Element != b.Element || a.Aromatic != b.Aromatic ||
					a.Charge != b.Charge || a.HCount != b.HCount || a.HKnown != b.HKnown ||
					a.Isotope != b.Isotope || a.Parity != b.Parity ||
					a.Pos != b.Pos || a.Placed != b.Placed {
					t.Errorf("atom %d differs: %+v vs %+v", i, a, b)
				}
			}
			for i := range orig.Bonds {
				a, b := orig.Bonds[i], got.Bonds[i]
				if a.A != b.A || a.B != b.B || a.Order != b.Order ||
					a.Dir != b.Dir || a.Aromatic != b.Aromatic {
					t.Errorf("bond %d differs: %+v vs %+v", i, a, b)
				}
			}
		})
	}
}

func TestReadRejectsCorruptBonds(t *testing.T) {
	const doc = `{"atoms":[{"element":"C"}],"bonds":[{"a":0,"b":7,"order":1}]}`
	_, err := Read(strings.NewReader(doc))
	if !errors.Is(err, mol.ErrUnknownAtom) {
		t.Errorf("Read = %v, want ErrUnknownAtom", err)
	}
}

func TestReadRejectsBadJSON(t *testing.T) {
	_, err := Read(strings.NewReader("{not json"))
	if err == nil {
		t.Error("Read accepted malformed JSON")
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mol.json")
	orig := smiles.Parse("CCO")

	if err := WriteFile(orig, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.AtomCount() != 3 || got.BondCount() != 2 {
		t.Errorf("round trip size = %d/%d, want 3/2", got.AtomCount(), got.BondCount())
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(errors.Unwrap(err)) {
		t.Errorf("ReadFile(missing) = %v, want wrapped not-exist", err)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	m := smiles.Parse("c1ccccc1O")
	a, _ := Marshal(m)
	b, _ := Marshal(m)
	if !bytes.Equal(a, b) {
		t.Error("repeated Marshal output differs")
	}
}
