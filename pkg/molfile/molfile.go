// Package molfile serializes molecular graphs to and from JSON.
//
// The format is human-readable and designed for round-trip fidelity:
// parse → export → re-import produces an identical graph, including
// layout positions when present. It is the CLI's json output format
// and a convenient fixture format for tests.
package molfile

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/molviz/molviz/pkg/mol"
)

// Stereo descriptor strings used in the serialized form.
const (
	parityClockwise     = "@@"
	parityAnticlockwise = "@"

	dirUp   = "up"
	dirDown = "down"
)

// Document is the canonical serialization format for molecules.
type Document struct {
	Atoms []AtomRecord `json:"atoms"`
	Bonds []BondRecord `json:"bonds"`
}

// AtomRecord is one atom in serialized form. Atom order in the slice
// is index order, so indices are implicit.
type AtomRecord struct {
	Element   string  `json:"element"`
	Aromatic  bool    `json:"aromatic,omitempty"`
	Charge    int     `json:"charge,omitempty"`
	Hydrogens int     `json:"hydrogens,omitempty"`
	HExplicit bool    `json:"hydrogens_explicit,omitempty"`
	Isotope   int     `json:"isotope,omitempty"`
	Parity    string  `json:"parity,omitempty"` // "@" or "@@"
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Placed    bool    `json:"placed,omitempty"`
}

// BondRecord is one bond in serialized form, referencing atoms by
// their position in the atoms array.
type BondRecord struct {
	A        int     `json:"a"`
	B        int     `json:"b"`
	Order    float64 `json:"order"`
	Dir      string  `json:"dir,omitempty"` // "up" or "down"
	Aromatic bool    `json:"aromatic,omitempty"`
}

// FromMolecule converts a molecule to its serialization format.
// Atoms keep their index order, so output is deterministic.
func FromMolecule(m *mol.Molecule) Document {
	doc := Document{
		Atoms: make([]AtomRecord, len(m.Atoms)),
		Bonds: make([]BondRecord, len(m.Bonds)),
	}
	for i, a := range m.Atoms {
		doc.Atoms[i] = AtomRecord{
			Element:   a.Element,
			Aromatic:  a.Aromatic,
			Charge:    a.Charge,
			Hydrogens: a.HCount,
			HExplicit: a.HKnown,
			Isotope:   a.Isotope,
			Parity:    parityString(a.Parity),
			X:         a.Pos.X,
			Y:         a.Pos.Y,
			Placed:    a.Placed,
		}
	}
	for i, b := range m.Bonds {
		doc.Bonds[i] = BondRecord{
			A:        b.A,
			B:        b.B,
			Order:    b.Order,
			Dir:      dirString(b.Dir),
			Aromatic: b.Aromatic,
		}
	}
	return doc
}

// ToMolecule converts a Document back to a molecule. It returns an
// error when a bond references a missing atom or carries an invalid
// order, so corrupted files are rejected rather than rebuilt partially.
func ToMolecule(doc Document) (*mol.Molecule, error) {
	m := mol.New()
	for _, ar := range doc.Atoms {
		m.AddAtom(mol.Atom{
			Element:  ar.Element,
			Aromatic: ar.Aromatic,
			Charge:   ar.Charge,
			HCount:   ar.Hydrogens,
			HKnown:   ar.HExplicit,
			Isotope:  ar.Isotope,
			Parity:   parityFromString(ar.Parity),
			Pos:      r2.Vec{X: ar.X, Y: ar.Y},
			Placed:   ar.Placed,
		})
	}
	for i, br := range doc.Bonds {
		b := mol.Bond{
			A:        br.A,
			B:        br.B,
			Order:    br.Order,
			Dir:      dirFromString(br.Dir),
			Aromatic: br.Aromatic,
		}
		if _, err := m.AddBond(b); err != nil {
			return nil, fmt.Errorf("bond %d (%d-%d): %w", i, br.A, br.B, err)
		}
	}
	return m, nil
}

func parityString(p mol.ChiralParity) string {
	switch p {
	case mol.ParityClockwise:
		return parityClockwise
	case mol.ParityAnticlockwise:
		return parityAnticlockwise
	default:
		return ""
	}
}

func parityFromString(s string) mol.ChiralParity {
	switch s {
	case parityClockwise:
		return mol.ParityClockwise
	case parityAnticlockwise:
		return mol.ParityAnticlockwise
	default:
		return mol.ParityNone
	}
}

func dirString(d mol.BondDirection) string {
	switch d {
	case mol.DirUp:
		return dirUp
	case mol.DirDown:
		return dirDown
	default:
		return ""
	}
}

func dirFromString(s string) mol.BondDirection {
	switch s {
	case dirUp:
		return mol.DirUp
	case dirDown:
		return mol.DirDown
	default:
		return mol.DirNone
	}
}
