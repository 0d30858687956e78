package render

import (
	"fmt"

	"github.com/molviz/molviz/pkg/mol"
)

// Estimated text metrics for bounding-box expansion, as fractions of
// the font size. The renderer has no font loaded, so label footprints
// are approximated from character counts.
const (
	labelCharWidth  = 0.62
	labelHalfHeight = 0.60
)

// Label returns the text drawn for atom i under skeletal-formula
// conventions, or "" for an unlabeled chain carbon.
//
// Carbon is unlabeled unless it carries a nonzero charge or
// opts.ShowCarbons is set. Every other element is always labeled with
// its symbol, an isotope mass prefix when present, a hydrogen-count
// suffix (explicit count, or the implicit count from standard
// valence), and a charge suffix. Hydrogen suffixes on carbon labels
// additionally require opts.ShowHydrogens.
func Label(m *mol.Molecule, i int, opts Options) string {
	a := &m.Atoms[i]

	carbon := a.Element == "C"
	if carbon && a.Charge == 0 && a.Isotope == 0 && !opts.ShowCarbons {
		return ""
	}

	label := a.Element
	if a.Isotope > 0 {
		label = fmt.Sprintf("%d%s", a.Isotope, a.Element)
	}

	// Heteroatoms always carry their hydrogen count; labeled carbons
	// only when asked, except that an explicitly stated count is never
	// hidden.
	if !carbon || opts.ShowHydrogens || a.HKnown {
		if h := m.Hydrogens(i); h > 0 && a.Element != "H" {
			if h == 1 {
				label += "H"
			} else {
				label += fmt.Sprintf("H%d", h)
			}
		}
	}

	if a.Charge != 0 {
		label += chargeSuffix(a.Charge)
	}
	return label
}

// chargeSuffix formats a formal charge in the conventional way:
// +, -, 2+, 3-.
func chargeSuffix(charge int) string {
	sign := "+"
	if charge < 0 {
		sign = "-"
		charge = -charge
	}
	if charge == 1 {
		return sign
	}
	return fmt.Sprintf("%d%s", charge, sign)
}

// labelHalfWidth estimates half the rendered width of a label in
// pixels at the given font size.
func labelHalfWidth(label string, fontSize float64) float64 {
	return float64(len(label)) * fontSize * labelCharWidth / 2
}
