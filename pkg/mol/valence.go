package mol

// A map assigning standard valences to the elements the parser's
// organic subset covers. Elements not listed have no implicit
// hydrogens computed for them.
var symbolValence = map[string]int{
	"C":  4,
	"N":  3,
	"O":  2,
	"S":  2,
	"P":  3,
	"B":  3,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

// StandardValence returns the standard valence for an element symbol
// and whether the element has one in the table.
func StandardValence(element string) (int, bool) {
	v, ok := symbolValence[element]
	return v, ok
}

// ImplicitHydrogens returns the number of hydrogens inferred for atom i
// from its standard valence: max(0, valence - sum of incident bond
// orders - |charge|). Atoms with an explicit hydrogen count and
// elements outside the valence table get zero.
func (m *Molecule) ImplicitHydrogens(i int) int {
	a := &m.Atoms[i]
	if a.HKnown {
		return 0
	}
	valence, ok := symbolValence[a.Element]
	if !ok {
		return 0
	}
	charge := a.Charge
	if charge < 0 {
		charge = -charge
	}
	n := valence - int(m.BondOrderSum(i)) - charge
	if n < 0 {
		return 0
	}
	return n
}

// Hydrogens returns the hydrogen count to display for atom i: the
// explicit bracket count when one was given, otherwise the implicit
// count derived from standard valence.
func (m *Molecule) Hydrogens(i int) int {
	if m.Atoms[i].HKnown {
		return m.Atoms[i].HCount
	}
	return m.ImplicitHydrogens(i)
}
