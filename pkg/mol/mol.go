package mol

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrUnknownAtom is returned by [Molecule.AddBond] when a bond endpoint
	// references an atom index that does not exist in the molecule.
	ErrUnknownAtom = errors.New("bond endpoint references unknown atom")

	// ErrSelfBond is returned by [Molecule.AddBond] when both endpoints of
	// a bond are the same atom. SMILES cannot express self-bonds and the
	// layout stage assumes none exist.
	ErrSelfBond = errors.New("bond endpoints must differ")

	// ErrInvalidBondOrder is returned by [Molecule.AddBond] when the bond
	// order is not one of 1, 1.5, 2 or 3.
	ErrInvalidBondOrder = errors.New("bond order must be 1, 1.5, 2 or 3")
)

// ChiralParity is the tetrahedral stereo descriptor parsed from a
// bracket atom (`@` or `@@`). It is carried through the graph so a
// renderer can pick wedge directions, but no 3D interpretation is done.
type ChiralParity int

const (
	// ParityNone means the atom carries no stereo descriptor.
	ParityNone ChiralParity = iota
	// ParityAnticlockwise corresponds to `@`.
	ParityAnticlockwise
	// ParityClockwise corresponds to `@@`.
	ParityClockwise
)

// BondDirection is the stereo marker on a bond (`/` up, `\` down).
type BondDirection int

const (
	// DirNone is a plain bond with no stereo marker.
	DirNone BondDirection = iota
	// DirUp is a wedge bond pointing toward the viewer (`/`).
	DirUp
	// DirDown is a hashed bond pointing away from the viewer (`\`).
	DirDown
)

// Atom is a vertex of the molecular graph. Atoms are stored by value
// inside a [Molecule] and addressed by their Index; incident bonds are
// recorded as indices into the molecule's bond slice so the structure
// contains no reference cycles.
//
// Pos is undefined until the layout stage assigns it; Placed reports
// whether that has happened.
type Atom struct {
	Element  string       // element symbol, 1-2 letters, canonical case ("C", "Cl")
	Index    int          // position in Molecule.Atoms, assigned by AddAtom
	Aromatic bool         // parsed from a lowercase atom letter
	Charge   int          // formal charge, signed
	HCount   int          // explicit hydrogen count from bracket notation
	HKnown   bool         // whether HCount was stated explicitly
	Isotope  int          // isotope mass number, 0 when unspecified
	Parity   ChiralParity // tetrahedral stereo descriptor
	Pos      r2.Vec       // 2D position, set by layout
	Placed   bool         // whether Pos has been assigned
	Bonds    []int        // indices into Molecule.Bonds, in creation order
}

// Bond is an edge of the molecular graph connecting the atoms at
// indices A and B. Order is 1, 2, 3, or 1.5 for aromatic bonds whose
// endpoints are both aromatic.
type Bond struct {
	A, B     int           // endpoint atom indices
	Order    float64       // 1, 1.5, 2 or 3
	Dir      BondDirection // wedge/hash stereo marker
	Aromatic bool          // drawn dashed when true
}

// Other returns the endpoint of b that is not atom i.
// If i is not an endpoint of b, it returns A.
func (b Bond) Other(i int) int {
	if b.A == i {
		return b.B
	}
	return b.A
}

// Molecule is an arena for atoms and bonds. It owns all storage:
// bonds reference atoms by index and atoms list incident bonds by
// index, so the graph has explicit single ownership and no cycles.
//
// The zero value is usable, but New is preferred for symmetry with the
// rest of the package. Molecule is not safe for concurrent mutation;
// the rendering pipeline builds a fresh Molecule per call and never
// shares one across goroutines.
type Molecule struct {
	Atoms []Atom
	Bonds []Bond
}

// New returns an empty molecule.
func New() *Molecule {
	return &Molecule{}
}

// AddAtom appends a to the molecule, assigns its Index, and returns it.
// Any Bonds list on the argument is discarded; adjacency is maintained
// exclusively by AddBond.
func (m *Molecule) AddAtom(a Atom) int {
	a.Index = len(m.Atoms)
	a.Bonds = nil
	m.Atoms = append(m.Atoms, a)
	return a.Index
}

// AddBond appends b and records it on both endpoint atoms.
// The bond order must be one of the four permitted values and both
// endpoints must already exist.
func (m *Molecule) AddBond(b Bond) (int, error) {
	if b.A < 0 || b.A >= len(m.Atoms) || b.B < 0 || b.B >= len(m.Atoms) {
		return 0, ErrUnknownAtom
	}
	if b.A == b.B {
		return 0, ErrSelfBond
	}
	switch b.Order {
	case 1, 1.5, 2, 3:
	default:
		return 0, ErrInvalidBondOrder
	}
	idx := len(m.Bonds)
	m.Bonds = append(m.Bonds, b)
	m.Atoms[b.A].Bonds = append(m.Atoms[b.A].Bonds, idx)
	m.Atoms[b.B].Bonds = append(m.Atoms[b.B].Bonds, idx)
	return idx, nil
}

// Atom returns a pointer to the atom at index i.
func (m *Molecule) Atom(i int) *Atom { return &m.Atoms[i] }

// Bond returns a pointer to the bond at index i.
func (m *Molecule) Bond(i int) *Bond { return &m.Bonds[i] }

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.Atoms) }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return len(m.Bonds) }

// Neighbors returns the atom indices adjacent to atom i, in bond
// creation order.
func (m *Molecule) Neighbors(i int) []int {
	a := &m.Atoms[i]
	out := make([]int, 0, len(a.Bonds))
	for _, bi := range a.Bonds {
		out = append(out, m.Bonds[bi].Other(i))
	}
	return out
}

// BondOrderSum returns the total order of all bonds incident to atom i.
// Aromatic bonds contribute their 1.5 order.
func (m *Molecule) BondOrderSum(i int) float64 {
	var sum float64
	for _, bi := range m.Atoms[i].Bonds {
		sum += m.Bonds[bi].Order
	}
	return sum
}

// Validate checks internal consistency: every bond references existing
// atoms and every atom's bond list points back at it. A molecule built
// only through AddAtom and AddBond always validates; this exists for
// graphs reconstructed from serialized form.
func (m *Molecule) Validate() error {
	for _, b := range m.Bonds {
		if b.A < 0 || b.A >= len(m.Atoms) || b.B < 0 || b.B >= len(m.Atoms) {
			return ErrUnknownAtom
		}
		if b.A == b.B {
			return ErrSelfBond
		}
	}
	for i := range m.Atoms {
		for _, bi := range m.Atoms[i].Bonds {
			if bi < 0 || bi >= len(m.Bonds) {
				return ErrUnknownAtom
			}
			b := m.Bonds[bi]
			if b.A != i && b.B != i {
				return ErrUnknownAtom
			}
		}
	}
	return nil
}
