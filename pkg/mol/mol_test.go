package mol

import (
	"errors"
	"testing"
)

func TestAddAtomAssignsIndices(t *testing.T) {
	m := New()
	for i, el := range []string{"C", "O", "N"} {
		got := m.AddAtom(Atom{Element: el})
		if got != i {
			t.Errorf("AddAtom(%s) index = %d, want %d", el, got, i)
		}
	}
	if m.AtomCount() != 3 {
		t.Fatalf("AtomCount = %d, want 3", m.AtomCount())
	}
	for i, a := range m.Atoms {
		if a.Index != i {
			t.Errorf("atom %d has Index %d", i, a.Index)
		}
	}
}

func TestAddBond(t *testing.T) {
	tests := []struct {
		name    string
		bond    Bond
		wantErr error
	}{
		{"Single", Bond{A: 0, B: 1, Order: 1}, nil},
		{"Double", Bond{A: 1, B: 2, Order: 2}, nil},
		{"Aromatic", Bond{A: 0, B: 2, Order: 1.5, Aromatic: true}, nil},
		{"UnknownTarget", Bond{A: 0, B: 9, Order: 1}, ErrUnknownAtom},
		{"NegativeSource", Bond{A: -1, B: 1, Order: 1}, ErrUnknownAtom},
		{"Self", Bond{A: 1, B: 1, Order: 1}, ErrSelfBond},
		{"BadOrder", Bond{A: 0, B: 1, Order: 4}, ErrInvalidBondOrder},
		{"ZeroOrder", Bond{A: 0, B: 1, Order: 0}, ErrInvalidBondOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.AddAtom(Atom{Element: "C"})
			m.AddAtom(Atom{Element: "C"})
			m.AddAtom(Atom{Element: "O"})

			_, err := m.AddBond(tt.bond)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddBond error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && m.BondCount() != 1 {
				t.Errorf("BondCount = %d, want 1", m.BondCount())
			}
			if tt.wantErr != nil && m.BondCount() != 0 {
				t.Errorf("failed AddBond still stored a bond")
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	m := New()
	c := m.AddAtom(Atom{Element: "C"})
	o := m.AddAtom(Atom{Element: "O"})
	n := m.AddAtom(Atom{Element: "N"})
	m.AddBond(Bond{A: c, B: o, Order: 2})
	m.AddBond(Bond{A: c, B: n, Order: 1})

	got := m.Neighbors(c)
	if len(got) != 2 || got[0] != o || got[1] != n {
		t.Errorf("Neighbors(C) = %v, want [%d %d]", got, o, n)
	}
	if got := m.Neighbors(o); len(got) != 1 || got[0] != c {
		t.Errorf("Neighbors(O) = %v, want [%d]", got, c)
	}
	if sum := m.BondOrderSum(c); sum != 3 {
		t.Errorf("BondOrderSum(C) = %v, want 3", sum)
	}
}

func TestImplicitHydrogens(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *Molecule) int // returns atom of interest
		want  int
	}{
		{
			name:  "BareCarbon",
			build: func(m *Molecule) int { return m.AddAtom(Atom{Element: "C"}) },
			want:  4,
		},
		{
			name: "Methanol oxygen",
			build: func(m *Molecule) int {
				c := m.AddAtom(Atom{Element: "C"})
				o := m.AddAtom(Atom{Element: "O"})
				m.AddBond(Bond{A: c, B: o, Order: 1})
				return o
			},
			want: 1,
		},
		{
			name: "CarbonylCarbon",
			build: func(m *Molecule) int {
				c := m.AddAtom(Atom{Element: "C"})
				o := m.AddAtom(Atom{Element: "O"})
				m.AddBond(Bond{A: c, B: o, Order: 2})
				return c
			},
			want: 2,
		},
		{
			name: "ChargedNitrogen",
			build: func(m *Molecule) int {
				n := m.AddAtom(Atom{Element: "N"})
				c := m.AddAtom(Atom{Element: "C"})
				m.AddBond(Bond{A: n, B: c, Order: 1})
				return n
			},
			want: 2,
		},
		{
			name: "NegativeChargeReduces",
			build: func(m *Molecule) int {
				o := m.AddAtom(Atom{Element: "O", Charge: -1})
				c := m.AddAtom(Atom{Element: "C"})
				m.AddBond(Bond{A: o, B: c, Order: 1})
				return o
			},
			want: 0,
		},
		{
			name: "ExplicitCountSuppressesImplicit",
			build: func(m *Molecule) int {
				return m.AddAtom(Atom{Element: "N", HCount: 4, HKnown: true, Charge: 1})
			},
			want: 0,
		},
		{
			name:  "UnknownElement",
			build: func(m *Molecule) int { return m.AddAtom(Atom{Element: "Fe"}) },
			want:  0,
		},
		{
			name: "OverbondedClampsToZero",
			build: func(m *Molecule) int {
				c := m.AddAtom(Atom{Element: "C"})
				for i := 0; i < 3; i++ {
					o := m.AddAtom(Atom{Element: "O"})
					m.AddBond(Bond{A: c, B: o, Order: 2})
				}
				return c
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			i := tt.build(m)
			if got := m.ImplicitHydrogens(i); got != tt.want {
				t.Errorf("ImplicitHydrogens = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHydrogensPrefersExplicit(t *testing.T) {
	m := New()
	n := m.AddAtom(Atom{Element: "N", HCount: 4, HKnown: true, Charge: 1})
	if got := m.Hydrogens(n); got != 4 {
		t.Errorf("Hydrogens = %d, want 4", got)
	}
	c := m.AddAtom(Atom{Element: "C"})
	if got := m.Hydrogens(c); got != 4 {
		t.Errorf("Hydrogens(bare C) = %d, want 4", got)
	}
}

func TestValidate(t *testing.T) {
	m := New()
	a := m.AddAtom(Atom{Element: "C"})
	b := m.AddAtom(Atom{Element: "C"})
	m.AddBond(Bond{A: a, B: b, Order: 1})
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}

	// Corrupt the bond list the way a bad deserialization would.
	m.Bonds[0].B = 42
	if err := m.Validate(); !errors.Is(err, ErrUnknownAtom) {
		t.Errorf("Validate = %v, want ErrUnknownAtom", err)
	}
}
