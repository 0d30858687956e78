package layout

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/molviz/molviz/pkg/mol"
)

// BondLength is the distance between adjacent atoms in layout units.
// The renderer scales the whole structure to fit its frame, so the
// absolute value only has to be consistent.
const BondLength = 40.0

const (
	turnAngle   = math.Pi / 3     // 60° zig-zag and hexagon step
	spreadAngle = 2 * math.Pi / 3 // 120° three-way split
)

// Assign computes a position for every atom of m and re-centers the
// structure so its bounding box is centered on the origin. Positions
// are written once per atom; calling Assign on an already laid-out
// molecule recomputes everything from scratch.
//
// Disconnected fragments (possible with partial input) are laid out
// independently and placed side by side.
func Assign(m *mol.Molecule) {
	if len(m.Atoms) == 0 {
		return
	}

	g := &generator{
		m:       m,
		inRing:  RingAtoms(m),
		visited: make([]bool, len(m.Atoms)),
	}

	var offsetX float64
	for i := range m.Atoms {
		if g.visited[i] {
			continue
		}
		g.visited[i] = true
		m.Atoms[i].Pos = r2.Vec{X: offsetX}
		m.Atoms[i].Placed = true
		// Starting the traversal half a turn below horizontal makes the
		// first chain bond leave at +30° and the zig-zag hug the x axis.
		g.place(i, -turnAngle/2)
		offsetX = g.maxX() + 2*BondLength
	}

	recenter(m)
}

type generator struct {
	m       *mol.Molecule
	inRing  map[int]bool
	visited []bool
	flip    bool // alternates the zig-zag turn direction
}

// place positions the unvisited neighbors of atom at, whose incoming
// bond points along angle incoming (radians, parent → atom), then
// recurses into each neighbor with its own outgoing angle.
func (g *generator) place(at int, incoming float64) {
	var next []int
	for _, n := range g.m.Neighbors(at) {
		if !g.visited[n] {
			next = append(next, n)
		}
	}
	if len(next) == 0 {
		return
	}

	angles := g.branchAngles(at, incoming, len(next))
	for i, n := range next {
		// Recursing into an earlier sibling can walk around a ring and
		// place this neighbor in the meantime; its position stays.
		if g.visited[n] {
			continue
		}
		g.visited[n] = true
		dir := r2.Vec{X: math.Cos(angles[i]), Y: math.Sin(angles[i])}
		g.m.Atoms[n].Pos = r2.Add(g.m.Atoms[at].Pos, r2.Scale(BondLength, dir))
		g.m.Atoms[n].Placed = true
		g.place(n, angles[i])
	}
}

// branchAngles selects outgoing angles for n unvisited neighbors of an
// atom reached along incoming:
//
//   - one neighbor, open chain: alternate ±60° turns for the
//     conventional zig-zag
//   - one neighbor, ring atom: fixed +60° step approximating a hexagon
//   - two neighbors: symmetric ±60° split
//   - three neighbors: straight ahead plus ±120°
//   - more: even spread around the full circle
func (g *generator) branchAngles(at int, incoming float64, n int) []float64 {
	switch n {
	case 1:
		if g.inRing[at] {
			return []float64{incoming + turnAngle}
		}
		turn := turnAngle
		if g.flip {
			turn = -turnAngle
		}
		g.flip = !g.flip
		return []float64{incoming + turn}
	case 2:
		return []float64{incoming + turnAngle, incoming - turnAngle}
	case 3:
		return []float64{incoming, incoming + spreadAngle, incoming - spreadAngle}
	default:
		angles := make([]float64, n)
		step := 2 * math.Pi / float64(n)
		for i := range angles {
			angles[i] = incoming + float64(i)*step
		}
		return angles
	}
}

// maxX returns the largest x coordinate among placed atoms.
func (g *generator) maxX() float64 {
	max := math.Inf(-1)
	for i := range g.m.Atoms {
		if g.m.Atoms[i].Placed && g.m.Atoms[i].Pos.X > max {
			max = g.m.Atoms[i].Pos.X
		}
	}
	return max
}

// recenter translates all atoms so the bounding box of the structure
// is centered on the origin.
func recenter(m *mol.Molecule) {
	xs := make([]float64, len(m.Atoms))
	ys := make([]float64, len(m.Atoms))
	for i := range m.Atoms {
		xs[i] = m.Atoms[i].Pos.X
		ys[i] = m.Atoms[i].Pos.Y
	}
	center := r2.Vec{
		X: (floats.Min(xs) + floats.Max(xs)) / 2,
		Y: (floats.Min(ys) + floats.Max(ys)) / 2,
	}
	for i := range m.Atoms {
		m.Atoms[i].Pos = r2.Sub(m.Atoms[i].Pos, center)
	}
}

// Bounds returns the min and max corners of the positioned atoms'
// bounding box. It returns zero vectors for an empty molecule.
func Bounds(m *mol.Molecule) (min, max r2.Vec) {
	if len(m.Atoms) == 0 {
		return r2.Vec{}, r2.Vec{}
	}
	xs := make([]float64, len(m.Atoms))
	ys := make([]float64, len(m.Atoms))
	for i := range m.Atoms {
		xs[i] = m.Atoms[i].Pos.X
		ys[i] = m.Atoms[i].Pos.Y
	}
	return r2.Vec{X: floats.Min(xs), Y: floats.Min(ys)},
		r2.Vec{X: floats.Max(xs), Y: floats.Max(ys)}
}
