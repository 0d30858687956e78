// Package layout computes 2D coordinates for molecular graphs.
//
// The package has two stages: ring classification (which atoms lie on
// a cycle) and coordinate generation (assigning positions so adjacent
// atoms sit one bond length apart, with skeletal-formula zig-zag
// chains and hexagonal ring steps). The result is a heuristic
// embedding, not an exact one; overlaps can occur on complex
// polycyclic or highly branched structures, which is accepted for the
// target use case of small reagent molecules.
package layout

import "github.com/molviz/molviz/pkg/mol"

// RingAtoms returns the set of atom indices that lie on at least one
// cycle of the bond graph.
//
// Each atom gets its own depth-first search looking for a path back to
// the start that does not immediately reuse the bond it arrived on.
// That makes the whole pass O(V*(V+E)) instead of the linear-time
// cycle-basis alternative; at the target scale of tens of atoms the
// simpler search wins over the bookkeeping-heavy one.
func RingAtoms(m *mol.Molecule) map[int]bool {
	inRing := make(map[int]bool)
	for i := range m.Atoms {
		if cycleThrough(m, i) {
			inRing[i] = true
		}
	}
	return inRing
}

// cycleThrough reports whether some cycle passes through atom start.
func cycleThrough(m *mol.Molecule, start int) bool {
	visited := make([]bool, len(m.Atoms))
	visited[start] = true

	var dfs func(at, viaBond int) bool
	dfs = func(at, viaBond int) bool {
		for _, bi := range m.Atoms[at].Bonds {
			if bi == viaBond {
				continue
			}
			next := m.Bonds[bi].Other(at)
			if next == start {
				return true
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			if dfs(next, bi) {
				return true
			}
		}
		return false
	}

	return dfs(start, -1)
}
