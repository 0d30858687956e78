// Package smiles parses SMILES line notation into molecular graphs.
//
// The parser is a single left-to-right scan with an explicit state
// machine and deliberately lenient error policy: unrecognized
// characters are skipped, unbalanced branches are ignored, and ring
// closure markers left open at end of input simply never become bonds.
// Whatever partial graph was built is always returned, so garbage input
// degrades into a partial structure instead of a failure.
//
// Callers that care about what was dropped can use
// [ParseWithDiagnostics], which reports every recovery the parser made
// as an advisory [Diagnostic] list.
//
// # Supported grammar
//
//   - Organic-subset atoms: B, C, N, O, S, P, F, Cl, Br, I and the
//     aromatic forms c, n, o, s, p
//   - Bracket atoms [...] with isotope, stereo (@/@@), explicit
//     hydrogen count and signed charge
//   - Bond symbols -, =, #, / and \
//   - Branches with ( and )
//   - Ring closures: single digits and %NN two-digit markers
package smiles

import (
	"fmt"

	"github.com/molviz/molviz/pkg/errors"
	"github.com/molviz/molviz/pkg/mol"
)

// Diagnostic records a single lenient-parsing recovery: what was
// skipped or dropped, where, and under which error code. Diagnostics
// are advisory; they never prevent a molecule from being returned.
type Diagnostic struct {
	Code    errors.Code // classification (UNKNOWN_SYMBOL, UNCLOSED_RING, ...)
	Pos     int         // byte offset in the notation string
	Message string      // human-readable description
}

// String formats the diagnostic as "pos: CODE: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s: %s", d.Pos, d.Code, d.Message)
}

// Parse scans notation and returns the resulting molecule. The
// molecule may be empty or partial; Parse never fails. Diagnostics are
// discarded; use [ParseWithDiagnostics] to inspect them.
func Parse(notation string) *mol.Molecule {
	m, _ := ParseWithDiagnostics(notation)
	return m
}

// ParseWithDiagnostics scans notation and returns the resulting
// molecule together with the list of recoveries made along the way.
// The diagnostics slice is nil when the input parsed cleanly.
func ParseWithDiagnostics(notation string) (*mol.Molecule, []Diagnostic) {
	p := &parser{
		input: notation,
		mol:   mol.New(),
		prev:  -1,
		rings: make(map[int]ringOpening),
	}
	p.run()
	return p.mol, p.diags
}
