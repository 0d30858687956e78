package smiles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/molviz/molviz/pkg/errors"
	"github.com/molviz/molviz/pkg/mol"
)

// state identifies the scanner's position in the grammar. The parser
// is a flat loop dispatching on (state, current byte); formalizing the
// states makes the lenient skip-and-continue behavior auditable.
type state int

const (
	// stateScanning is the default state: expecting an atom token, a
	// bond symbol, a branch paren or a ring closure digit.
	stateScanning state = iota
	// stateBracket is active between '[' and ']', accumulating the
	// bracket atom body.
	stateBracket
	// stateRingPercent is active directly after '%', expecting exactly
	// two digits forming a two-digit ring closure marker.
	stateRingPercent
)

// organicSubset lists the bare (unbracketed) atom tokens and whether
// each is parsed as aromatic. Two-letter symbols require lookahead in
// the scanner; they are matched before their one-letter prefixes.
var organicSubset = map[string]bool{ // symbol -> aromatic
	"Cl": false, "Br": false,
	"B": false, "C": false, "N": false, "O": false,
	"S": false, "P": false, "F": false, "I": false,
	"c": true, "n": true, "o": true, "s": true, "p": true,
}

// pendingBond is a bond symbol waiting for its target atom or ring
// closure digit. set distinguishes "explicit single bond" from "no
// symbol seen" so that aromatic defaulting only applies to the latter.
type pendingBond struct {
	order float64
	dir   mol.BondDirection
	set   bool
}

// ringOpening records the first occurrence of a ring closure marker.
type ringOpening struct {
	atom int         // atom awaiting closure
	bond pendingBond // bond symbol seen before the opening digit, if any
	pos  int         // offset of the opening digit, for diagnostics
}

type parser struct {
	input string
	pos   int
	state state

	mol     *mol.Molecule
	prev    int   // current-atom cursor; -1 before the first atom
	stack   []int // branch stack of saved cursors
	pending pendingBond
	rings   map[int]ringOpening

	bracketStart int             // offset of the opening '[' while in stateBracket
	bracket      strings.Builder // accumulated bracket body

	diags []Diagnostic
}

func (p *parser) diag(code errors.Code, pos int, format string, args ...any) {
	p.diags = append(p.diags, Diagnostic{
		Code:    code,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *parser) run() {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch p.state {
		case stateScanning:
			p.scan(c)
		case stateBracket:
			p.scanBracket(c)
		case stateRingPercent:
			p.scanRingPercent()
		}
	}
	p.finish()
}

// scan handles a single byte in the default state.
func (p *parser) scan(c byte) {
	switch {
	case c == '[':
		p.state = stateBracket
		p.bracketStart = p.pos
		p.bracket.Reset()
		p.pos++

	case c == '(':
		p.stack = append(p.stack, p.prev)
		p.pos++

	case c == ')':
		if len(p.stack) == 0 {
			p.diag(errors.ErrCodeUnbalancedBranch, p.pos, "')' without matching '('")
			p.pos++
			return
		}
		p.prev = p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		p.pos++

	case c == '=':
		p.pending = pendingBond{order: 2, set: true}
		p.pos++
	case c == '#':
		p.pending = pendingBond{order: 3, set: true}
		p.pos++
	case c == '-':
		p.pending = pendingBond{order: 1, set: true}
		p.pos++
	case c == '/':
		p.pending = pendingBond{order: 1, dir: mol.DirUp, set: true}
		p.pos++
	case c == '\\':
		p.pending = pendingBond{order: 1, dir: mol.DirDown, set: true}
		p.pos++

	case c >= '0' && c <= '9':
		p.closeOrOpenRing(int(c-'0'), p.pos)
		p.pos++

	case c == '%':
		p.state = stateRingPercent
		p.pos++

	case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		p.pos++

	default:
		if sym, aromatic, n := p.matchOrganic(); n > 0 {
			p.addAtom(mol.Atom{Element: sym, Aromatic: aromatic})
			p.pos += n
			return
		}
		p.diag(errors.ErrCodeUnknownSymbol, p.pos, "skipping unrecognized character %q", c)
		p.pos++
	}
}

// matchOrganic tries to match an organic-subset atom token at the
// current position. Two-letter symbols (Cl, Br) take precedence over
// their one-letter prefixes, which needs one byte of lookahead.
func (p *parser) matchOrganic() (symbol string, aromatic bool, n int) {
	if p.pos+1 < len(p.input) {
		two := p.input[p.pos : p.pos+2]
		if arom, ok := organicSubset[two]; ok {
			return two, arom, 2
		}
	}
	one := p.input[p.pos : p.pos+1]
	if arom, ok := organicSubset[one]; ok {
		return canonicalSymbol(one), arom, 1
	}
	return "", false, 0
}

// scanBracket accumulates the bracket atom body until ']'.
func (p *parser) scanBracket(c byte) {
	if c != ']' {
		p.bracket.WriteByte(c)
		p.pos++
		return
	}
	p.state = stateScanning
	p.pos++
	if a, ok := p.parseBracketBody(p.bracket.String(), p.bracketStart); ok {
		p.addAtom(a)
	}
}

// scanRingPercent reads the two digits of a %NN ring closure marker.
func (p *parser) scanRingPercent() {
	p.state = stateScanning
	if p.pos+1 >= len(p.input) || !isDigit(p.input[p.pos]) || !isDigit(p.input[p.pos+1]) {
		p.diag(errors.ErrCodeUnknownSymbol, p.pos-1, "'%%' must be followed by two digits")
		return
	}
	marker := int(p.input[p.pos]-'0')*10 + int(p.input[p.pos+1]-'0')
	p.closeOrOpenRing(marker, p.pos-1)
	p.pos += 2
}

// addAtom appends a new atom and bonds it to the current cursor atom,
// consuming any pending bond symbol. The new atom becomes the cursor.
func (p *parser) addAtom(a mol.Atom) {
	idx := p.mol.AddAtom(a)
	if p.prev >= 0 {
		b := p.bondBetween(p.prev, idx, p.pending)
		p.mol.AddBond(b)
	}
	p.pending = pendingBond{}
	p.prev = idx
}

// bondBetween builds the bond connecting atoms a and b. An explicit
// bond symbol wins; with no symbol, a bond between two aromatic atoms
// becomes an order-1.5 aromatic bond, anything else a plain single.
func (p *parser) bondBetween(a, b int, pending pendingBond) mol.Bond {
	bond := mol.Bond{A: a, B: b, Order: 1}
	if pending.set {
		bond.Order = pending.order
		bond.Dir = pending.dir
		return bond
	}
	if p.mol.Atoms[a].Aromatic && p.mol.Atoms[b].Aromatic {
		bond.Order = 1.5
		bond.Aromatic = true
	}
	return bond
}

// closeOrOpenRing handles a ring closure marker. The first occurrence
// records the cursor atom as awaiting closure; the second creates the
// ring bond. A marker seen before any atom exists is skipped.
func (p *parser) closeOrOpenRing(marker, pos int) {
	if p.prev < 0 {
		p.diag(errors.ErrCodeUnknownSymbol, pos, "ring closure %d before any atom", marker)
		return
	}

	open, ok := p.rings[marker]
	if !ok {
		p.rings[marker] = ringOpening{atom: p.prev, bond: p.pending, pos: pos}
		p.pending = pendingBond{}
		return
	}
	delete(p.rings, marker)

	if open.atom == p.prev {
		p.diag(errors.ErrCodeDuplicateRingBond, pos, "ring closure %d opens and closes on the same atom", marker)
		p.pending = pendingBond{}
		return
	}

	// A bond symbol on either end of the marker sets the ring bond
	// order; the closing side wins when both are present.
	pending := open.bond
	if p.pending.set {
		pending = p.pending
	}
	p.pending = pendingBond{}
	p.mol.AddBond(p.bondBetween(open.atom, p.prev, pending))
}

// finish reports everything left dangling at end of input. Open ring
// markers produce no bond and unclosed branches simply end; both are
// surfaced as diagnostics.
func (p *parser) finish() {
	if p.state == stateBracket {
		p.diag(errors.ErrCodeUnclosedBracket, p.bracketStart, "bracket atom never closed; dropped %q", p.bracket.String())
	}
	markers := make([]int, 0, len(p.rings))
	for marker := range p.rings {
		markers = append(markers, marker)
	}
	sort.Ints(markers)
	for _, marker := range markers {
		p.diag(errors.ErrCodeUnclosedRing, p.rings[marker].pos, "ring closure %d never closed; no bond created", marker)
	}
	if n := len(p.stack); n > 0 {
		p.diag(errors.ErrCodeUnbalancedBranch, len(p.input), "%d branch(es) left open at end of input", n)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// canonicalSymbol maps an aromatic (lowercase) token to the element
// symbol stored on the atom.
func canonicalSymbol(tok string) string {
	return strings.ToUpper(tok[:1]) + tok[1:]
}
