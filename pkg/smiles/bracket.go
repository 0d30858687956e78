package smiles

import (
	"github.com/molviz/molviz/pkg/errors"
	"github.com/molviz/molviz/pkg/mol"
)

// parseBracketBody interprets the text between '[' and ']'. The
// grammar, in order, is:
//
//	[isotope] symbol [@|@@] [H[count]] [charge]
//
// where isotope is a digit run, symbol is an element in upper or
// lowercase (lowercase meaning aromatic), count is a digit run
// defaulting to 1, and charge is one or more '+'/'-' signs or a sign
// followed by a number. Unrecognized bytes are skipped with a
// diagnostic, matching the scanner's lenient policy. A body without an
// element symbol produces no atom.
func (p *parser) parseBracketBody(body string, start int) (mol.Atom, bool) {
	var a mol.Atom
	i := 0

	// Isotope mass number prefix.
	if n, width := readInt(body, i); width > 0 {
		a.Isotope = n
		i += width
	}

	// Element symbol: one uppercase plus optional lowercase, or a
	// single lowercase letter for an aromatic atom.
	switch {
	case i < len(body) && isUpper(body[i]):
		a.Element = body[i : i+1]
		i++
		if i < len(body) && isLower(body[i]) && body[i] != 'h' {
			// Second letters that start a trailing token (H count,
			// stereo) are not part of the symbol.
			a.Element += body[i : i+1]
			i++
		}
	case i < len(body) && isLower(body[i]):
		a.Element = canonicalSymbol(body[i : i+1])
		a.Aromatic = true
		i++
	default:
		p.diag(errors.ErrCodeUnknownSymbol, start, "bracket atom %q has no element symbol; dropped", body)
		return mol.Atom{}, false
	}

	for i < len(body) {
		switch c := body[i]; {
		case c == '@':
			if i+1 < len(body) && body[i+1] == '@' {
				a.Parity = mol.ParityClockwise
				i += 2
			} else {
				a.Parity = mol.ParityAnticlockwise
				i++
			}

		case c == 'H':
			a.HCount = 1
			a.HKnown = true
			i++
			if n, width := readInt(body, i); width > 0 {
				a.HCount = n
				i += width
			}

		case c == '+' || c == '-':
			sign := 1
			if c == '-' {
				sign = -1
			}
			i++
			if n, width := readInt(body, i); width > 0 {
				a.Charge = sign * n
				i += width
				break
			}
			// Repeated signs: ++ is +2, --- is -3.
			a.Charge = sign
			for i < len(body) && body[i] == c {
				a.Charge += sign
				i++
			}

		default:
			p.diag(errors.ErrCodeUnknownSymbol, start+1+i, "skipping unrecognized character %q in bracket atom", c)
			i++
		}
	}

	return a, true
}

// readInt reads a decimal digit run starting at i and returns its
// value and width. A width of zero means no digits were present.
func readInt(s string, i int) (value, width int) {
	for i+width < len(s) && isDigit(s[i+width]) {
		value = value*10 + int(s[i+width]-'0')
		width++
	}
	return value, width
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
