package css

import (
	"fmt"
	"strconv"
	"strings"
)

// anPlusBCursor is the An+B Parser's own token cursor (§4.6): a
// distinct component from Parser, but built the same way — pull one token
// at a time from a TokenSource, with a one-slot reconsume buffer.
type anPlusBCursor struct {
	src     TokenSource
	current Token
	pending *Token
}

func (c *anPlusBCursor) consume() Token {
	if c.pending != nil {
		c.current = *c.pending
		c.pending = nil
		return c.current
	}
	c.current = c.src.Next()
	return c.current
}

func (c *anPlusBCursor) reconsume() {
	tok := c.current
	c.pending = &tok
}

func (c *anPlusBCursor) skipWhitespace() {
	for {
		tok := c.consume()
		if tok.Kind != TWhitespace {
			c.reconsume()
			return
		}
	}
}

func (c *anPlusBCursor) syntaxErrorf(pos Pos, format string, args ...interface{}) error {
	return SyntaxError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// ParseAnPlusB implements §6's parse_an_plus_b entry point over a
// code-point buffer, e.g. the argument of ":nth-child(2n+1)".
func ParseAnPlusB(buf []CodePoint, diag Diagnostics) (AnPlusB, error) {
	return parseAnPlusBFromSource(&tokenizerSource{t: NewTokenizer(buf, diag)})
}

// ParseAnPlusBFromComponentValues runs the same recognizer over an
// already-materialized component-value list, mirroring the dual
// code-point/component-value polymorphism §6 requires of every entry
// point.
func ParseAnPlusBFromComponentValues(values []ComponentValue) (AnPlusB, error) {
	return parseAnPlusBFromSource(newListSource(values))
}

func parseAnPlusBFromSource(src TokenSource) (AnPlusB, error) {
	c := &anPlusBCursor{src: src}

	c.skipWhitespace()
	ab, err := c.dispatch(c.consume(), false)
	if err != nil {
		return AnPlusB{}, err
	}

	c.skipWhitespace()
	if tok := c.consume(); tok.Kind != TEOF {
		return AnPlusB{}, c.syntaxErrorf(tok.Pos, "unexpected content after An+B")
	}
	return ab, nil
}

// dispatch implements steps 2-6 of §4.6. havePlus records that a
// leading Delim('+') was just consumed with no intervening whitespace skip
// (step 2's recursion), which step 3 uses to reject a bare Number after "+".
func (c *anPlusBCursor) dispatch(tok Token, havePlus bool) (AnPlusB, error) {
	switch {
	case tok.Kind == TDelim && tok.Value == "+" && !havePlus:
		return c.dispatch(c.consume(), true)

	case tok.Kind == TNumber && tok.IsInteger:
		if havePlus {
			return AnPlusB{}, c.syntaxErrorf(tok.Pos, "a bare number cannot follow \"+\" in An+B")
		}
		b, ok := parseSignedInteger(tok.Repr)
		if !ok {
			return AnPlusB{}, c.syntaxErrorf(tok.Pos, "invalid An+B integer %q", tok.Repr)
		}
		return AnPlusB{A: 0, B: b}, nil

	case tok.Kind == TDimension && tok.IsInteger:
		return c.dispatchUnit(strings.ToLower(tok.Unit), int32(tok.NumValue), tok.Pos)

	case tok.Kind == TIdent:
		name := strings.ToLower(tok.Value)
		switch name {
		case "odd":
			return AnPlusB{A: 2, B: 1}, nil
		case "even":
			return AnPlusB{A: 2, B: 0}, nil
		}
		if strings.HasPrefix(name, "-") {
			return c.dispatchUnit(name[1:], -1, tok.Pos)
		}
		return c.dispatchUnit(name, 1, tok.Pos)

	default:
		return AnPlusB{}, c.syntaxErrorf(tok.Pos, "expected An+B, found %s", tok.Kind)
	}
}

// dispatchUnit handles the "n" / "n-" / "n-<digits>" family shared by the
// Dimension and Ident branches, per §4.6's b-dispatch table.
func (c *anPlusBCursor) dispatchUnit(unit string, a int32, pos Pos) (AnPlusB, error) {
	switch {
	case unit == "n":
		return c.dispatchOptionalB(a)
	case unit == "n-":
		return c.dispatchRequiredNegativeB(a)
	case strings.HasPrefix(unit, "n-"):
		digits := unit[len("n-"):]
		b, ok := parseUnsignedDigits(digits)
		if !ok {
			return AnPlusB{}, c.syntaxErrorf(pos, "invalid An+B unit %q", unit)
		}
		return AnPlusB{A: a, B: -b}, nil
	default:
		return AnPlusB{}, c.syntaxErrorf(pos, "invalid An+B unit %q", unit)
	}
}

// dispatchOptionalB handles "n"/"-n": b defaults to 0, may be given as a
// signed Number, or as a Delim sign followed by a signless Number.
func (c *anPlusBCursor) dispatchOptionalB(a int32) (AnPlusB, error) {
	c.skipWhitespace()
	tok := c.consume()
	switch {
	case tok.Kind == TEOF:
		c.reconsume()
		return AnPlusB{A: a, B: 0}, nil

	case tok.Kind == TNumber && tok.IsInteger && isSignedRepr(tok.Repr):
		b, ok := parseSignedInteger(tok.Repr)
		if !ok {
			return AnPlusB{}, c.syntaxErrorf(tok.Pos, "invalid An+B integer %q", tok.Repr)
		}
		return AnPlusB{A: a, B: b}, nil

	case tok.Kind == TDelim && (tok.Value == "+" || tok.Value == "-"):
		sign := int32(1)
		if tok.Value == "-" {
			sign = -1
		}
		c.skipWhitespace()
		num := c.consume()
		b, ok := signlessInteger(num)
		if !ok {
			return AnPlusB{}, c.syntaxErrorf(num.Pos, "expected a signless integer after %q", tok.Value)
		}
		return AnPlusB{A: a, B: sign * b}, nil

	default:
		c.reconsume()
		return AnPlusB{A: a, B: 0}, nil
	}
}

// dispatchRequiredNegativeB handles "n-"/"-n-": a signless Number must
// follow, and b is its negation.
func (c *anPlusBCursor) dispatchRequiredNegativeB(a int32) (AnPlusB, error) {
	c.skipWhitespace()
	num := c.consume()
	b, ok := signlessInteger(num)
	if !ok {
		return AnPlusB{}, c.syntaxErrorf(num.Pos, "expected a signless integer")
	}
	return AnPlusB{A: a, B: -b}, nil
}

func isSignedRepr(repr string) bool {
	return strings.HasPrefix(repr, "+") || strings.HasPrefix(repr, "-")
}

func signlessInteger(tok Token) (int32, bool) {
	if tok.Kind != TNumber || !tok.IsInteger || isSignedRepr(tok.Repr) {
		return 0, false
	}
	return parseSignedInteger(tok.Repr)
}

func parseSignedInteger(repr string) (int32, bool) {
	n, err := strconv.ParseInt(repr, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

func parseUnsignedDigits(digits string) (int32, bool) {
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
