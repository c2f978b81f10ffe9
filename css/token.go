package css

import "fmt"

// TokenKind identifies the shape of a Token. The names and groupings follow
// CSS Syntax Module Level 3 §4: "preserved tokens" survive unchanged into
// the component-value tree; the four "associative openers" are consumed by
// the parser into a Function or SimpleBlock and never appear as a leaf of a
// returned AST.
type TokenKind int

const (
	// TEOF marks the end of the input stream.
	TEOF TokenKind = iota
	// TIdent is an identifier, e.g. "color".
	TIdent
	// TAtKeyword is an at-rule keyword, e.g. "@media".
	TAtKeyword
	// THash is a "#"-prefixed hash token, e.g. "#abc" or "#container".
	THash
	// TString is a quoted string token.
	TString
	// TBadString is a string token that could not be completed (parse error).
	TBadString
	// TURL is a url(...) token.
	TURL
	// TBadURL is a url(...) token that could not be completed (parse error).
	TBadURL
	// TDelim is a single code point with no more specific meaning.
	TDelim
	// TNumber is a numeric token with no unit or percent sign.
	TNumber
	// TPercentage is a numeric token followed directly by "%".
	TPercentage
	// TDimension is a numeric token followed by a unit identifier.
	TDimension
	// TWhitespace is a maximal run of whitespace code points.
	TWhitespace
	// TCDO is "<!--".
	TCDO
	// TCDC is "-->".
	TCDC
	// TColon is ":".
	TColon
	// TSemicolon is ";".
	TSemicolon
	// TComma is ",".
	TComma
	// TLBracket is "[", an associative opener.
	TLBracket
	// TRBracket is "]".
	TRBracket
	// TLParen is "(", an associative opener.
	TLParen
	// TRParen is ")".
	TRParen
	// TLBrace is "{", an associative opener.
	TLBrace
	// TRBrace is "}".
	TRBrace
	// TFunction is a "name(" token, an associative opener.
	TFunction
)

func (k TokenKind) String() string {
	switch k {
	case TEOF:
		return "EOF"
	case TIdent:
		return "ident"
	case TAtKeyword:
		return "at-keyword"
	case THash:
		return "hash"
	case TString:
		return "string"
	case TBadString:
		return "bad-string"
	case TURL:
		return "url"
	case TBadURL:
		return "bad-url"
	case TDelim:
		return "delim"
	case TNumber:
		return "number"
	case TPercentage:
		return "percentage"
	case TDimension:
		return "dimension"
	case TWhitespace:
		return "whitespace"
	case TCDO:
		return "CDO"
	case TCDC:
		return "CDC"
	case TColon:
		return "colon"
	case TSemicolon:
		return "semicolon"
	case TComma:
		return "comma"
	case TLBracket:
		return "["
	case TRBracket:
		return "]"
	case TLParen:
		return "("
	case TRParen:
		return ")"
	case TLBrace:
		return "{"
	case TRBrace:
		return "}"
	case TFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Token is a single syntactic unit produced by the Tokenizer. Not every
// field is meaningful for every Kind; see the per-Kind comments below.
type Token struct {
	Kind TokenKind

	// Value holds: the decoded name for TIdent/TAtKeyword/TFunction, the
	// decoded hash data for THash, the decoded content for TString/TURL,
	// and the single code point (as a one-rune string) for TDelim.
	Value string

	// Repr is the exact, undecoded character sequence the tokenizer
	// consumed to produce a numeric token. It is preserved because the
	// <urange> production and similar microsyntaxes are sensitive to
	// whether "9e-3" or "0.009" was written.
	Repr string

	// NumValue is the numeric value of a TNumber/TPercentage/TDimension
	// token, computed per §4.3.13.
	NumValue float64

	// Unit is the decoded unit identifier of a TDimension token.
	Unit string

	// IsInteger is true for TNumber/TDimension tokens whose Repr contains
	// neither "." nor "e"/"E".
	IsInteger bool

	// IsID is true for a THash token whose data would, on its own, start
	// an identifier (§4.3.3 invariant).
	IsID bool

	// Pos is the position of the first code point consumed for this
	// token, used only for diagnostics.
	Pos Pos
}

// Pos is a 1-based line/column position in the original code-point buffer,
// attached to tokens and parse errors purely for diagnostic reporting. The
// core's invariants never depend on it.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// ComponentValue is the unit of nested CSS syntax: either a preserved
// Token, a Function, or a SimpleBlock (§3, "component value").
type ComponentValue interface {
	isComponentValue()
}

// PreservedToken wraps a Token that survives as-is into the component-value
// tree. Every ComponentValue that is not a *Function or *SimpleBlock is a
// PreservedToken.
type PreservedToken struct {
	Token Token
}

func (PreservedToken) isComponentValue() {}

// Function is a component value of the form "name( ...values... )".
type Function struct {
	Name   string
	Values []ComponentValue
}

func (*Function) isComponentValue() {}

// SimpleBlock is a balanced pair of "{}", "[]" or "()" with arbitrary
// component values inside. Opener records which bracket kind was used;
// it is always one of TLBrace, TLBracket, TLParen.
type SimpleBlock struct {
	Opener TokenKind
	Values []ComponentValue
}

func (*SimpleBlock) isComponentValue() {}

// closerFor returns the TokenKind that closes the given opener.
func closerFor(opener TokenKind) TokenKind {
	switch opener {
	case TLBrace:
		return TRBrace
	case TLBracket:
		return TRBracket
	case TLParen:
		return TRParen
	default:
		panic(fmt.Sprintf("css: %v is not an associative opener", opener))
	}
}

// Declaration is a name/value pair parsed out of a declaration list (spec
// §5.4.6/§5.4.7, §3 "declaration"). Trailing whitespace and a trailing
// "!important" are stripped from Value before it is surfaced; Important
// reports whether that marker was present.
type Declaration struct {
	Name      string
	Value     []ComponentValue
	Important bool
}

// Rule is either an *AtRule or a *QualifiedRule.
type Rule interface {
	isRule()
}

// AtRule is a rule introduced by an at-keyword, e.g. "@media (...) { ... }"
// or "@import url(...);". Block is nil when the rule was terminated by a
// semicolon instead of a simple block.
type AtRule struct {
	Name    string
	Prelude []ComponentValue
	Block   *SimpleBlock
}

func (*AtRule) isRule() {}

// QualifiedRule is a rule whose prelude precedes a required "{}" block,
// e.g. a style rule "selector { declarations }".
type QualifiedRule struct {
	Prelude []ComponentValue
	Block   *SimpleBlock
}

func (*QualifiedRule) isRule() {}

// Stylesheet is a top-level sequence of rules. If the first rule the
// tokenizer would otherwise see is an at-rule named "charset", it has
// already been removed (§3 invariant; see Parser.Stylesheet).
type Stylesheet struct {
	Rules []Rule
}

// AnPlusB is the result of the An+B microsyntax (Selectors Level 3,
// https://www.w3.org/TR/selectors-3/#nth-child-pseudo), e.g. from
// ":nth-child(2n+1)".
type AnPlusB struct {
	A, B int32
}

// String reproduces a canonical "An+B" text form of the pair, e.g. "2n+1",
// "1n", "-3", "0" — but never reconstructs "odd"/"even".
func (ab AnPlusB) String() string {
	switch {
	case ab.A == 0:
		return fmt.Sprintf("%d", ab.B)
	case ab.B == 0:
		return fmt.Sprintf("%dn", ab.A)
	case ab.B > 0:
		return fmt.Sprintf("%dn+%d", ab.A, ab.B)
	default:
		return fmt.Sprintf("%dn%d", ab.A, ab.B)
	}
}
