package css

import "fmt"

// ParseErrorKind labels the recoverable condition §7 calls a
// "parse error": the tokenizer or parser substitutes a fallback token or
// structure and keeps going.
type ParseErrorKind int

const (
	// ErrUnterminatedComment: EOF reached inside a "/* ... */" comment.
	ErrUnterminatedComment ParseErrorKind = iota
	// ErrUnterminatedString: EOF or a raw newline inside a string token.
	ErrUnterminatedString
	// ErrUnterminatedURL: EOF, or disallowed input, inside a url(...) token.
	ErrUnterminatedURL
	// ErrInvalidEscape: a "\" not followed by a valid escape.
	ErrInvalidEscape
	// ErrEOFInEscape: "\" immediately followed by EOF.
	ErrEOFInEscape
	// ErrEOFInAtRule: EOF reached before an at-rule's ";" or block.
	ErrEOFInAtRule
	// ErrEOFInQualifiedRule: EOF reached before a qualified rule's block.
	ErrEOFInQualifiedRule
	// ErrEOFInBlock: EOF reached before a simple block's closer.
	ErrEOFInBlock
	// ErrEOFInFunction: EOF reached before a function's ")".
	ErrEOFInFunction
	// ErrInvalidDeclaration: a declaration-list entry that is not an
	// at-rule or an identifier-led declaration.
	ErrInvalidDeclaration
	// ErrMissingColon: a declaration whose name is not followed by ":".
	ErrMissingColon
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrUnterminatedComment:
		return "unterminated comment"
	case ErrUnterminatedString:
		return "unterminated string"
	case ErrUnterminatedURL:
		return "unterminated url"
	case ErrInvalidEscape:
		return "invalid escape"
	case ErrEOFInEscape:
		return "eof in escape"
	case ErrEOFInAtRule:
		return "eof in at-rule"
	case ErrEOFInQualifiedRule:
		return "eof in qualified rule"
	case ErrEOFInBlock:
		return "eof in block"
	case ErrEOFInFunction:
		return "eof in function"
	case ErrInvalidDeclaration:
		return "invalid declaration"
	case ErrMissingColon:
		return "missing colon in declaration"
	default:
		return "parse error"
	}
}

// ParseError is a recoverable diagnostic raised at one of the hook points
// §7 calls out. It never stops a parse; it is purely reportable.
type ParseError struct {
	Kind ParseErrorKind
	Pos  Pos
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
}

// Diagnostics receives every ParseError as it is raised. A nil Diagnostics
// is valid and simply discards the report; Errors() on the Tokenizer or
// Parser still accumulates it.
type Diagnostics func(ParseError)

// SyntaxError is returned by the single-item parser entry points
// (ParseRule, ParseDeclaration, ParseComponentValue, ParseAnPlusB) when the
// input does not match the required top-level production, even after
// recovery (§7).
type SyntaxError struct {
	Message string
	Pos     Pos
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// errorSink accumulates ParseErrors and forwards each to an optional
// Diagnostics callback, shared by Tokenizer and Parser.
type errorSink struct {
	diag   Diagnostics
	errors []ParseError
}

func (s *errorSink) report(kind ParseErrorKind, pos Pos) {
	e := ParseError{Kind: kind, Pos: pos}
	s.errors = append(s.errors, e)
	if s.diag != nil {
		s.diag(e)
	}
}

// Errors returns every ParseError raised so far, in emission order.
func (s *errorSink) Errors() []ParseError {
	return s.errors
}
