package css

// TokenSource is the uniform pull interface the Parser consumes: "give me
// the next token." It is backed either by a live Tokenizer or by a
// pre-materialized list of component values flattened back into tokens
// (§4.4, §5 — parser productions may run over a token list as well as
// a live tokenizer). Once exhausted, Next returns an EOF token indefinitely.
type TokenSource interface {
	Next() Token
}

// tokenizerSource adapts a Tokenizer to TokenSource.
type tokenizerSource struct {
	t *Tokenizer
}

func (s *tokenizerSource) Next() Token {
	return s.t.Next()
}

// listSource is a TokenSource over a pre-materialized sequence of component
// values, flattened once into a token stream so that a Function or
// SimpleBlock re-appears as its opening token, its contents, and a
// synthetic closing token — exactly what a Parser pulling live tokens would
// have seen the first time around.
type listSource struct {
	tokens []Token
	pos    int
}

func newListSource(values []ComponentValue) *listSource {
	return &listSource{tokens: flattenComponentValues(values)}
}

func (s *listSource) Next() Token {
	if s.pos >= len(s.tokens) {
		return Token{Kind: TEOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

func flattenComponentValues(values []ComponentValue) []Token {
	var out []Token
	for _, v := range values {
		flattenInto(&out, v)
	}
	return out
}

func flattenInto(out *[]Token, v ComponentValue) {
	switch cv := v.(type) {
	case PreservedToken:
		*out = append(*out, cv.Token)
	case *Function:
		*out = append(*out, Token{Kind: TFunction, Value: cv.Name})
		for _, sub := range cv.Values {
			flattenInto(out, sub)
		}
		*out = append(*out, Token{Kind: TRParen})
	case *SimpleBlock:
		*out = append(*out, Token{Kind: cv.Opener})
		for _, sub := range cv.Values {
			flattenInto(out, sub)
		}
		*out = append(*out, Token{Kind: closerFor(cv.Opener)})
	}
}
