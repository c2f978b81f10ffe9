package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allTokens runs the tokenizer to completion, including the terminal EOF
// token, collecting every reported error along the way.
func allTokens(t *testing.T, src string) ([]Token, *Tokenizer) {
	t.Helper()
	tok := NewTokenizer(DecodeString(src), nil)
	var tokens []Token
	for {
		tt := tok.Next()
		tokens = append(tokens, tt)
		if tt.Kind == TEOF {
			break
		}
	}
	return tokens, tok
}

func TestHashIsIDFlag(t *testing.T) {
	// Scenario 1: "#abc" -> Hash{data="abc", is_id=true}.
	tokens, _ := allTokens(t, "#abc")
	require.Len(t, tokens, 2)
	assert.Equal(t, THash, tokens[0].Kind)
	assert.Equal(t, "abc", tokens[0].Value)
	assert.True(t, tokens[0].IsID)
	assert.Equal(t, TEOF, tokens[1].Kind)

	t.Run("hash of digits is not an identifier-shaped id", func(t *testing.T) {
		tokens, _ := allTokens(t, "#123")
		require.Len(t, tokens, 2)
		assert.Equal(t, THash, tokens[0].Kind)
		assert.Equal(t, "123", tokens[0].Value)
		assert.False(t, tokens[0].IsID)
	})

	t.Run("bare '#' with nothing name-like after it is a delim", func(t *testing.T) {
		tokens, _ := allTokens(t, "# ")
		require.Len(t, tokens, 3)
		assert.Equal(t, TDelim, tokens[0].Kind)
		assert.Equal(t, "#", tokens[0].Value)
	})
}

func TestNumericReprVsValue(t *testing.T) {
	// Scenario 2: "0.009" and "9e-3" both evaluate to ~0.009 but keep their
	// distinct reprs, and neither is an integer.
	tokens, _ := allTokens(t, "0.009")
	require.Len(t, tokens, 2)
	assert.Equal(t, TNumber, tokens[0].Kind)
	assert.Equal(t, "0.009", tokens[0].Repr)
	assert.False(t, tokens[0].IsInteger)
	assert.InDelta(t, 0.009, tokens[0].NumValue, 1e-12)

	tokens2, _ := allTokens(t, "9e-3")
	require.Len(t, tokens2, 2)
	assert.Equal(t, TNumber, tokens2[0].Kind)
	assert.Equal(t, "9e-3", tokens2[0].Repr)
	assert.False(t, tokens2[0].IsInteger)
	assert.InDelta(t, 0.009, tokens2[0].NumValue, 1e-12)

	assert.NotEqual(t, tokens[0].Repr, tokens2[0].Repr)
	assert.InDelta(t, tokens[0].NumValue, tokens2[0].NumValue, 1e-12)
}

func TestIntegerFlag(t *testing.T) {
	tests := []struct {
		input     string
		isInteger bool
	}{
		{"42", true},
		{"-42", true},
		{"+42", true},
		{"42.0", false},
		{"42e1", false},
		{"42E1", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := allTokens(t, tt.input)
			require.GreaterOrEqual(t, len(tokens), 1)
			assert.Equal(t, TNumber, tokens[0].Kind)
			assert.Equal(t, tt.isInteger, tokens[0].IsInteger)
		})
	}
}

func TestPercentageAndDimension(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		tokens, _ := allTokens(t, "50%")
		require.Len(t, tokens, 2)
		assert.Equal(t, TPercentage, tokens[0].Kind)
		assert.InDelta(t, 50, tokens[0].NumValue, 1e-9)
	})

	t.Run("dimension", func(t *testing.T) {
		tokens, _ := allTokens(t, "10px")
		require.Len(t, tokens, 2)
		assert.Equal(t, TDimension, tokens[0].Kind)
		assert.Equal(t, "px", tokens[0].Unit)
		assert.InDelta(t, 10, tokens[0].NumValue, 1e-9)
	})
}

func TestURLWhitespaceForcesFunctionPath(t *testing.T) {
	// Scenario 3: "url( "x.png" )" -> Function("url"), Whitespace,
	// String("x.png"), Whitespace, RParen. The quote after whitespace
	// forces the function path rather than the URL-token path, but the
	// whitespace itself must still surface as its own token.
	tokens, _ := allTokens(t, `url( "x.png" )`)
	kinds := make([]TokenKind, len(tokens))
	for i, tk := range tokens {
		kinds[i] = tk.Kind
	}
	assert.Equal(t, []TokenKind{
		TFunction, TWhitespace, TString, TWhitespace, TRParen, TEOF,
	}, kinds)
	assert.Equal(t, "url", tokens[0].Value)
	assert.Equal(t, "x.png", tokens[2].Value)
}

func TestBareURLToken(t *testing.T) {
	tokens, _ := allTokens(t, "url(x.png)")
	require.Len(t, tokens, 2)
	assert.Equal(t, TURL, tokens[0].Kind)
	assert.Equal(t, "x.png", tokens[0].Value)
}

func TestBareURLTokenWithWhitespaceButNoQuote(t *testing.T) {
	tokens, _ := allTokens(t, "url( x.png )")
	require.Len(t, tokens, 2)
	assert.Equal(t, TURL, tokens[0].Kind)
	assert.Equal(t, "x.png", tokens[0].Value)
}

func TestBadURLToken(t *testing.T) {
	tokens, tok := allTokens(t, "url(x y)")
	require.Len(t, tokens, 2)
	assert.Equal(t, TBadURL, tokens[0].Kind)
	require.Len(t, tok.Errors(), 1)
	assert.Equal(t, ErrUnterminatedURL, tok.Errors()[0].Kind)
}

func TestCommentAdjacentToComment(t *testing.T) {
	// Scenario 4: "/*/*/" is a single comment from the first "/*" to the
	// final "*/" -- the "/" right after the opening "/*" must not be
	// mistaken for the start of "*/".
	tokens, tok := allTokens(t, "/*/*/")
	require.Len(t, tokens, 1)
	assert.Equal(t, TEOF, tokens[0].Kind)
	assert.Empty(t, tok.Errors())
}

func TestUnterminatedComment(t *testing.T) {
	tokens, tok := allTokens(t, "/* oops")
	require.Len(t, tokens, 1)
	assert.Equal(t, TEOF, tokens[0].Kind)
	require.Len(t, tok.Errors(), 1)
	assert.Equal(t, ErrUnterminatedComment, tok.Errors()[0].Kind)
}

func TestStringTokens(t *testing.T) {
	t.Run("double quoted", func(t *testing.T) {
		tokens, _ := allTokens(t, `"hello"`)
		require.Len(t, tokens, 2)
		assert.Equal(t, TString, tokens[0].Kind)
		assert.Equal(t, "hello", tokens[0].Value)
	})

	t.Run("single quoted with escape", func(t *testing.T) {
		tokens, _ := allTokens(t, `'it\'s'`)
		require.Len(t, tokens, 2)
		assert.Equal(t, TString, tokens[0].Kind)
		assert.Equal(t, "it's", tokens[0].Value)
	})

	t.Run("unterminated at EOF", func(t *testing.T) {
		tokens, tok := allTokens(t, `"oops`)
		require.Len(t, tokens, 2)
		assert.Equal(t, TString, tokens[0].Kind)
		assert.Equal(t, "oops", tokens[0].Value)
		require.Len(t, tok.Errors(), 1)
		assert.Equal(t, ErrUnterminatedString, tok.Errors()[0].Kind)
	})

	t.Run("bad string on raw newline", func(t *testing.T) {
		tokens, tok := allTokens(t, "\"oops\nmore")
		assert.Equal(t, TBadString, tokens[0].Kind)
		require.Len(t, tok.Errors(), 1)
		assert.Equal(t, ErrUnterminatedString, tok.Errors()[0].Kind)
		// The newline is reconsumed, so it tokenizes on its own afterward.
		assert.Equal(t, TWhitespace, tokens[1].Kind)
	})

	t.Run("line continuation is dropped from the string's content", func(t *testing.T) {
		tokens, _ := allTokens(t, "\"a\\\nb\"")
		require.Len(t, tokens, 2)
		assert.Equal(t, "ab", tokens[0].Value)
	})
}

func TestEscapedCodePoint(t *testing.T) {
	t.Run("hex escape with trailing whitespace consumed", func(t *testing.T) {
		tokens, _ := allTokens(t, `\41 bc`)
		require.Len(t, tokens, 2)
		assert.Equal(t, TIdent, tokens[0].Kind)
		assert.Equal(t, "Abc", tokens[0].Value)
	})

	t.Run("hex escape of a surrogate decodes to U+FFFD", func(t *testing.T) {
		tokens, _ := allTokens(t, `\d800 `)
		require.Len(t, tokens, 2)
		assert.Equal(t, TIdent, tokens[0].Kind)
		assert.Equal(t, "�", tokens[0].Value)
	})

	t.Run("a trailing backslash with nothing after it is an invalid escape, not part of the ident", func(t *testing.T) {
		// A valid-escape check requires a non-EOF code point after "\", so
		// a lone trailing "\" can never reach consume_escaped; it falls
		// out as its own Delim token instead (spec §4.3.9/§4.3.1).
		tokens, tok := allTokens(t, `a\`)
		require.Len(t, tokens, 3)
		assert.Equal(t, TIdent, tokens[0].Kind)
		assert.Equal(t, "a", tokens[0].Value)
		assert.Equal(t, TDelim, tokens[1].Kind)
		assert.Equal(t, "\\", tokens[1].Value)
		require.Len(t, tok.Errors(), 1)
		assert.Equal(t, ErrInvalidEscape, tok.Errors()[0].Kind)
	})
}

func TestIdentLikeAndFunction(t *testing.T) {
	t.Run("plain ident", func(t *testing.T) {
		tokens, _ := allTokens(t, "color")
		require.Len(t, tokens, 2)
		assert.Equal(t, TIdent, tokens[0].Kind)
		assert.Equal(t, "color", tokens[0].Value)
	})

	t.Run("function", func(t *testing.T) {
		tokens, _ := allTokens(t, "rgb(")
		require.Len(t, tokens, 2)
		assert.Equal(t, TFunction, tokens[0].Kind)
		assert.Equal(t, "rgb", tokens[0].Value)
	})

	t.Run("leading hyphen ident", func(t *testing.T) {
		tokens, _ := allTokens(t, "-webkit-transform")
		require.Len(t, tokens, 2)
		assert.Equal(t, TIdent, tokens[0].Kind)
		assert.Equal(t, "-webkit-transform", tokens[0].Value)
	})
}

func TestAtKeyword(t *testing.T) {
	tokens, _ := allTokens(t, "@media")
	require.Len(t, tokens, 2)
	assert.Equal(t, TAtKeyword, tokens[0].Kind)
	assert.Equal(t, "media", tokens[0].Value)
}

func TestCDOCDC(t *testing.T) {
	tokens, _ := allTokens(t, "<!---->")
	require.Len(t, tokens, 3)
	assert.Equal(t, TCDO, tokens[0].Kind)
	assert.Equal(t, TCDC, tokens[1].Kind)
}

func TestDelimiters(t *testing.T) {
	tokens, _ := allTokens(t, "*+")
	require.Len(t, tokens, 3)
	assert.Equal(t, TDelim, tokens[0].Kind)
	assert.Equal(t, "*", tokens[0].Value)
	assert.Equal(t, TDelim, tokens[1].Kind)
	assert.Equal(t, "+", tokens[1].Value)
}

func TestBracketsAndPunctuation(t *testing.T) {
	tokens, _ := allTokens(t, "{}[]():;,")
	kinds := make([]TokenKind, len(tokens))
	for i, tk := range tokens {
		kinds[i] = tk.Kind
	}
	assert.Equal(t, []TokenKind{
		TLBrace, TRBrace, TLBracket, TRBracket, TLParen, TRParen,
		TColon, TSemicolon, TComma, TEOF,
	}, kinds)
}

func TestNullByteReplaced(t *testing.T) {
	buf := Decode([]byte("a\x00b"))
	assert.Equal(t, []CodePoint{'a', 0xFFFD, 'b'}, buf)
}

func TestCRLFNormalization(t *testing.T) {
	buf := Decode([]byte("a\r\nb\rc\fd"))
	assert.Equal(t, []CodePoint{'a', '\n', 'b', '\n', 'c', '\n', 'd'}, buf)
}

func TestInvalidEscapeIsParseError(t *testing.T) {
	tokens, tok := allTokens(t, "\\\n")
	require.Len(t, tokens, 3)
	assert.Equal(t, TDelim, tokens[0].Kind)
	assert.Equal(t, TWhitespace, tokens[1].Kind)
	assert.Equal(t, TEOF, tokens[2].Kind)
	require.Len(t, tok.Errors(), 1)
	assert.Equal(t, ErrInvalidEscape, tok.Errors()[0].Kind)
}
