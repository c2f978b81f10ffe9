package css

import "strings"

// Parser is a pull-based consumer of a TokenSource producing the syntax
// trees described in §3/§6. It maintains a current token and a
// one-slot reconsume buffer, mirroring the Input Stream's reconsume at the
// token level (§4.5).
type Parser struct {
	src     TokenSource
	current Token
	pending *Token
	errorSink
}

// NewParser creates a Parser that tokenizes buf live.
func NewParser(buf []CodePoint, diag Diagnostics) *Parser {
	return newParserOverSource(&tokenizerSource{t: NewTokenizer(buf, diag)}, diag)
}

// NewParserFromComponentValues creates a Parser whose Token Source replays
// an already-materialized component-value list as tokens (§4.4): a
// Function or SimpleBlock reappears as its opening token, its contents,
// and a synthetic closing token.
func NewParserFromComponentValues(values []ComponentValue, diag Diagnostics) *Parser {
	return newParserOverSource(newListSource(values), diag)
}

func newParserOverSource(src TokenSource, diag Diagnostics) *Parser {
	return &Parser{src: src, errorSink: errorSink{diag: diag}}
}

func (p *Parser) consumeToken() Token {
	if p.pending != nil {
		p.current = *p.pending
		p.pending = nil
		return p.current
	}
	p.current = p.src.Next()
	return p.current
}

// reconsume marks the current token to be returned again by the next
// consumeToken call. Must not be called twice without an intervening
// consumeToken.
func (p *Parser) reconsume() {
	tok := p.current
	p.pending = &tok
}

func (p *Parser) skipWhitespace() {
	for {
		tok := p.consumeToken()
		if tok.Kind != TWhitespace {
			p.reconsume()
			return
		}
	}
}

// --- §4.5.1 Consume a list of rules ---

func (p *Parser) consumeListOfRules(topLevel bool) []Rule {
	var rules []Rule
	for {
		tok := p.consumeToken()
		switch tok.Kind {
		case TWhitespace:
			continue
		case TEOF:
			return rules
		case TCDO, TCDC:
			if topLevel {
				continue
			}
			p.reconsume()
			if r, ok := p.consumeQualifiedRule(); ok {
				rules = append(rules, r)
			}
		case TAtKeyword:
			p.reconsume()
			rules = append(rules, p.consumeAtRule())
		default:
			p.reconsume()
			if r, ok := p.consumeQualifiedRule(); ok {
				rules = append(rules, r)
			}
		}
	}
}

// --- §4.5.2 Consume an at-rule ---

func (p *Parser) consumeAtRule() *AtRule {
	tok := p.consumeToken() // the at-keyword itself
	rule := &AtRule{Name: tok.Value}
	for {
		t := p.consumeToken()
		switch t.Kind {
		case TSemicolon:
			return rule
		case TEOF:
			p.report(ErrEOFInAtRule, t.Pos)
			return rule
		case TLBrace:
			rule.Block = p.consumeSimpleBlock(TLBrace)
			return rule
		default:
			p.reconsume()
			rule.Prelude = append(rule.Prelude, p.consumeComponentValue())
		}
	}
}

// --- §4.5.3 Consume a qualified rule ---

func (p *Parser) consumeQualifiedRule() (*QualifiedRule, bool) {
	rule := &QualifiedRule{}
	for {
		tok := p.consumeToken()
		switch tok.Kind {
		case TEOF:
			p.report(ErrEOFInQualifiedRule, tok.Pos)
			return nil, false
		case TLBrace:
			rule.Block = p.consumeSimpleBlock(TLBrace)
			return rule, true
		default:
			p.reconsume()
			rule.Prelude = append(rule.Prelude, p.consumeComponentValue())
		}
	}
}

// --- §4.5.4 Consume a list of declarations ---

// DeclarationListItem is either a *Declaration or an *AtRule: §4.5.4's
// procedural algorithm accumulates both (an at-rule nested in a
// declaration block, e.g. CSS Nesting's bare at-rules), even though the
// external ParseListOfDeclarations entry point (§6) narrows its
// return type to a plain sequence of Declaration. See DESIGN.md for this
// reconciliation.
type DeclarationListItem interface {
	isDeclarationListItem()
}

func (*Declaration) isDeclarationListItem() {}
func (*AtRule) isDeclarationListItem()      {}

func (p *Parser) consumeListOfDeclarations() []DeclarationListItem {
	var items []DeclarationListItem
	for {
		tok := p.consumeToken()
		switch tok.Kind {
		case TWhitespace, TSemicolon:
			continue
		case TEOF:
			return items
		case TAtKeyword:
			p.reconsume()
			items = append(items, p.consumeAtRule())
		case TIdent:
			p.reconsume()
			sub := p.collectDeclarationTokens()
			subParser := newParserOverSource(&sliceTokenSource{tokens: sub}, nil)
			subParser.diag = p.diag
			if decl := subParser.consumeDeclaration(); decl != nil {
				items = append(items, decl)
			}
			for _, e := range subParser.errors {
				p.errors = append(p.errors, e)
			}
		default:
			p.report(ErrInvalidDeclaration, tok.Pos)
			p.reconsume()
			p.discardDeclarationTokens()
		}
	}
}

// collectDeclarationTokens gathers the current token (already reconsumed
// by the caller) and everything up to, but not including, the next
// Semicolon or EOF.
func (p *Parser) collectDeclarationTokens() []Token {
	var toks []Token
	for {
		tok := p.consumeToken()
		if tok.Kind == TSemicolon {
			return toks
		}
		if tok.Kind == TEOF {
			p.reconsume()
			return toks
		}
		toks = append(toks, tok)
	}
}

func (p *Parser) discardDeclarationTokens() {
	for {
		tok := p.consumeToken()
		if tok.Kind == TSemicolon || tok.Kind == TEOF {
			if tok.Kind == TEOF {
				p.reconsume()
			}
			return
		}
	}
}

// --- §4.5.5 Consume a declaration ---

func (p *Parser) consumeDeclaration() *Declaration {
	nameTok := p.consumeToken() // the leading ident
	decl := &Declaration{Name: nameTok.Value}

	p.skipWhitespace()
	tok := p.consumeToken()
	if tok.Kind != TColon {
		p.report(ErrMissingColon, tok.Pos)
		return nil
	}

	for {
		peek := p.consumeToken()
		if peek.Kind == TEOF {
			break
		}
		p.reconsume()
		decl.Value = append(decl.Value, p.consumeComponentValue())
	}

	stripImportant(decl)
	return decl
}

// stripImportant removes a trailing "!important" (case-insensitive, with
// arbitrary whitespace around the "!") from decl.Value and sets Important.
func stripImportant(decl *Declaration) {
	v := decl.Value

	end := len(v)
	for end > 0 && isWhitespaceValue(v[end-1]) {
		end--
	}
	if end < 2 {
		decl.Value = v[:end]
		return
	}

	i := end - 1
	identTok, ok := asPreservedToken(v[i])
	if !ok || identTok.Kind != TIdent || !strings.EqualFold(identTok.Value, "important") {
		decl.Value = v[:end]
		return
	}

	i--
	for i >= 0 && isWhitespaceValue(v[i]) {
		i--
	}
	if i < 0 {
		decl.Value = v[:end]
		return
	}
	bangTok, ok := asPreservedToken(v[i])
	if !ok || bangTok.Kind != TDelim || bangTok.Value != "!" {
		decl.Value = v[:end]
		return
	}

	j := i
	for j > 0 && isWhitespaceValue(v[j-1]) {
		j--
	}
	decl.Value = v[:j]
	decl.Important = true
}

func asPreservedToken(v ComponentValue) (Token, bool) {
	pt, ok := v.(PreservedToken)
	if !ok {
		return Token{}, false
	}
	return pt.Token, true
}

func isWhitespaceValue(v ComponentValue) bool {
	pt, ok := v.(PreservedToken)
	return ok && pt.Token.Kind == TWhitespace
}

// --- §4.5.6 Consume a component value / simple block / function ---

func (p *Parser) consumeComponentValue() ComponentValue {
	tok := p.consumeToken()
	switch tok.Kind {
	case TLBrace, TLBracket, TLParen:
		return p.consumeSimpleBlock(tok.Kind)
	case TFunction:
		return p.consumeFunction(tok.Value)
	default:
		return PreservedToken{Token: tok}
	}
}

func (p *Parser) consumeSimpleBlock(opener TokenKind) *SimpleBlock {
	closer := closerFor(opener)
	block := &SimpleBlock{Opener: opener}
	for {
		tok := p.consumeToken()
		switch {
		case tok.Kind == closer:
			return block
		case tok.Kind == TEOF:
			p.report(ErrEOFInBlock, tok.Pos)
			return block
		default:
			p.reconsume()
			block.Values = append(block.Values, p.consumeComponentValue())
		}
	}
}

func (p *Parser) consumeFunction(name string) *Function {
	fn := &Function{Name: name}
	for {
		tok := p.consumeToken()
		switch tok.Kind {
		case TRParen:
			return fn
		case TEOF:
			p.report(ErrEOFInFunction, tok.Pos)
			return fn
		default:
			p.reconsume()
			fn.Values = append(fn.Values, p.consumeComponentValue())
		}
	}
}

// --- §6 External entry points, as Parser methods (src is whatever
// TokenSource the Parser was constructed with: live tokenizer or a
// materialized component-value list) ---

// Stylesheet runs "parse a stylesheet": a rule list with a leading
// "@charset" at-rule dropped.
func (p *Parser) Stylesheet() *Stylesheet {
	rules := p.consumeListOfRules(true)
	if len(rules) > 0 {
		if at, ok := rules[0].(*AtRule); ok && strings.EqualFold(at.Name, "charset") {
			rules = rules[1:]
		}
	}
	return &Stylesheet{Rules: rules}
}

// ListOfRules runs "parse a list of rules".
func (p *Parser) ListOfRules() []Rule {
	return p.consumeListOfRules(false)
}

// RuleResult runs "parse a rule": a single Rule, requiring only whitespace
// and EOF to remain afterward.
func (p *Parser) RuleResult() (Rule, error) {
	p.skipWhitespace()
	tok := p.consumeToken()

	var rule Rule
	switch {
	case tok.Kind == TEOF:
		return nil, SyntaxError{Message: "expected a rule, found EOF", Pos: tok.Pos}
	case tok.Kind == TAtKeyword:
		p.reconsume()
		rule = p.consumeAtRule()
	default:
		p.reconsume()
		r, ok := p.consumeQualifiedRule()
		if !ok {
			return nil, SyntaxError{Message: "expected a qualified rule", Pos: tok.Pos}
		}
		rule = r
	}

	p.skipWhitespace()
	if trailing := p.consumeToken(); trailing.Kind != TEOF {
		return nil, SyntaxError{Message: "unexpected content after rule", Pos: trailing.Pos}
	}
	return rule, nil
}

// DeclarationResult runs "parse a declaration".
func (p *Parser) DeclarationResult() (*Declaration, error) {
	p.skipWhitespace()
	tok := p.consumeToken()
	if tok.Kind != TIdent {
		return nil, SyntaxError{Message: "expected an identifier", Pos: tok.Pos}
	}
	p.reconsume()
	decl := p.consumeDeclaration()
	if decl == nil {
		return nil, SyntaxError{Message: "invalid declaration", Pos: tok.Pos}
	}
	return decl, nil
}

// ListOfDeclarations runs "parse a list of declarations", narrowed to the
// Declaration entries (see DeclarationListItem's doc comment).
func (p *Parser) ListOfDeclarations() []*Declaration {
	items := p.consumeListOfDeclarations()
	var decls []*Declaration
	for _, item := range items {
		if d, ok := item.(*Declaration); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

// ComponentValueResult runs "parse a component value": whitespace is
// permitted on either side, but exactly one component value must remain.
func (p *Parser) ComponentValueResult() (ComponentValue, error) {
	p.skipWhitespace()
	if tok := p.consumeToken(); tok.Kind == TEOF {
		return nil, SyntaxError{Message: "expected a component value, found EOF", Pos: tok.Pos}
	} else {
		p.reconsume()
	}

	cv := p.consumeComponentValue()

	p.skipWhitespace()
	if tok := p.consumeToken(); tok.Kind != TEOF {
		return nil, SyntaxError{Message: "unexpected content after component value", Pos: tok.Pos}
	}
	return cv, nil
}

// ListOfComponentValues runs "parse a list of component values".
func (p *Parser) ListOfComponentValues() []ComponentValue {
	var values []ComponentValue
	for {
		tok := p.consumeToken()
		if tok.Kind == TEOF {
			return values
		}
		p.reconsume()
		values = append(values, p.consumeComponentValue())
	}
}

// CommaSeparatedListOfComponentValues runs "parse a comma-separated list
// of component values", splitting on TComma at the top level; the commas
// themselves are not included in any sublist.
func (p *Parser) CommaSeparatedListOfComponentValues() [][]ComponentValue {
	var groups [][]ComponentValue
	var current []ComponentValue
	for {
		tok := p.consumeToken()
		switch tok.Kind {
		case TEOF:
			groups = append(groups, current)
			return groups
		case TComma:
			groups = append(groups, current)
			current = nil
		default:
			p.reconsume()
			current = append(current, p.consumeComponentValue())
		}
	}
}

// sliceTokenSource is a TokenSource over an already-flattened slice of
// tokens, used to re-run the declaration-parsing algorithm over the
// sub-list collected by consumeListOfDeclarations.
type sliceTokenSource struct {
	tokens []Token
	pos    int
}

func (s *sliceTokenSource) Next() Token {
	if s.pos >= len(s.tokens) {
		return Token{Kind: TEOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// --- Package-level convenience wrappers over a code-point buffer ---

// ParseStylesheet implements §6's parse_stylesheet entry point.
func ParseStylesheet(buf []CodePoint, diag Diagnostics) *Stylesheet {
	return NewParser(buf, diag).Stylesheet()
}

// ParseListOfRules implements parse_list_of_rules.
func ParseListOfRules(buf []CodePoint, diag Diagnostics) []Rule {
	return NewParser(buf, diag).ListOfRules()
}

// ParseRule implements parse_rule.
func ParseRule(buf []CodePoint, diag Diagnostics) (Rule, error) {
	return NewParser(buf, diag).RuleResult()
}

// ParseDeclaration implements parse_declaration.
func ParseDeclaration(buf []CodePoint, diag Diagnostics) (*Declaration, error) {
	return NewParser(buf, diag).DeclarationResult()
}

// ParseListOfDeclarations implements parse_list_of_declarations.
func ParseListOfDeclarations(buf []CodePoint, diag Diagnostics) []*Declaration {
	return NewParser(buf, diag).ListOfDeclarations()
}

// ParseComponentValue implements parse_component_value.
func ParseComponentValue(buf []CodePoint, diag Diagnostics) (ComponentValue, error) {
	return NewParser(buf, diag).ComponentValueResult()
}

// ParseListOfComponentValues implements parse_list_of_component_values.
func ParseListOfComponentValues(buf []CodePoint, diag Diagnostics) []ComponentValue {
	return NewParser(buf, diag).ListOfComponentValues()
}

// ParseCommaSeparatedListOfComponentValues implements
// parse_comma_separated_list_of_component_values.
func ParseCommaSeparatedListOfComponentValues(buf []CodePoint, diag Diagnostics) [][]ComponentValue {
	return NewParser(buf, diag).CommaSeparatedListOfComponentValues()
}
