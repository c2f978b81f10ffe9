// Package css implements the tokenization and parsing layers of the CSS
// Syntax Module Level 3 draft. Given a buffer of preprocessed Unicode code
// points it produces a stream of syntactic tokens (Tokenizer) and, from
// those tokens, the structured syntax trees (Stylesheet, Rule, Declaration,
// ComponentValue) that a downstream consumer — a selector engine, a
// property validator, a style-value parser — interprets against its own
// grammar.
//
// Spec references:
//   - CSS Syntax Module Level 3 §4 Tokenization: https://www.w3.org/TR/css-syntax-3/#tokenization
//   - CSS Syntax Module Level 3 §5 Parsing: https://www.w3.org/TR/css-syntax-3/#parsing
//   - Selectors Level 3 §An+B microsyntax: https://www.w3.org/TR/selectors-3/#nth-child-pseudo
//
// Apart from the Decode/DecodeString helpers, which turn UTF-8 bytes into a
// preprocessed code-point buffer, this package does not decode bytes. It
// does not detect character encodings, evaluate the CSS cascade, match
// selectors against a DOM, or
// serialize a parsed token stream back to text (other than preserving a
// numeric token's original representation). Those are a caller's concerns.
package css
