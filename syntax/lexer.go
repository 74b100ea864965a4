package syntax

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"fnc/report"
)

// Lexer is responsible for tokenizing source text.  It makes a single pass over
// the text: at each position it tries to match a symbol pattern and otherwise
// captures the character into a free-form buffer which becomes an identifier,
// keyword or literal once a symbol (or the end of the text) interrupts it.
type Lexer struct {
	src string

	// The position of the lexer in the source text.
	pos report.Position

	// Whether or not the lexer is currently capturing free-form text and the
	// position at which that capture began.
	capturing    bool
	captureStart report.Position

	tokens []*Token
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Scan tokenizes the given source text.  Whitespace and newlines are included
// in the produced tokens: use Filter to remove the whitespace before parsing.
// The last token is always an EOF token.
func Scan(src string) ([]*Token, error) {
	return NewLexer(src).Lex()
}

// Filter returns the tokens with all whitespace tokens removed.  Newlines are
// kept since they terminate statements.
func Filter(tokens []*Token) []*Token {
	filtered := make([]*Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != TOK_WHITESPACE {
			filtered = append(filtered, tok)
		}
	}

	return filtered
}

// Lex tokenizes the entire source text of the lexer.
func (l *Lexer) Lex() ([]*Token, error) {
	for l.pos.Idx < len(l.src) {
		if kind, length, ok := l.matchSymbol(); ok {
			if err := l.closeCapture(); err != nil {
				return nil, err
			}

			start := l.pos
			for l.pos.Idx < start.Idx+length {
				l.advance()
			}

			l.tokens = append(l.tokens, &Token{
				Kind:  kind,
				Value: l.src[start.Idx:l.pos.Idx],
				Start: start,
				End:   l.pos,
			})
		} else {
			if !l.capturing {
				l.capturing = true
				l.captureStart = l.pos
			}

			l.advance()
		}
	}

	if err := l.closeCapture(); err != nil {
		return nil, err
	}

	l.tokens = append(l.tokens, &Token{Kind: TOK_EOF, Start: l.pos, End: l.pos})
	return l.tokens, nil
}

// -----------------------------------------------------------------------------

// matchSymbol finds the longest symbol pattern matching at the lexer's current
// position.  It returns the kind of the symbol and its length in bytes.
func (l *Lexer) matchSymbol() (int, int, bool) {
	rest := l.src[l.pos.Idx:]

	kind, length := 0, 0
	for _, sp := range symbolPatterns {
		if len(sp.pattern) > length && len(sp.pattern) <= len(rest) && rest[:len(sp.pattern)] == sp.pattern {
			kind = sp.kind
			length = len(sp.pattern)
		}
	}

	return kind, length, length > 0
}

// closeCapture turns the captured free-form text into a token if the lexer is
// capturing.  Numbers are tried first, then keywords, and everything else is an
// identifier.
func (l *Lexer) closeCapture() error {
	if !l.capturing {
		return nil
	}

	l.capturing = false

	value := l.src[l.captureStart.Idx:l.pos.Idx]
	tok := &Token{Value: value, Start: l.captureStart, End: l.pos}

	if isDecimalDigit(value[0]) {
		num, err := parseDecimal(value)
		if err != nil {
			return report.Raise(
				report.IncorrectParsingType,
				tok.Start,
				tok.End,
				"malformed numeric literal `%s`",
				value,
			)
		}

		tok.Kind = TOK_NUMLIT
		tok.Num = num
	} else if kind, ok := keywordPatterns[value]; ok {
		tok.Kind = kind
	} else if value == "true" || value == "false" {
		tok.Kind = TOK_BOOLLIT
	} else {
		tok.Kind = TOK_IDENT
	}

	l.tokens = append(l.tokens, tok)
	return nil
}

// advance moves the lexer forward one rune.
func (l *Lexer) advance() {
	c, size := utf8.DecodeRuneInString(l.src[l.pos.Idx:])
	l.pos = l.pos.Advance(c, size)
}

// parseDecimal parses a decimal numeric literal: digits with an optional
// fractional part and an optional unsigned exponent.  Literals too large to
// represent are infinite.
func parseDecimal(value string) (float64, error) {
	i := skipDigits(value, 0)
	if i < len(value) && value[i] == '.' {
		i = skipDigits(value, i+1)
	}

	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		if j := skipDigits(value, i+1); j > i+1 {
			i = j
		}
	}

	if i != len(value) {
		return 0, strconv.ErrSyntax
	}

	num, err := strconv.ParseFloat(value, 64)
	if errors.Is(err, strconv.ErrRange) {
		return num, nil
	}

	return num, err
}

// skipDigits returns the index of the first non-digit in value at or after i.
func skipDigits(value string, i int) int {
	for i < len(value) && isDecimalDigit(value[i]) {
		i++
	}

	return i
}

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
