package syntax

import (
	"fnc/ast"
	"fnc/report"
	"fnc/scope"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse as well as any
// semantic actions they perform during parsing.

// Parser is the parser for an `fn` program.  It is a recursive descent parser
// which moves over the filtered token list produced by the lexer, builds the
// AST and creates the scopes of the program as it enters blocks.  It declares
// variables as it parses, but it does NOT perform any symbol lookups: that is
// left to the checker.  All parsing functions assume that they begin with the
// parser centered on the first token of their production and must consume all
// tokens (including the last) of their production, leaving the parser on the
// next token.
type Parser struct {
	// The tokens being parsed.
	tokens []*Token

	// The index of the current token.
	ndx int

	// The token the parser is positioned on.
	tok *Token

	// The last token the parser consumed.
	lookbehind *Token

	// The scope table being populated.
	table *scope.Table

	// The scope declarations are currently bound in.
	currScope scope.ID
}

// NewParser creates a new parser over the given tokens.  The tokens should
// already have been filtered of whitespace.  Scopes are created in table: the
// program itself is bound in the table's root scope.
func NewParser(tokens []*Token, table *scope.Table) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TOK_EOF {
		var end report.Position
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].End
		}

		tokens = append(tokens, &Token{Kind: TOK_EOF, Start: end, End: end})
	}

	return &Parser{
		tokens:     tokens,
		tok:        tokens[0],
		lookbehind: &Token{Kind: TOK_EOF, Start: tokens[0].Start, End: tokens[0].Start},
		table:      table,
		currScope:  table.Root(),
	}
}

// Parse parses a list of tokens into the top-level block of a program.
func Parse(tokens []*Token, table *scope.Table) (*ast.Node[*ast.Block], error) {
	return NewParser(tokens, table).Parse()
}

// program = {stmt line_ending} 'EOF'
func (p *Parser) Parse() (*ast.Node[*ast.Block], error) {
	start := p.tok.Start

	var stmts []*ast.Node[ast.Stmt]
	for !p.got(TOK_EOF) {
		if p.tok.IsLineEnding() {
			p.next()
			continue
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return ast.NewNode(&ast.Block{
		Stmts: stmts,
		Scope: p.table.Root(),
	}, start, p.tok.End), nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  The parser never moves past the
// final EOF token.
func (p *Parser) next() {
	p.lookbehind = p.tok

	if p.ndx < len(p.tokens)-1 {
		p.ndx++
		p.tok = p.tokens[p.ndx]
	}
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is on a token of a given kind and moves the
// parser forward.  It returns the consumed token.
func (p *Parser) want(kind int) (*Token, error) {
	if p.got(kind) {
		tok := p.tok
		p.next()
		return tok, nil
	}

	return nil, p.reject(kind)
}

// reject produces an unexpected token error on the current token.
func (p *Parser) reject(expected int) error {
	return report.Raise(
		report.UnexpectedToken,
		p.tok.Start,
		p.tok.End,
		"expected %s, but found %s",
		KindRepr(expected),
		p.tok.Repr(),
	)
}

// errorOnTok produces an error of the given kind on the current token.
func (p *Parser) errorOnTok(code report.ErrorCode, msg string, args ...interface{}) error {
	return report.Raise(code, p.tok.Start, p.tok.End, msg, args...)
}
