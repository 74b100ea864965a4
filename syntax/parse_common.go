package syntax

import (
	"fnc/ast"
	"fnc/report"
)

// block = '{' {stmt line_ending} '}' ;
//
// The block opens a new scope as a child of the current scope.  The enclosing
// scope is restored after the closing brace.
func (p *Parser) parseBlock() (*ast.Node[*ast.Block], error) {
	start := p.tok.Start
	if _, err := p.want(TOK_LBRACE); err != nil {
		return nil, err
	}

	enclosing := p.currScope
	p.currScope = p.table.NewScope(enclosing)
	block := &ast.Block{Scope: p.currScope}

	for !p.got(TOK_RBRACE) {
		switch {
		case p.got(TOK_EOF):
			return nil, p.reject(TOK_RBRACE)
		case p.tok.IsLineEnding():
			p.next()
		default:
			stmt, err := p.parseStmt()
			if err != nil {
				return nil, err
			}

			block.Stmts = append(block.Stmts, stmt)
		}
	}

	p.next()
	p.currScope = enclosing

	return ast.NewNode(block, start, p.lookbehind.End), nil
}

// name = 'IDENT' ;
//
// Keywords and boolean literals are reserved and cannot be used as names.
func (p *Parser) parseName() (*ast.Node[*ast.Ident], error) {
	if IsKeyword(p.tok.Kind) || p.got(TOK_BOOLLIT) {
		return nil, p.errorOnTok(
			report.ReservedNameUsed,
			"cannot use %s as a name because it is a reserved keyword",
			p.tok.Repr(),
		)
	}

	tok, err := p.want(TOK_IDENT)
	if err != nil {
		return nil, err
	}

	return ast.NewNode(&ast.Ident{Name: tok.Value}, tok.Start, tok.End), nil
}

// type_ext = ':' 'IDENT' ;
func (p *Parser) parseTypeExt() (*ast.Node[*ast.Ident], error) {
	if _, err := p.want(TOK_COLON); err != nil {
		return nil, err
	}

	tok, err := p.want(TOK_IDENT)
	if err != nil {
		return nil, err
	}

	return ast.NewNode(&ast.Ident{Name: tok.Value}, tok.Start, tok.End), nil
}

// params = '(' [param {',' param}] ')' ;
func (p *Parser) parseParams() ([]*ast.Node[*ast.Param], error) {
	if _, err := p.want(TOK_LPAREN); err != nil {
		return nil, err
	}

	var params []*ast.Node[*ast.Param]
	if !p.got(TOK_RPAREN) {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}

			params = append(params, param)

			if !p.got(TOK_COMMA) {
				break
			}

			p.next()
		}
	}

	if _, err := p.want(TOK_RPAREN); err != nil {
		return nil, err
	}

	return params, nil
}

// param = name type_ext ;
func (p *Parser) parseParam() (*ast.Node[*ast.Param], error) {
	start := p.tok.Start

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	annot, err := p.parseTypeExt()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(&ast.Param{Name: name, Annot: annot}, start, p.lookbehind.End), nil
}

// newOper creates an operator from its token.
func newOper(tok *Token) *ast.Oper {
	return &ast.Oper{
		Kind:  tok.Kind,
		Name:  tok.Value,
		Start: tok.Start,
		End:   tok.End,
	}
}
