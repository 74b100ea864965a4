package syntax

import (
	"fnc/ast"
	"fnc/report"
)

// expr = binop_expr ;
func (p *Parser) parseExpr() (*ast.Node[ast.Expr], error) {
	return p.parseBinaryOp(0)
}

// binop_expr = unop_expr {binary_op unop_expr} ;
//
// Binary operators are parsed by precedence climbing over the tiers of
// BinaryOperators.  Each tier loops rather than recurses on its right operand
// so that operators of equal precedence associate to the left.
func (p *Parser) parseBinaryOp(tier int) (*ast.Node[ast.Expr], error) {
	if tier == len(BinaryOperators) {
		return p.parseUnaryOp()
	}

	start := p.tok.Start

	lhs, err := p.parseBinaryOp(tier + 1)
	if err != nil {
		return nil, err
	}

	for containsKind(BinaryOperators[tier], p.tok.Kind) {
		op := newOper(p.tok)
		p.next()

		rhs, err := p.parseBinaryOp(tier + 1)
		if err != nil {
			return nil, err
		}

		lhs = ast.NewNode[ast.Expr](&ast.BinaryOp{
			Op:  *op,
			Lhs: lhs,
			Rhs: rhs,
		}, start, p.lookbehind.End)
	}

	return lhs, nil
}

// unop_expr = [unary_op] atom ;
func (p *Parser) parseUnaryOp() (*ast.Node[ast.Expr], error) {
	if !containsKind(UnaryOperators, p.tok.Kind) {
		return p.parseAtom()
	}

	start := p.tok.Start
	op := newOper(p.tok)
	p.next()

	operand, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Expr](&ast.UnaryOp{
		Op:      *op,
		Operand: operand,
	}, start, p.lookbehind.End), nil
}

// atom = 'IDENT' | 'NUMLIT' | 'BOOLLIT' | '(' expr ')' ;
//
// A parenthesized expression is returned without a wrapping node.
func (p *Parser) parseAtom() (*ast.Node[ast.Expr], error) {
	tok := p.tok

	switch tok.Kind {
	case TOK_IDENT:
		p.next()
		return ast.NewNode[ast.Expr](&ast.Ident{Name: tok.Value}, tok.Start, tok.End), nil
	case TOK_NUMLIT:
		p.next()
		return ast.NewNode[ast.Expr](&ast.NumLit{Value: tok.Num}, tok.Start, tok.End), nil
	case TOK_BOOLLIT:
		p.next()
		return ast.NewNode[ast.Expr](&ast.BoolLit{Value: tok.Value == "true"}, tok.Start, tok.End), nil
	case TOK_LPAREN:
		p.next()

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.want(TOK_RPAREN); err != nil {
			return nil, err
		}

		return expr, nil
	default:
		return nil, p.errorOnTok(report.InvalidExpression, "invalid expression beginning with %s", tok.Repr())
	}
}
