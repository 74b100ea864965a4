package syntax

import (
	"fnc/ast"
	"fnc/report"
)

// stmt = block | decl | assign | if_stmt | while_stmt | do_while_stmt
//      | 'continue' | return_stmt | func_def ;
func (p *Parser) parseStmt() (*ast.Node[ast.Stmt], error) {
	var (
		stmt *ast.Node[ast.Stmt]
		err  error
	)

	switch p.tok.Kind {
	case TOK_LBRACE:
		stmt, err = p.parseBlockStmt()
	case TOK_LET:
		stmt, err = p.parseDecl()
	case TOK_IDENT:
		stmt, err = p.parseAssign()
	case TOK_IF:
		stmt, err = p.parseIf()
	case TOK_WHILE:
		stmt, err = p.parseWhile()
	case TOK_DO:
		stmt, err = p.parseDoWhile()
	case TOK_CONTINUE:
		tok := p.tok
		p.next()
		stmt = ast.NewNode[ast.Stmt](&ast.Continue{}, tok.Start, tok.End)
	case TOK_RETURN:
		stmt, err = p.parseReturn()
	case TOK_FUNC:
		stmt, err = p.parseFuncDef()
	default:
		return nil, p.errorOnTok(report.InvalidStatement, "invalid statement beginning with %s", p.tok.Repr())
	}

	if err != nil {
		return nil, err
	}

	if err := p.endStmt(); err != nil {
		return nil, err
	}

	return stmt, nil
}

// endStmt asserts that the statement just parsed is terminated: the parser
// must be on a line ending or the closing brace of the enclosing block.  The
// terminator is not consumed.
func (p *Parser) endStmt() error {
	if p.tok.IsLineEnding() || p.got(TOK_RBRACE) {
		return nil
	}

	return p.errorOnTok(report.UnexpectedToken, "expected end of statement, but found %s", p.tok.Repr())
}

// block_stmt = block ;
func (p *Parser) parseBlockStmt() (*ast.Node[ast.Stmt], error) {
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Stmt](block.Src, block.Start, block.End), nil
}

// decl = 'let' 'IDENT' [type_ext] '=' expr ;
//
// The declared name is bound untyped in the current scope: the checker gives
// it a type once its initializer is known.
func (p *Parser) parseDecl() (*ast.Node[ast.Stmt], error) {
	start := p.tok.Start
	p.next()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var annot *ast.Node[*ast.Ident]
	if p.got(TOK_COLON) {
		if annot, err = p.parseTypeExt(); err != nil {
			return nil, err
		}
	}

	if _, err := p.want(TOK_ASSIGN); err != nil {
		return nil, err
	}

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.table.Declare(p.currScope, name.Src.Name)

	return ast.NewNode[ast.Stmt](&ast.Decl{
		Name:  name,
		Annot: annot,
		Val:   val,
	}, start, p.lookbehind.End), nil
}

// assign = 'IDENT' [binary_op] '=' expr ;
func (p *Parser) parseAssign() (*ast.Node[ast.Stmt], error) {
	start := p.tok.Start

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var op *ast.Oper
	if isBinaryOperator(p.tok.Kind) {
		op = newOper(p.tok)
		p.next()
	}

	if _, err := p.want(TOK_ASSIGN); err != nil {
		return nil, err
	}

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Stmt](&ast.Assign{
		Name: name,
		Op:   op,
		Val:  val,
	}, start, p.lookbehind.End), nil
}

// if_stmt = 'if' expr block ;
func (p *Parser) parseIf() (*ast.Node[ast.Stmt], error) {
	start := p.tok.Start
	p.next()

	cond, body, err := p.parseCondBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Stmt](&ast.If{Cond: cond, Body: body}, start, p.lookbehind.End), nil
}

// while_stmt = 'while' expr block ;
func (p *Parser) parseWhile() (*ast.Node[ast.Stmt], error) {
	start := p.tok.Start
	p.next()

	cond, body, err := p.parseCondBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Stmt](&ast.While{Cond: cond, Body: body}, start, p.lookbehind.End), nil
}

// parseCondBlock parses the `expr block` tail shared by `if` and `while`.
func (p *Parser) parseCondBlock() (*ast.Node[ast.Expr], *ast.Node[*ast.Block], error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}

	return cond, body, nil
}

// do_while_stmt = 'do' block 'while' expr ;
func (p *Parser) parseDoWhile() (*ast.Node[ast.Stmt], error) {
	start := p.tok.Start
	p.next()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_WHILE); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Stmt](&ast.DoWhile{Body: body, Cond: cond}, start, p.lookbehind.End), nil
}

// return_stmt = 'return' [expr] ;
func (p *Parser) parseReturn() (*ast.Node[ast.Stmt], error) {
	start := p.tok.Start
	p.next()

	if p.tok.IsLineEnding() || p.got(TOK_RBRACE) {
		return ast.NewNode[ast.Stmt](&ast.Return{}, start, p.lookbehind.End), nil
	}

	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Stmt](&ast.Return{Val: val}, start, p.lookbehind.End), nil
}

// func_def = 'func' 'IDENT' '(' [param {',' param}] ')' [type_ext] block ;
//
// Parameters are not declared here: the checker binds them into the scope of
// the function body once their types are resolved.
func (p *Parser) parseFuncDef() (*ast.Node[ast.Stmt], error) {
	start := p.tok.Start
	p.next()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	var ret *ast.Node[*ast.Ident]
	if p.got(TOK_COLON) {
		if ret, err = p.parseTypeExt(); err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewNode[ast.Stmt](&ast.Func{
		Name:   name,
		Params: params,
		Ret:    ret,
		Body:   body,
	}, start, p.lookbehind.End), nil
}
