package ast

import "fnc/scope"

// Stmt is the payload of a statement node.  It is implemented by each of the
// statement payload types below.
type Stmt interface {
	stmtNode()
}

// Block is a braced list of statements.  Every block owns the scope that its
// declarations are bound in.
type Block struct {
	Stmts []*Node[Stmt]
	Scope scope.ID
}

// Decl is a variable declaration: `let name [: annot] = val`.
type Decl struct {
	Name  *Node[*Ident]
	Annot *Node[*Ident]
	Val   *Node[Expr]
}

// Assign is an assignment, optionally with a compound operator: `name [op]= val`.
type Assign struct {
	Name *Node[*Ident]
	Op   *Oper
	Val  *Node[Expr]
}

// If is an if statement.
type If struct {
	Cond *Node[Expr]
	Body *Node[*Block]
}

// While is a while loop.
type While struct {
	Cond *Node[Expr]
	Body *Node[*Block]
}

// DoWhile is a do-while loop.  Its condition follows its body.
type DoWhile struct {
	Body *Node[*Block]
	Cond *Node[Expr]
}

// Func is a function definition.
type Func struct {
	Name   *Node[*Ident]
	Params []*Node[*Param]
	Ret    *Node[*Ident]
	Body   *Node[*Block]
}

// Continue is a continue statement.
type Continue struct{}

// Return is a return statement.  Val is nil if no value is returned.
type Return struct {
	Val *Node[Expr]
}

func (*Block) stmtNode()    {}
func (*Decl) stmtNode()     {}
func (*Assign) stmtNode()   {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*DoWhile) stmtNode()  {}
func (*Func) stmtNode()     {}
func (*Continue) stmtNode() {}
func (*Return) stmtNode()   {}
