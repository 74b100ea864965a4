package ast

// Expr is the payload of an expression node.
type Expr interface {
	exprNode()
}

// NumLit is a numeric literal.
type NumLit struct {
	Value float64
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

// BinaryOp is a binary operator application.
type BinaryOp struct {
	Op       Oper
	Lhs, Rhs *Node[Expr]
}

// UnaryOp is a prefix unary operator application.
type UnaryOp struct {
	Op      Oper
	Operand *Node[Expr]
}

func (*Ident) exprNode()    {}
func (*NumLit) exprNode()   {}
func (*BoolLit) exprNode()  {}
func (*BinaryOp) exprNode() {}
func (*UnaryOp) exprNode()  {}
