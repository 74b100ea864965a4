package ast

import (
	"fnc/report"
	"fnc/types"
)

// Node wraps a statement, expression or other syntactic element with the span
// of source text it was parsed from.  Type is the resolved type of the node: it
// is `nil` until the checker resolves it, and it is only ever set on expression
// nodes.
type Node[T any] struct {
	Src T

	Start, End report.Position

	Type types.Type
}

// NewNode creates a new node spanning from start to end.
func NewNode[T any](src T, start, end report.Position) *Node[T] {
	return &Node[T]{Src: src, Start: start, End: end}
}

// Ident is an identifier: a variable name, type label, parameter name, etc.
type Ident struct {
	Name string
}

// Param is a function parameter.  Parameters must always have a type label.
type Param struct {
	Name  *Node[*Ident]
	Annot *Node[*Ident]
}

// Oper is an operator applied in an expression or a compound assignment.
type Oper struct {
	// The token kind of the operator.
	Kind int

	// The spelling of the operator.
	Name string

	// The span of the operator token.
	Start, End report.Position
}
