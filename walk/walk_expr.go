package walk

import (
	"fnc/ast"
	"fnc/scope"
	"fnc/types"
)

// walkExpr walks an expression and resolves its type.  The resolved type is
// stored on the expression node.
func (w *Walker) walkExpr(expr *ast.Node[ast.Expr]) (types.Type, error) {
	var (
		typ types.Type
		err error
	)

	switch v := expr.Src.(type) {
	case *ast.Ident:
		var b *scope.Binding
		if b, err = w.lookup(v.Name, expr.Start, expr.End); err == nil {
			typ = b.Type
		}
	case *ast.NumLit:
		typ = types.Int32
	case *ast.BoolLit:
		typ = types.Bool
	case *ast.BinaryOp:
		typ, err = w.walkBinaryOp(v)
	case *ast.UnaryOp:
		typ, err = w.walkExpr(v.Operand)
	}

	if err != nil {
		return nil, err
	}

	expr.Type = typ
	return typ, nil
}

// walkBinaryOp walks a binary operator application.  Both operands must be of
// the same type and the application takes the type of its left operand.
func (w *Walker) walkBinaryOp(binop *ast.BinaryOp) (types.Type, error) {
	lhsType, err := w.walkExpr(binop.Lhs)
	if err != nil {
		return nil, err
	}

	rhsType, err := w.walkExpr(binop.Rhs)
	if err != nil {
		return nil, err
	}

	if !types.Equals(lhsType, rhsType) {
		return nil, w.error(
			binop.Op.Start,
			binop.Op.End,
			"cannot use the `%s` operator on %s and %s",
			binop.Op.Name,
			lhsType.Repr(),
			rhsType.Repr(),
		)
	}

	return lhsType, nil
}
