package walk

import (
	"fnc/ast"
	"fnc/types"
)

// walkBlock walks a block inside the scope it owns.
func (w *Walker) walkBlock(block *ast.Block) error {
	enclosing := w.currScope
	w.currScope = block.Scope
	defer func() { w.currScope = enclosing }()

	for _, stmt := range block.Stmts {
		if err := w.walkStmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

// walkStmt walks a statement.
func (w *Walker) walkStmt(stmt *ast.Node[ast.Stmt]) error {
	switch v := stmt.Src.(type) {
	case *ast.Block:
		return w.walkBlock(v)
	case *ast.Decl:
		return w.walkDecl(v)
	case *ast.Assign:
		return w.walkAssign(v)
	case *ast.If:
		if err := w.checkCond(v.Cond); err != nil {
			return err
		}

		return w.walkBlock(v.Body.Src)
	case *ast.While:
		if err := w.checkCond(v.Cond); err != nil {
			return err
		}

		return w.walkBlock(v.Body.Src)
	case *ast.DoWhile:
		if err := w.walkBlock(v.Body.Src); err != nil {
			return err
		}

		return w.checkCond(v.Cond)
	case *ast.Continue:
		return nil
	case *ast.Return:
		return w.walkReturn(stmt, v)
	case *ast.Func:
		return w.walkFunc(v)
	}

	return nil
}

// walkDecl walks a variable declaration.  The annotation of the declaration is
// compared by name against the type of its initializer.
func (w *Walker) walkDecl(decl *ast.Decl) error {
	typ, err := w.walkExpr(decl.Val)
	if err != nil {
		return err
	}

	if decl.Annot != nil && decl.Annot.Src.Name != typ.Repr() {
		return w.error(
			decl.Val.Start,
			decl.Val.End,
			"`%s` is declared as %s but assigned %s",
			decl.Name.Src.Name,
			decl.Annot.Src.Name,
			typ.Repr(),
		)
	}

	if err := w.table.SetType(w.currScope, decl.Name.Src.Name, typ); err != nil {
		return w.notFound(decl.Name.Src.Name, decl.Name.Start, decl.Name.End)
	}

	return nil
}

// walkAssign walks an assignment.
func (w *Walker) walkAssign(assign *ast.Assign) error {
	typ, err := w.walkExpr(assign.Val)
	if err != nil {
		return err
	}

	name := assign.Name
	b, err := w.lookup(name.Src.Name, name.Start, name.End)
	if err != nil {
		return err
	}

	if !types.Equals(b.Type, typ) {
		return w.error(
			name.Start,
			name.End,
			"cannot assign %s to `%s` of type %s",
			typ.Repr(),
			name.Src.Name,
			b.Type.Repr(),
		)
	}

	return nil
}

// checkCond walks the condition of an if statement or loop and asserts that it
// is a boolean.
func (w *Walker) checkCond(cond *ast.Node[ast.Expr]) error {
	typ, err := w.walkExpr(cond)
	if err != nil {
		return err
	}

	if !types.Equals(typ, types.Bool) {
		return w.error(cond.Start, cond.End, "expected a condition of type bool, but got %s", typ.Repr())
	}

	return nil
}

// walkReturn walks a return statement.  The returned value (or lack thereof)
// must match the return type of the enclosing function.
func (w *Walker) walkReturn(stmt *ast.Node[ast.Stmt], ret *ast.Return) error {
	var typ types.Type
	if ret.Val != nil {
		var err error
		if typ, err = w.walkExpr(ret.Val); err != nil {
			return err
		}
	}

	switch {
	case typ != nil && w.enclosingReturnType != nil:
		if !types.Equals(typ, w.enclosingReturnType) {
			return w.error(
				stmt.Start,
				stmt.End,
				"expected a return value of type %s, but got %s",
				w.enclosingReturnType.Repr(),
				typ.Repr(),
			)
		}
	case typ != nil:
		return w.error(stmt.Start, stmt.End, "expected no return value, but got %s", typ.Repr())
	case w.enclosingReturnType != nil:
		return w.error(
			stmt.Start,
			stmt.End,
			"expected a return value of type %s, but got none",
			w.enclosingReturnType.Repr(),
		)
	}

	return nil
}

// walkFunc walks a function definition.  Its parameters are bound into the
// scope of its body before the body is walked.
func (w *Walker) walkFunc(fn *ast.Func) error {
	var retType types.Type
	if fn.Ret != nil {
		var err error
		if retType, err = w.typeFromAnnot(fn.Ret); err != nil {
			return err
		}
	}

	bodyScope := fn.Body.Src.Scope
	for _, param := range fn.Params {
		typ, err := w.typeFromAnnot(param.Src.Annot)
		if err != nil {
			return err
		}

		w.table.BindParam(bodyScope, param.Src.Name.Src.Name, typ)
	}

	enclosingReturnType := w.enclosingReturnType
	w.enclosingReturnType = retType
	defer func() { w.enclosingReturnType = enclosingReturnType }()

	return w.walkBlock(fn.Body.Src)
}

// typeFromAnnot converts a type annotation into a concrete type.  Wildcard
// types such as `int` are rejected.
func (w *Walker) typeFromAnnot(annot *ast.Node[*ast.Ident]) (types.Type, error) {
	typ, ok := types.FromName(annot.Src.Name)
	if !ok {
		return nil, w.error(annot.Start, annot.End, "unknown type `%s`", annot.Src.Name)
	}

	if types.IsWildcard(typ) {
		return nil, w.error(annot.Start, annot.End, "incomplete type `%s`", annot.Src.Name)
	}

	return typ, nil
}
