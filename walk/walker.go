package walk

import (
	"fnc/ast"
	"fnc/report"
	"fnc/scope"
	"fnc/types"
)

// Walker is responsible for walking a parsed program and performing semantic
// analysis on it: it resolves the type of every expression, gives every
// declared binding its type and enforces the type contracts of declarations,
// assignments, conditions and returns.
type Walker struct {
	// The scope table populated by the parser.
	table *scope.Table

	// The scope the walker is currently inside.  This mirrors the scope the
	// parser was in when it parsed the node being walked.
	currScope scope.ID

	// The return type of the enclosing function.  If this is `nil`, then there
	// is either no enclosing function or the enclosing function returns nothing.
	enclosingReturnType types.Type
}

// Check semantically analyzes a parsed program.  The types of all expression
// nodes are written into the tree and the types of all bindings are written
// into the table.  The first error encountered is returned.
func Check(prog *ast.Node[*ast.Block], table *scope.Table) error {
	w := &Walker{table: table, currScope: table.Root()}
	return w.walkBlock(prog.Src)
}

// -----------------------------------------------------------------------------

// lookup resolves the binding of a name used at the given span.
func (w *Walker) lookup(name string, start, end report.Position) (*scope.Binding, error) {
	b, err := w.table.Resolve(w.currScope, name)
	if err != nil {
		return nil, w.notFound(name, start, end)
	}

	return b, nil
}

// notFound produces the error for a name with no visible binding.
func (w *Walker) notFound(name string, start, end report.Position) error {
	return report.Raise(report.VariableNotFound, start, end, "the variable `%s` does not exist", name)
}

// error produces a type mismatch error on the given span.
func (w *Walker) error(start, end report.Position, msg string, args ...interface{}) error {
	return report.Raise(report.TypeMismatch, start, end, msg, args...)
}
