package scope

import (
	"errors"

	"fnc/types"
)

// ErrVariableNotFound is returned when no scope in a lookup chain holds a
// suitable binding for a name.
var ErrVariableNotFound = errors.New("variable not found")

// ID identifies a scope within its table.
type ID int

// NoParent is the parent ID of the root scope.
const NoParent ID = -1

// Binding is a variable binding in a scope.
type Binding struct {
	// The unique ID of the binding within its table.
	ID int

	// The resolved type of the binding.  This is `nil` until the declaration
	// of the binding is checked.
	Type types.Type
}

// scopeRecord is a single scope stored in the table.
type scopeRecord struct {
	parent   ID
	bindings map[string]*Binding
}

// Table is an arena of nested scopes.  Scopes refer to their parents by ID so
// every scope created during parsing stays reachable for the lifetime of the
// table.  A table is created once per parse and also owns the counter used to
// assign binding IDs: independent tables always number their bindings from
// zero.
type Table struct {
	scopes []scopeRecord

	nextBindingID int
}

// NewTable creates a new table containing only the root scope.
func NewTable() *Table {
	t := &Table{}
	t.NewScope(NoParent)
	return t
}

// Root returns the ID of the root scope.
func (t *Table) Root() ID {
	return 0
}

// Len returns the number of scopes in the table.
func (t *Table) Len() int {
	return len(t.scopes)
}

// NewScope creates a new scope enclosed by parent and returns its ID.
func (t *Table) NewScope(parent ID) ID {
	t.scopes = append(t.scopes, scopeRecord{
		parent:   parent,
		bindings: make(map[string]*Binding),
	})

	return ID(t.Len() - 1)
}

// Parent returns the ID of the scope enclosing s.  For the root scope, this is
// NoParent.
func (t *Table) Parent(s ID) ID {
	return t.scopes[s].parent
}

// Lookup returns the binding declared directly in s by the given name if one
// exists.  It does not search enclosing scopes.
func (t *Table) Lookup(s ID, name string) (*Binding, bool) {
	b, ok := t.scopes[s].bindings[name]
	return b, ok
}

// -----------------------------------------------------------------------------

// Declare inserts a fresh, untyped binding into s.  A previous binding of the
// same name in s or any enclosing scope is shadowed: redeclaration is not an
// error.
func (t *Table) Declare(s ID, name string) *Binding {
	b := t.newBinding(nil)
	t.scopes[s].bindings[name] = b
	return b
}

// BindParam inserts a binding which is already resolved to typ into s.
func (t *Table) BindParam(s ID, name string, typ types.Type) *Binding {
	b := t.newBinding(typ)
	t.scopes[s].bindings[name] = b
	return b
}

// newBinding creates a new binding with the next binding ID.
func (t *Table) newBinding(typ types.Type) *Binding {
	b := &Binding{ID: t.nextBindingID, Type: typ}
	t.nextBindingID++
	return b
}

// -----------------------------------------------------------------------------

// Resolve looks up the binding visible from s by name.  Only bindings whose
// type has been resolved count: an untyped binding does not hide a typed
// binding of the same name in an enclosing scope.
func (t *Table) Resolve(s ID, name string) (*Binding, error) {
	for id := s; id != NoParent; id = t.Parent(id) {
		if b, ok := t.scopes[id].bindings[name]; ok && b.Type != nil {
			return b, nil
		}
	}

	return nil, ErrVariableNotFound
}

// SetType sets the type of the nearest binding named name visible from s,
// typed or not.
func (t *Table) SetType(s ID, name string, typ types.Type) error {
	for id := s; id != NoParent; id = t.Parent(id) {
		if b, ok := t.scopes[id].bindings[name]; ok {
			b.Type = typ
			return nil
		}
	}

	return ErrVariableNotFound
}
