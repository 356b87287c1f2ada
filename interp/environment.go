package interp

import "github.com/mamba-lang/go-mamba/errors"

// SymbolKind classifies what a name is bound to. It appears in
// DuplicateSymbol messages.
type SymbolKind string

const (
	SymbolVariable SymbolKind = "variable"
	SymbolFunction SymbolKind = "function"
	SymbolBuiltin  SymbolKind = "builtin"
)

type binding struct {
	kind  SymbolKind
	value Value
}

// Environment provides lexical scoping. A child holds a reference to its
// parent; lookup walks outward to the root. The root scope is owned by one
// execution context and torn down with it.
type Environment struct {
	store  map[string]binding
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		store:  make(map[string]binding),
		parent: parent,
	}
}

// Child creates a scope nested under e.
func (e *Environment) Child() *Environment {
	return NewEnvironment(e)
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Declare binds name in this scope. It fails with DuplicateSymbol when the
// name is already bound in the same scope, or when it would shadow a
// non-variable binding (a function or builtin) from an enclosing scope.
func (e *Environment) Declare(name string, kind SymbolKind, value Value) *errors.Error {
	if existing, ok := e.store[name]; ok {
		return errors.New(errors.DuplicateSymbol,
			"Cannot redeclare %s '%s'", existing.kind, name)
	}
	for scope := e.parent; scope != nil; scope = scope.parent {
		if existing, ok := scope.store[name]; ok && existing.kind != SymbolVariable {
			return errors.New(errors.DuplicateSymbol,
				"Cannot redeclare %s '%s'", existing.kind, name)
		}
	}
	e.store[name] = binding{kind: kind, value: value}
	return nil
}

// Assign updates an existing variable found by walking outward, or declares
// a new variable in the current scope when the name is unbound. Assigning to
// a name bound to a function or builtin fails with DuplicateSymbol.
func (e *Environment) Assign(name string, value Value) *errors.Error {
	for scope := e; scope != nil; scope = scope.parent {
		if existing, ok := scope.store[name]; ok {
			if existing.kind != SymbolVariable {
				return errors.New(errors.DuplicateSymbol,
					"Cannot redeclare %s '%s'", existing.kind, name)
			}
			scope.store[name] = binding{kind: SymbolVariable, value: value}
			return nil
		}
	}
	e.store[name] = binding{kind: SymbolVariable, value: value}
	return nil
}

// Lookup resolves name by walking from this scope outward. Inner bindings
// shadow outer ones.
func (e *Environment) Lookup(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if b, ok := scope.store[name]; ok {
			return b.value, true
		}
	}
	return nil, false
}

// KindOf reports the symbol kind of name, if declared.
func (e *Environment) KindOf(name string) (SymbolKind, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if b, ok := scope.store[name]; ok {
			return b.kind, true
		}
	}
	return "", false
}
