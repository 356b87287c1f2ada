package interp

import (
	"strconv"
	"strings"

	"github.com/mamba-lang/go-mamba/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindString
	KindBoolean
	KindFunction
	KindBuiltin
	KindNil

	// kindReturn marks the internal return sentinel. It never reaches user
	// code; a distinct kind keeps an accidental leak visible instead of
	// passing as nil.
	kindReturn
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	case KindNil:
		return "nil"
	case kindReturn:
		return "return"
	}
	return "unknown"
}

// Value is a runtime value.
type Value interface {
	Kind() Kind
	// Inspect returns the value's display form, the exact text `say` emits.
	Inspect() string
}

// Integer is a 64-bit integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind      { return KindInteger }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit floating point value.
type Float struct {
	Value float64
}

func (f *Float) Kind() Kind      { return KindFloat }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'f', -1, 64) }

// String is a string value.
type String struct {
	Value string
}

func (s *String) Kind() Kind      { return KindString }
func (s *String) Inspect() string { return s.Value }

// Boolean is a boolean value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind      { return KindBoolean }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

// NilValue is the nil value.
type NilValue struct{}

func (n *NilValue) Kind() Kind      { return KindNil }
func (n *NilValue) Inspect() string { return "nil" }

// Function is a user-declared function closed over its defining environment.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Kind() Kind { return KindFunction }
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Value
	}
	return "function " + f.Name + "(" + strings.Join(params, ", ") + ")"
}

// BuiltinFn is the host implementation of a builtin callable.
type BuiltinFn func(args []Value) (Value, error)

// Builtin is a callable pre-declared in the global scope.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (b *Builtin) Kind() Kind      { return KindBuiltin }
func (b *Builtin) Inspect() string { return "builtin " + b.Name }

// Shared immutable singletons.
var (
	nilValue   = &NilValue{}
	trueValue  = &Boolean{Value: true}
	falseValue = &Boolean{Value: false}
)

func boolValue(v bool) *Boolean {
	if v {
		return trueValue
	}
	return falseValue
}

// returnValue carries a return statement's value up the block stack. It is
// internal control flow, never observable by user code.
type returnValue struct {
	value Value
}

func (r *returnValue) Kind() Kind      { return kindReturn }
func (r *returnValue) Inspect() string { return r.value.Inspect() }
