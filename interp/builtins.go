package interp

import (
	"strconv"
	"strings"

	"github.com/mamba-lang/go-mamba/errors"
)

// declareBuiltins seeds a root scope with the language's callable builtins.
// These names are pre-declared, so user code redeclaring them fails with
// DuplicateSymbol.
func declareBuiltins(globals *Environment) {
	for _, b := range []*Builtin{
		{Name: "int", Fn: builtinInt},
		{Name: "float", Fn: builtinFloat},
		{Name: "str", Fn: builtinStr},
		{Name: "len", Fn: builtinLen},
	} {
		// A fresh root scope has no conflicts.
		if err := globals.Declare(b.Name, SymbolBuiltin, b); err != nil {
			panic(err)
		}
	}
}

func wantArgs(name string, args []Value, n int) *errors.Error {
	if len(args) != n {
		return errors.New(errors.Type, "%s expects %d argument, got %d", name, n, len(args))
	}
	return nil
}

func builtinInt(args []Value) (Value, error) {
	if err := wantArgs("int", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *Integer:
		return v, nil
	case *Float:
		return &Integer{Value: int64(v.Value)}, nil
	case *Boolean:
		if v.Value {
			return &Integer{Value: 1}, nil
		}
		return &Integer{Value: 0}, nil
	case *String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return nil, errors.New(errors.Type, "cannot convert '%s' to integer", v.Value)
		}
		return &Integer{Value: n}, nil
	}
	return nil, errors.New(errors.Type, "cannot convert %s to integer", args[0].Kind())
}

func builtinFloat(args []Value) (Value, error) {
	if err := wantArgs("float", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *Float:
		return v, nil
	case *Integer:
		return &Float{Value: float64(v.Value)}, nil
	case *String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return nil, errors.New(errors.Type, "cannot convert '%s' to float", v.Value)
		}
		return &Float{Value: f}, nil
	}
	return nil, errors.New(errors.Type, "cannot convert %s to float", args[0].Kind())
}

func builtinStr(args []Value) (Value, error) {
	if err := wantArgs("str", args, 1); err != nil {
		return nil, err
	}
	return &String{Value: args[0].Inspect()}, nil
}

func builtinLen(args []Value) (Value, error) {
	if err := wantArgs("len", args, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(*String)
	if !ok {
		return nil, errors.New(errors.Type, "len expects a string, got %s", args[0].Kind())
	}
	return &Integer{Value: int64(len(s.Value))}, nil
}
