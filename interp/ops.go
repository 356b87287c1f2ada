package interp

import (
	"github.com/mamba-lang/go-mamba/errors"
)

// applyBinary evaluates `left op right` for the strict (non-logical)
// operators.
//
// Numeric rule: integer op integer stays integral; when either side is a
// float the other is promoted and the result is a float. The one exception
// is '+' with a string operand, which concatenates after stringifying the
// other side.
func applyBinary(op string, left, right Value) (Value, *errors.Error) {
	if op == "+" {
		if ls, ok := left.(*String); ok {
			return &String{Value: ls.Value + right.Inspect()}, nil
		}
		if rs, ok := right.(*String); ok {
			return &String{Value: left.Inspect() + rs.Value}, nil
		}
	}

	switch op {
	case "==", "!=":
		return applyEquality(op, left, right)
	}

	lk, rk := left.Kind(), right.Kind()

	if lk == KindString && rk == KindString {
		return applyStringCompare(op, left.(*String).Value, right.(*String).Value)
	}

	if isNumeric(lk) && isNumeric(rk) {
		if lk == KindInteger && rk == KindInteger {
			return applyIntegerBinary(op, left.(*Integer).Value, right.(*Integer).Value)
		}
		return applyFloatBinary(op, toFloat(left), toFloat(right))
	}

	return nil, errors.New(errors.Type,
		"operator '%s' not supported for %s and %s", op, lk, rk)
}

func applyEquality(op string, left, right Value) (Value, *errors.Error) {
	eq, err := valueEquals(left, right)
	if err != nil {
		return nil, err
	}
	if op == "!=" {
		eq = !eq
	}
	return boolValue(eq), nil
}

// valueEquals compares two values. Mixed int/float comparisons promote to
// float; any other cross-kind comparison is simply unequal.
func valueEquals(left, right Value) (bool, *errors.Error) {
	lk, rk := left.Kind(), right.Kind()

	if isNumeric(lk) && isNumeric(rk) {
		if lk == KindInteger && rk == KindInteger {
			return left.(*Integer).Value == right.(*Integer).Value, nil
		}
		return toFloat(left) == toFloat(right), nil
	}
	if lk != rk {
		return false, nil
	}

	switch l := left.(type) {
	case *String:
		return l.Value == right.(*String).Value, nil
	case *Boolean:
		return l.Value == right.(*Boolean).Value, nil
	case *NilValue:
		return true, nil
	default:
		// Functions and builtins compare by identity.
		return left == right, nil
	}
}

func applyStringCompare(op, left, right string) (Value, *errors.Error) {
	switch op {
	case "<":
		return boolValue(left < right), nil
	case "<=":
		return boolValue(left <= right), nil
	case ">":
		return boolValue(left > right), nil
	case ">=":
		return boolValue(left >= right), nil
	}
	return nil, errors.New(errors.Type,
		"operator '%s' not supported for string and string", op)
}

func applyIntegerBinary(op string, left, right int64) (Value, *errors.Error) {
	switch op {
	case "+":
		return &Integer{Value: left + right}, nil
	case "-":
		return &Integer{Value: left - right}, nil
	case "*":
		return &Integer{Value: left * right}, nil
	case "/":
		if right == 0 {
			return nil, errors.New(errors.Arithmetic, "division by zero")
		}
		return &Integer{Value: left / right}, nil
	case "%":
		if right == 0 {
			return nil, errors.New(errors.Arithmetic, "modulo by zero")
		}
		return &Integer{Value: left % right}, nil
	case "<":
		return boolValue(left < right), nil
	case "<=":
		return boolValue(left <= right), nil
	case ">":
		return boolValue(left > right), nil
	case ">=":
		return boolValue(left >= right), nil
	}
	return nil, errors.New(errors.Type, "unknown operator '%s'", op)
}

func applyFloatBinary(op string, left, right float64) (Value, *errors.Error) {
	switch op {
	case "+":
		return &Float{Value: left + right}, nil
	case "-":
		return &Float{Value: left - right}, nil
	case "*":
		return &Float{Value: left * right}, nil
	case "/":
		if right == 0 {
			return nil, errors.New(errors.Arithmetic, "division by zero")
		}
		return &Float{Value: left / right}, nil
	case "%":
		return nil, errors.New(errors.Type, "operator '%%' requires integer operands")
	case "<":
		return boolValue(left < right), nil
	case "<=":
		return boolValue(left <= right), nil
	case ">":
		return boolValue(left > right), nil
	case ">=":
		return boolValue(left >= right), nil
	}
	return nil, errors.New(errors.Type, "unknown operator '%s'", op)
}

func isNumeric(k Kind) bool {
	return k == KindInteger || k == KindFloat
}

func toFloat(v Value) float64 {
	switch n := v.(type) {
	case *Integer:
		return float64(n.Value)
	case *Float:
		return n.Value
	}
	return 0
}
