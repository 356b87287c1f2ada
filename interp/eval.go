// Package interp executes a parsed program. The evaluator is a depth-first
// tree walker; every observable side effect goes through the handlers on
// the run's Context, and every fault becomes a typed *errors.Error that is
// reported exactly once.
package interp

import (
	"github.com/mamba-lang/go-mamba/ast"
	"github.com/mamba-lang/go-mamba/errors"
)

// errExit is a private sentinel that unwinds the whole program when an exit
// statement runs. Run converts it into a clean halt; it is never reported.
var errExit = &errors.Error{Message: "exit"}

// Evaluator walks a program AST against one environment tree.
type Evaluator struct {
	ctx     *Context
	globals *Environment
}

// New creates an evaluator with a fresh global scope seeded with the
// builtin callables.
func New(ctx *Context) *Evaluator {
	if ctx == nil {
		ctx = NewContext()
	}
	globals := NewEnvironment(nil)
	declareBuiltins(globals)
	return &Evaluator{ctx: ctx, globals: globals}
}

// Globals exposes the evaluator's root scope.
func (e *Evaluator) Globals() *Environment {
	return e.globals
}

// Run evaluates the program. Any fault is caught here, at the evaluator
// boundary: in normal mode it is reported as a single "{Kind}: {message}"
// write on the stderr stream, and the returned error only classifies the
// outcome; in strict mode nothing is written and the fault is returned for
// the caller to handle. It is never both.
func (e *Evaluator) Run(program *ast.Program) *errors.Error {
	_, err := e.evalProgram(program)
	if err == errExit {
		return nil
	}
	if err == nil {
		return nil
	}
	if !e.ctx.Strict {
		e.ctx.write(err.Diagnostic(), StreamStderr)
	}
	return err
}

func (e *Evaluator) evalProgram(program *ast.Program) (Value, *errors.Error) {
	var result Value = nilValue
	for _, stmt := range program.Statements {
		if err := e.checkDeadline(); err != nil {
			return nil, err
		}
		val, err := e.evalStatement(stmt, e.globals)
		if err != nil {
			return nil, err
		}
		if ret, ok := val.(*returnValue); ok {
			// A stray top-level return halts the program like exit.
			return ret.value, nil
		}
		result = val
	}
	return result, nil
}

func (e *Evaluator) evalStatement(stmt ast.Statement, env *Environment) (Value, *errors.Error) {
	switch s := stmt.(type) {
	case *ast.AssignStatement:
		return e.evalAssign(s, env)
	case *ast.SayStatement:
		return e.evalSay(s, env)
	case *ast.ExitStatement:
		return nil, errExit
	case *ast.ReturnStatement:
		return e.evalReturn(s, env)
	case *ast.IfStatement:
		return e.evalIf(s, env)
	case *ast.WhileStatement:
		return e.evalWhile(s, env)
	case *ast.ForStatement:
		return e.evalFor(s, env)
	case *ast.FunctionStatement:
		return e.evalFunctionDecl(s, env)
	case *ast.BlockStatement:
		return e.evalBlock(s, env.Child())
	case *ast.ExpressionStatement:
		return e.evalExpression(s.Expression, env)
	default:
		return nil, errors.New(errors.Type, "unsupported statement %T", stmt)
	}
}

// evalBlock executes stmts in env, propagating return and exit signals
// upward without unwrapping them.
func (e *Evaluator) evalBlock(block *ast.BlockStatement, env *Environment) (Value, *errors.Error) {
	var result Value = nilValue
	for _, stmt := range block.Statements {
		if err := e.checkDeadline(); err != nil {
			return nil, err
		}
		val, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, ok := val.(*returnValue); ok {
			return val, nil
		}
		result = val
	}
	return result, nil
}

func (e *Evaluator) evalAssign(s *ast.AssignStatement, env *Environment) (Value, *errors.Error) {
	val, err := e.evalExpression(s.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(s.Name.Value, val); err != nil {
		return nil, err
	}
	return nilValue, nil
}

func (e *Evaluator) evalSay(s *ast.SayStatement, env *Environment) (Value, *errors.Error) {
	val, err := e.evalExpression(s.Value, env)
	if err != nil {
		return nil, err
	}
	// No implicit trailing newline.
	e.ctx.write(val.Inspect(), StreamStdout)
	return nilValue, nil
}

func (e *Evaluator) evalReturn(s *ast.ReturnStatement, env *Environment) (Value, *errors.Error) {
	if s.Value == nil {
		return &returnValue{value: nilValue}, nil
	}
	val, err := e.evalExpression(s.Value, env)
	if err != nil {
		return nil, err
	}
	return &returnValue{value: val}, nil
}

func (e *Evaluator) evalIf(s *ast.IfStatement, env *Environment) (Value, *errors.Error) {
	cond, err := e.evalCondition(s.Condition, env)
	if err != nil {
		return nil, err
	}
	if cond {
		return e.evalBlock(s.Consequence, env.Child())
	}
	if s.Alternative != nil {
		return e.evalBlock(s.Alternative, env.Child())
	}
	return nilValue, nil
}

func (e *Evaluator) evalWhile(s *ast.WhileStatement, env *Environment) (Value, *errors.Error) {
	for {
		if err := e.checkDeadline(); err != nil {
			return nil, err
		}
		cond, err := e.evalCondition(s.Condition, env)
		if err != nil {
			return nil, err
		}
		if !cond {
			return nilValue, nil
		}
		val, err := e.evalBlock(s.Body, env.Child())
		if err != nil {
			return nil, err
		}
		if _, ok := val.(*returnValue); ok {
			return val, nil
		}
	}
}

// evalFor iterates name over the inclusive integer range from..to.
func (e *Evaluator) evalFor(s *ast.ForStatement, env *Environment) (Value, *errors.Error) {
	from, err := e.evalIntOperand(s.From, env, "range start")
	if err != nil {
		return nil, err
	}
	to, err := e.evalIntOperand(s.To, env, "range end")
	if err != nil {
		return nil, err
	}

	for i := from; i <= to; i++ {
		if err := e.checkDeadline(); err != nil {
			return nil, err
		}
		scope := env.Child()
		if err := scope.Declare(s.Name.Value, SymbolVariable, &Integer{Value: i}); err != nil {
			return nil, err
		}
		val, err := e.evalBlock(s.Body, scope)
		if err != nil {
			return nil, err
		}
		if _, ok := val.(*returnValue); ok {
			return val, nil
		}
	}
	return nilValue, nil
}

func (e *Evaluator) evalFunctionDecl(s *ast.FunctionStatement, env *Environment) (Value, *errors.Error) {
	fn := &Function{
		Name:       s.Name.Value,
		Parameters: s.Parameters,
		Body:       s.Body,
		Env:        env,
	}
	if err := env.Declare(s.Name.Value, SymbolFunction, fn); err != nil {
		return nil, err
	}
	return nilValue, nil
}

func (e *Evaluator) evalExpression(expr ast.Expression, env *Environment) (Value, *errors.Error) {
	switch x := expr.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: x.Value}, nil
	case *ast.FloatLiteral:
		return &Float{Value: x.Value}, nil
	case *ast.StringLiteral:
		return &String{Value: x.Value}, nil
	case *ast.BooleanLiteral:
		return boolValue(x.Value), nil
	case *ast.NilLiteral:
		return nilValue, nil
	case *ast.Identifier:
		val, ok := env.Lookup(x.Value)
		if !ok {
			return nil, errors.New(errors.UnknownSymbol, "name '%s' is not defined", x.Value)
		}
		return val, nil
	case *ast.PrefixExpression:
		return e.evalPrefix(x, env)
	case *ast.InfixExpression:
		return e.evalInfix(x, env)
	case *ast.CallExpression:
		return e.evalCall(x, env)
	case *ast.AskExpression:
		return e.evalAsk(x, env)
	default:
		return nil, errors.New(errors.Type, "unsupported expression %T", expr)
	}
}

func (e *Evaluator) evalPrefix(x *ast.PrefixExpression, env *Environment) (Value, *errors.Error) {
	right, err := e.evalExpression(x.Right, env)
	if err != nil {
		return nil, err
	}
	switch x.Operator {
	case "not":
		b, ok := right.(*Boolean)
		if !ok {
			return nil, errors.New(errors.Type,
				"operator 'not' requires a boolean, got %s", right.Kind())
		}
		return boolValue(!b.Value), nil
	case "-":
		switch v := right.(type) {
		case *Integer:
			return &Integer{Value: -v.Value}, nil
		case *Float:
			return &Float{Value: -v.Value}, nil
		}
		return nil, errors.New(errors.Type,
			"operator '-' requires a number, got %s", right.Kind())
	}
	return nil, errors.New(errors.Type, "unknown prefix operator '%s'", x.Operator)
}

func (e *Evaluator) evalInfix(x *ast.InfixExpression, env *Environment) (Value, *errors.Error) {
	// Logical operators short-circuit; everything else is strict
	// left-to-right.
	if x.Operator == "and" || x.Operator == "or" {
		return e.evalLogical(x, env)
	}

	left, err := e.evalExpression(x.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(x.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinary(x.Operator, left, right)
}

func (e *Evaluator) evalLogical(x *ast.InfixExpression, env *Environment) (Value, *errors.Error) {
	left, err := e.evalExpression(x.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*Boolean)
	if !ok {
		return nil, errors.New(errors.Type,
			"operator '%s' requires boolean operands, got %s", x.Operator, left.Kind())
	}

	if x.Operator == "and" && !lb.Value {
		return falseValue, nil
	}
	if x.Operator == "or" && lb.Value {
		return trueValue, nil
	}

	right, err := e.evalExpression(x.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(*Boolean)
	if !ok {
		return nil, errors.New(errors.Type,
			"operator '%s' requires boolean operands, got %s", x.Operator, right.Kind())
	}
	return boolValue(rb.Value), nil
}

func (e *Evaluator) evalCall(x *ast.CallExpression, env *Environment) (Value, *errors.Error) {
	callee, ok := env.Lookup(x.Function.Value)
	if !ok {
		return nil, errors.New(errors.UnknownSymbol, "name '%s' is not defined", x.Function.Value)
	}

	args := make([]Value, len(x.Arguments))
	for i, argExpr := range x.Arguments {
		arg, err := e.evalExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	switch fn := callee.(type) {
	case *Function:
		return e.applyFunction(fn, args)
	case *Builtin:
		val, err := fn.Fn(args)
		if err != nil {
			if ierr, ok := err.(*errors.Error); ok {
				return nil, ierr
			}
			return nil, errors.New(errors.Type, "%s", err.Error())
		}
		return val, nil
	default:
		return nil, errors.New(errors.Type, "'%s' is not callable", x.Function.Value)
	}
}

func (e *Evaluator) applyFunction(fn *Function, args []Value) (Value, *errors.Error) {
	if len(args) != len(fn.Parameters) {
		return nil, errors.New(errors.Type,
			"function '%s' expects %d arguments, got %d",
			fn.Name, len(fn.Parameters), len(args))
	}

	scope := fn.Env.Child()
	for i, param := range fn.Parameters {
		if err := scope.Declare(param.Value, SymbolVariable, args[i]); err != nil {
			return nil, err
		}
	}

	val, err := e.evalBlock(fn.Body, scope)
	if err != nil {
		// An exit inside a function unwinds the whole program.
		return nil, err
	}
	if ret, ok := val.(*returnValue); ok {
		return ret.value, nil
	}
	return nilValue, nil
}

func (e *Evaluator) evalAsk(x *ast.AskExpression, env *Environment) (Value, *errors.Error) {
	prompt, err := e.evalExpression(x.Prompt, env)
	if err != nil {
		return nil, err
	}
	ps, ok := prompt.(*String)
	if !ok {
		return nil, errors.New(errors.Type,
			"ask prompt must be a string, got %s", prompt.Kind())
	}
	return &String{Value: e.ctx.ask(ps.Value)}, nil
}

func (e *Evaluator) evalCondition(expr ast.Expression, env *Environment) (bool, *errors.Error) {
	val, err := e.evalExpression(expr, env)
	if err != nil {
		return false, err
	}
	b, ok := val.(*Boolean)
	if !ok {
		return false, errors.New(errors.Type,
			"condition must be a boolean, got %s", val.Kind())
	}
	return b.Value, nil
}

func (e *Evaluator) evalIntOperand(expr ast.Expression, env *Environment, what string) (int64, *errors.Error) {
	val, err := e.evalExpression(expr, env)
	if err != nil {
		return 0, err
	}
	i, ok := val.(*Integer)
	if !ok {
		return 0, errors.New(errors.Type, "%s must be an integer, got %s", what, val.Kind())
	}
	return i.Value, nil
}

// checkDeadline enforces the execution budget. It is called once per
// statement and once per loop iteration, which bounds the overshoot past
// the deadline to a single statement's work.
func (e *Evaluator) checkDeadline() *errors.Error {
	if e.ctx.expired() {
		return errors.New(errors.Timeout, "maximum execution time exceeded")
	}
	return nil
}
