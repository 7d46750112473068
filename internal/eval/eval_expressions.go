/*
File   : golox/internal/eval/eval_expressions.go
Package: eval

Expression evaluation: literals, grouping, unary/binary/logical
operators, and variable reads/writes resolved through the scope-depth
side table the resolver produced (spec §4.4's Environments contract:
"must never fall through to the global environment if a depth is
recorded").
*/
package eval

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
	"github.com/loxlang/golox/internal/values"
)

func (in *Interpreter) evaluate(expr ast.Expr) (values.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Inner)

	case *ast.Variable:
		return in.lookupVariable(e.Name, e)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if depth, ok := in.locals[e]; ok {
			in.env.AssignAt(depth, e.Name.Lexeme, value)
		} else if err := in.globals.Assign(e.Name.Lexeme, value); err != nil {
			return nil, rtErr(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Logical:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.Or {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return in.evaluate(e.Right)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return in.evalSuper(e)
	}
	return values.NilValue, nil
}

func literalValue(v interface{}) values.Value {
	switch val := v.(type) {
	case nil:
		return values.NilValue
	case bool:
		return values.BoolValue(val)
	case float64:
		return values.Number{Value: val}
	case string:
		return values.String{Value: val}
	default:
		return values.NilValue
	}
}

// lookupVariable resolves a Variable/This reference by its recorded
// depth, falling back to the global environment when the resolver left
// it unresolved (spec §3: "Any reference without a recorded depth is a
// global lookup").
func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (values.Value, error) {
	if depth, ok := in.locals[expr]; ok {
		v, err := in.env.GetAt(depth, name.Lexeme)
		if err != nil {
			return nil, rtErr(name.Line, "%s", err.Error())
		}
		return v, nil
	}
	v, err := in.globals.Get(name.Lexeme)
	if err != nil {
		return nil, rtErr(name.Line, "Undefined variable '%s'.", name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalUnary(e *ast.Unary) (values.Value, error) {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := operand.(values.Number)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operand must be a number.")
		}
		return values.Number{Value: -n.Value}, nil
	case token.Bang:
		return values.BoolValue(!isTruthy(operand)), nil
	}
	return values.NilValue, nil
}

func (in *Interpreter) evalBinary(e *ast.Binary) (values.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Plus:
		if ln, lok := left.(values.Number); lok {
			if rn, rok := right.(values.Number); rok {
				return values.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, lok := left.(values.String); lok {
			if rs, rok := right.(values.String); rok {
				return values.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, rtErr(e.Op.Line, "Operands must be two numbers or two strings.")

	case token.Minus:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operands must be numbers.")
		}
		return values.Number{Value: ln - rn}, nil

	case token.Star:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operands must be numbers.")
		}
		return values.Number{Value: ln * rn}, nil

	case token.Slash:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operands must be numbers.")
		}
		return values.Number{Value: ln / rn}, nil

	case token.Greater:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operands must be numbers.")
		}
		return values.BoolValue(ln > rn), nil

	case token.GreaterEqual:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operands must be numbers.")
		}
		return values.BoolValue(ln >= rn), nil

	case token.Less:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operands must be numbers.")
		}
		return values.BoolValue(ln < rn), nil

	case token.LessEqual:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, rtErr(e.Op.Line, "Operands must be numbers.")
		}
		return values.BoolValue(ln <= rn), nil

	case token.BangEqual:
		return values.BoolValue(!isEqual(left, right)), nil

	case token.EqualEqual:
		return values.BoolValue(isEqual(left, right)), nil
	}

	return values.NilValue, nil
}

func bothNumbers(left, right values.Value) (float64, float64, bool) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return 0, 0, false
	}
	return ln.Value, rn.Value, true
}
