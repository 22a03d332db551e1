package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/rpn"
	"github.com/Synaptic-Simulations/behave/internal/typesystem"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// evalCode compiles a `code { ... }` block into a flat postfix RPN
// stream instead of evaluating it: spec.md's Non-goals explicitly
// exclude ever running this stream, so this is a pure lowering pass, not
// an interpretation one. A code block is restricted to a single trailing
// expression — unlike an ordinary block, it has no local bindings for
// intermediate statements to usefully populate.
func (e *Evaluator) evalCode(n *ast.CodeExpr) Flow {
	if len(n.Body.Stmts) > 0 {
		return Err(singleError(diagnostics.CodeInternal, "a code block may only contain a single expression",
			"statements before the final expression are not supported inside code { ... }", n.Body.Stmts[0]))
	}
	if n.Body.Trailing == nil {
		return Err(singleError(diagnostics.CodeInternal, "a code block must produce a value",
			"this code block has no expression", n.Body))
	}
	stream, ty, diag := e.lowerCode(n.Body.Trailing)
	if diag != nil {
		return Err(diag)
	}
	return Ok(&value.Code{ResultType: ty, Stream: stream})
}

// lowerCode recursively lowers one expression into postfix instructions.
// Variable references inside a code block name simulation-side values
// resolved at render time (L:Vars, A:Vars), not call-stack bindings, so
// they're assumed num-typed here rather than looked up — the RPN form
// never runs through this evaluator's call stack.
func (e *Evaluator) lowerCode(expr ast.Expr) (*rpn.Stream, typesystem.Type, *diagnostics.Diagnostic) {
	switch n := expr.(type) {
	case *ast.NumberLit:
		s := &rpn.Stream{}
		s.PushNum(n.Value)
		return s, typesystem.Num{}, nil

	case *ast.StringLit:
		s := &rpn.Stream{}
		s.PushStr(n.Value)
		return s, typesystem.Str{}, nil

	case *ast.BoolLit:
		s := &rpn.Stream{}
		s.PushBool(n.Value)
		return s, typesystem.Bool{}, nil

	case *ast.AccessExpr:
		if len(n.Extra) > 0 {
			return nil, nil, singleError(diagnostics.CodeInternal, "dotted field access is not supported inside code { ... }",
				"only a bare variable name is allowed here", n)
		}
		s := &rpn.Stream{}
		s.LoadVar(n.Root.Name)
		return s, typesystem.Num{}, nil

	case *ast.UnaryExpr:
		operand, ty, diag := e.lowerCode(n.Operand)
		if diag != nil {
			return nil, nil, diag
		}
		switch n.Op {
		case ast.UnaryNeg:
			if _, ok := ty.(typesystem.Num); !ok {
				return nil, nil, singleError(diagnostics.CodeTypeMismatch, "`-` requires a num", "this must be a num", n.Operand)
			}
			operand.Op(rpn.Neg)
			return operand, typesystem.Num{}, nil
		default:
			if _, ok := ty.(typesystem.Bool); !ok {
				return nil, nil, singleError(diagnostics.CodeTypeMismatch, "`!` requires a bool", "this must be a bool", n.Operand)
			}
			operand.Op(rpn.Not)
			return operand, typesystem.Bool{}, nil
		}

	case *ast.BinaryExpr:
		return e.lowerBinaryCode(n)

	default:
		return nil, nil, singleError(diagnostics.CodeInternal, "this expression is not supported inside code { ... }",
			"only literals, variables, unary and binary operators are allowed here", expr)
	}
}

func (e *Evaluator) lowerBinaryCode(n *ast.BinaryExpr) (*rpn.Stream, typesystem.Type, *diagnostics.Diagnostic) {
	left, lty, diag := e.lowerCode(n.Left)
	if diag != nil {
		return nil, nil, diag
	}
	right, rty, diag := e.lowerCode(n.Right)
	if diag != nil {
		return nil, nil, diag
	}

	mismatch := func(msg string) *diagnostics.Diagnostic {
		return typeError(diagnostics.CodeTypeMismatch, msg,
			"this operand is a "+lty.String(), n.Left, "this operand is a "+rty.String(), n.Right)
	}

	out := &rpn.Stream{}
	out.Append(left)
	out.Append(right)

	numOp := func(op rpn.Opcode, resultNum bool) (*rpn.Stream, typesystem.Type, *diagnostics.Diagnostic) {
		if _, lok := lty.(typesystem.Num); !lok {
			return nil, nil, mismatch("this operator requires two nums")
		}
		if _, rok := rty.(typesystem.Num); !rok {
			return nil, nil, mismatch("this operator requires two nums")
		}
		out.Op(op)
		if resultNum {
			return out, typesystem.Num{}, nil
		}
		return out, typesystem.Bool{}, nil
	}

	switch n.Op {
	case ast.BinAdd:
		return numOp(rpn.Add, true)
	case ast.BinSub:
		return numOp(rpn.Sub, true)
	case ast.BinMul:
		return numOp(rpn.Mul, true)
	case ast.BinDiv:
		return numOp(rpn.Div, true)
	case ast.BinLt:
		return numOp(rpn.Lt, false)
	case ast.BinGt:
		return numOp(rpn.Gt, false)
	case ast.BinLe:
		return numOp(rpn.Le, false)
	case ast.BinGe:
		return numOp(rpn.Ge, false)
	case ast.BinAnd, ast.BinOr:
		if _, lok := lty.(typesystem.Bool); !lok {
			return nil, nil, mismatch("this operator requires two bools")
		}
		if _, rok := rty.(typesystem.Bool); !rok {
			return nil, nil, mismatch("this operator requires two bools")
		}
		if n.Op == ast.BinAnd {
			out.Op(rpn.And)
		} else {
			out.Op(rpn.Or)
		}
		return out, typesystem.Bool{}, nil
	case ast.BinEq, ast.BinNeq:
		if !lty.Equal(rty) {
			return nil, nil, mismatch("`==`/`!=` requires both operands to be the same type")
		}
		if n.Op == ast.BinEq {
			out.Op(rpn.Eq)
		} else {
			out.Op(rpn.Neq)
		}
		return out, typesystem.Bool{}, nil
	default:
		return nil, nil, diagnostics.Internal("unhandled binary operator in code block", n.Location)
	}
}
