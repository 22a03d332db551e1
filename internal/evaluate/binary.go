package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// evalBinary implements every binary operator's exact type table.
// Arithmetic (+ - * /) is num-only except `+` which also concatenates
// str; and/or require bool on both sides; comparisons (< > <= >=) are
// num-only; equality (== !=) requires both operands share a static type
// AND belong to one of the six dynamic kinds isEquatableKind allows —
// everything else, including two structs or two maps of matching type,
// diagnoses "cannot equate" rather than comparing. A mismatch reports
// both operand locations as Primary labels — neither side is more at
// fault than the other.
func (e *Evaluator) evalBinary(n *ast.BinaryExpr) Flow {
	lf := e.Eval(n.Left)
	if unwind(lf) {
		return lf
	}
	rf := e.Eval(n.Right)
	if unwind(rf) {
		return rf
	}
	lv, rv := lf.Value(), rf.Value()

	mismatch := func(headline string) Flow {
		return Err(typeError(diagnostics.CodeTypeMismatch, headline,
			"this operand is a "+typeOf(lv).String(), n.Left,
			"this operand is a "+typeOf(rv).String(), n.Right))
	}

	switch n.Op {
	case ast.BinAdd:
		if ln, ok := lv.(value.Number); ok {
			if rn, ok := rv.(value.Number); ok {
				return Ok(ln + rn)
			}
			return mismatch("`+` requires two nums or two strs")
		}
		if ls, ok := lv.(value.String); ok {
			if rs, ok := rv.(value.String); ok {
				return Ok(ls + rs)
			}
			return mismatch("`+` requires two nums or two strs")
		}
		return mismatch("`+` requires two nums or two strs")

	case ast.BinSub, ast.BinMul, ast.BinDiv:
		ln, lok := lv.(value.Number)
		rn, rok := rv.(value.Number)
		if !lok || !rok {
			return mismatch("this operator requires two nums")
		}
		switch n.Op {
		case ast.BinSub:
			return Ok(ln - rn)
		case ast.BinMul:
			return Ok(ln * rn)
		default:
			return Ok(ln / rn)
		}

	case ast.BinAnd, ast.BinOr:
		lb, lok := lv.(value.Boolean)
		rb, rok := rv.(value.Boolean)
		if !lok || !rok {
			return mismatch("this operator requires two bools")
		}
		if n.Op == ast.BinAnd {
			return Ok(value.Boolean(lb && rb))
		}
		return Ok(value.Boolean(lb || rb))

	case ast.BinLt, ast.BinGt, ast.BinLe, ast.BinGe:
		ln, lok := lv.(value.Number)
		rn, rok := rv.(value.Number)
		if !lok || !rok {
			return mismatch("this operator requires two nums")
		}
		switch n.Op {
		case ast.BinLt:
			return Ok(value.Boolean(ln < rn))
		case ast.BinGt:
			return Ok(value.Boolean(ln > rn))
		case ast.BinLe:
			return Ok(value.Boolean(ln <= rn))
		default:
			return Ok(value.Boolean(ln >= rn))
		}

	case ast.BinEq, ast.BinNeq:
		if !typeOf(lv).Equal(typeOf(rv)) {
			return mismatch("cannot equate")
		}
		if !isEquatableKind(lv) {
			return mismatch("cannot equate")
		}
		eq := valuesEqual(lv, rv)
		if n.Op == ast.BinNeq {
			eq = !eq
		}
		return Ok(value.Boolean(eq))

	default:
		return Err(diagnostics.Internal("unhandled binary operator", n.Location))
	}
}

// isEquatableKind restricts `==`/`!=` to spec.md §9's six equatable
// dynamic kinds: two bools, two strs, two nums, two arrays, two Nones,
// two enum values of the same enum. Structs, maps, functions and code
// values fall through to "cannot equate" even when both operands share
// a static type, matching original_source/evaluation/runtime.rs's
// Equal/NotEqual match arms, whose wildcard arm covers exactly these.
// valuesEqual itself still handles *value.Map and *value.Object so that
// an array of structs or maps, reached recursively through the
// *value.Array case, still compares element by element.
func isEquatableKind(v value.Value) bool {
	switch v.(type) {
	case value.None, value.Number, value.Boolean, value.String, value.Enum, *value.Array:
		return true
	default:
		return false
	}
}
