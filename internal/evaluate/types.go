package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/typesystem"
)

// staticTypeOf converts a resolved type-expression node into its
// structural typesystem.Type, the form every runtime type comparison in
// this package operates on. t must already have been walked by
// internal/resolve (every UserType's Resolved field populated).
func staticTypeOf(t *ast.Type) typesystem.Type {
	if t == nil {
		return typesystem.NoneType{}
	}
	switch te := t.Expr.(type) {
	case *ast.NumType:
		return typesystem.Num{}
	case *ast.StrType:
		return typesystem.Str{}
	case *ast.BoolType:
		return typesystem.Bool{}
	case *ast.CodeType:
		return typesystem.Code{}
	case *ast.NoneTypeExpr:
		return typesystem.NoneType{}
	case *ast.UserType:
		if te.Resolved == nil {
			return typesystem.NoneType{}
		}
		switch te.Resolved.Kind {
		case ast.ResolvedStructType:
			id := te.Resolved.Struct.(items.StructID)
			return typesystem.User{Kind: typesystem.UserStruct, ID: id.Index(), Name: te.Name.String()}
		default:
			id := te.Resolved.Enum.(items.EnumID)
			return typesystem.User{Kind: typesystem.UserEnum, ID: id.Index(), Name: te.Name.String()}
		}
	case *ast.ArrayType:
		return typesystem.Array{Elem: staticTypeOf(te.Elem)}
	case *ast.MapType:
		return typesystem.Map{Key: staticTypeOf(te.Key), Value: staticTypeOf(te.Value)}
	case *ast.OptionalType:
		return typesystem.Optional{Inner: staticTypeOf(te.Inner)}
	case *ast.SumType:
		opts := make([]typesystem.Type, len(te.Options))
		for i, o := range te.Options {
			opts[i] = staticTypeOf(o)
		}
		return typesystem.Sum{Options: opts}
	case *ast.FuncType:
		args := make([]typesystem.Type, len(te.Args))
		for i, a := range te.Args {
			args[i] = staticTypeOf(a)
		}
		var ret typesystem.Type
		if te.Ret != nil {
			ret = staticTypeOf(te.Ret)
		}
		return typesystem.Function{Args: args, Ret: ret}
	default:
		return typesystem.NoneType{}
	}
}
