package items

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/config"
)

// MouseEventVariants is the inbuilt MouseEvent enum's eighteen variants
// in declaration order, taken verbatim from the order
// INBUILT_ENUM_ACCESS_MAP seeds them in the original implementation
// (resolve.rs); that file constructs the map from the Rust enum's
// declaration order via `event as usize`, which this slice's index
// reproduces directly.
var MouseEventVariants = []string{
	"RightSingle",
	"MiddleSingle",
	"LeftSingle",
	"RightDouble",
	"MiddleDouble",
	"LeftDouble",
	"RightDrag",
	"MiddleDrag",
	"LeftDrag",
	"RightRelease",
	"MiddleRelease",
	"LeftRelease",
	"Lock",
	"Unlock",
	"Move",
	"Leave",
	"WheelUp",
	"WheelDown",
}

// New builds an item map seeded with the two inbuilt globals every
// project's resolver starts from: the `format` function and the
// MouseEvent enum (spec.md §4.1's "Seed the symbol table with the
// built-in enums... and functions").
func New() *Map {
	m := &Map{}

	variants := make([]ast.EnumVariant, len(MouseEventVariants))
	for i, name := range MouseEventVariants {
		variants[i] = ast.EnumVariant{Name: ast.Ident{Name: name}, Tag: i}
	}
	m.MouseEventEnum = m.AddEnum(Enum{
		Decl:    &ast.EnumDecl{Name: ast.Ident{Name: config.MouseEventEnumName}, Variants: variants},
		Builtin: true,
	})

	m.FormatFunction = m.AddFunction(Function{Native: config.FormatFuncName})

	return m
}
