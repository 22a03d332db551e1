// Package diagnostics defines the structured error/warning records produced
// by the resolver, evaluator and RPN compiler, and a small terminal
// renderer for them.
//
// Every Diagnostic carries a stable Code (grouped by the seven error kinds
// the behavior-compiler spec defines) so tests can assert "which
// diagnostic fired" without string-matching prose, the same shape
// funvibe/funxy's analyzer uses its ErrA00N-style codes for.
package diagnostics

import "github.com/Synaptic-Simulations/behave/internal/token"

// Level is the severity of a diagnostic.
type Level int

const (
	Error Level = iota
	Warning
	Info
	Help
	Note
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Help:
		return "help"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// LabelStyle distinguishes the primary span of a diagnostic from
// supporting secondary spans.
type LabelStyle int

const (
	Primary LabelStyle = iota
	Secondary
)

// Label attaches a message to a source range within a diagnostic.
type Label struct {
	Style   LabelStyle
	Message string
	Loc     token.Location
}

func PrimaryLabel(message string, loc token.Location) Label {
	return Label{Style: Primary, Message: message, Loc: loc}
}

func SecondaryLabel(message string, loc token.Location) Label {
	return Label{Style: Secondary, Message: message, Loc: loc}
}

// Code groups diagnostics by the seven kinds the compiler's error-handling
// design distinguishes: Resolution, Type, Shape, Domain, Context,
// ControlFlow and Internal.
type Code string

const (
	CodeResolutionUndeclaredType     Code = "resolve.undeclared-type"
	CodeResolutionUndeclaredTemplate Code = "resolve.undeclared-template"
	CodeResolutionImportMissing      Code = "resolve.import-missing"
	CodeResolutionRedeclaration      Code = "resolve.redeclaration"

	CodeTypeMismatch           Code = "eval.type-mismatch"
	CodeTypeFieldMismatch      Code = "eval.field-type-mismatch"
	CodeTypeElementMismatch    Code = "eval.element-type-mismatch"
	CodeTypeReturnMismatch     Code = "eval.return-type-mismatch"
	CodeTypeAssignmentMismatch Code = "eval.assignment-type-mismatch"
	CodeTypeArgumentMismatch   Code = "eval.argument-type-mismatch"

	CodeShapeMissingField    Code = "eval.missing-field"
	CodeShapeUnknownField    Code = "eval.unknown-field"
	CodeShapeMissingArgument Code = "eval.missing-argument"
	CodeShapeUnknownArgument Code = "eval.unknown-argument"
	CodeShapeFormatArity     Code = "eval.format-arity"
	CodeShapeFormatMissing   Code = "eval.format-missing-string"

	CodeDomainIndexOutOfBounds Code = "eval.index-out-of-bounds"
	CodeDomainKeyAbsent        Code = "eval.map-key-absent"
	CodeDomainNotIndexable     Code = "eval.not-indexable"
	CodeDomainNotAnObject      Code = "eval.not-an-object"

	CodeContextNoNode       Code = "eval.no-node"
	CodeContextStructOnEnum Code = "eval.struct-literal-on-enum"

	CodeControlFlowBadReturn Code = "eval.return-outside-call"
	CodeControlFlowBadBreak  Code = "eval.break-outside-loop"

	CodeInternal Code = "internal"

	// CodeSyntax covers lexer/parser failures. These sit outside the
	// seven semantic-analysis kinds above since they fire before a file
	// has an AST to resolve at all.
	CodeSyntax Code = "syntax"
)

// Diagnostic is a single structured error/warning record with a headline
// message and one or more labeled source ranges.
type Diagnostic struct {
	Level   Level
	Code    Code
	Message string
	Labels  []Label
	Notes   []string
}

func New(level Level, code Code, message string) *Diagnostic {
	return &Diagnostic{Level: level, Code: code, Message: message}
}

func Errorf(code Code, message string) *Diagnostic {
	return New(Error, code, message)
}

func (d *Diagnostic) WithLabel(label Label) *Diagnostic {
	d.Labels = append(d.Labels, label)
	return d
}

func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// Internal builds the single kind-7 "resolved slot missing" diagnostic.
// It should only ever be constructed from the handful of assertion points
// documented in SPEC_FULL.md — a non-empty slot is otherwise guaranteed by
// the resolver having run to completion before evaluation starts.
func Internal(message string, loc token.Location) *Diagnostic {
	return New(Error, CodeInternal, message).WithLabel(PrimaryLabel("here", loc))
}

// HasErrors reports whether any diagnostic in the slice is Error level.
// The pipeline's exit code is nonzero iff this is true.
func HasErrors(diags []*Diagnostic) bool {
	for _, d := range diags {
		if d.Level == Error {
			return true
		}
	}
	return false
}
