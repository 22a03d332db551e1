// Package rpn defines the flat postfix opcode stream the RPN compiler
// (internal/evaluate's code-block lowering) produces, per spec.md §4.3.
// Execution of this stream is explicitly out of scope (spec.md §1's
// Non-goals: "no runtime execution of the compiled code form") — only
// lowering and serialization (internal/xmlwriter) consume it. Grounded
// on funvibe/funxy's internal/vm bytecode design (a flat Chunk of
// Opcode + operand, built by a single-pass compiler over a resolved
// expression tree) trimmed down to the subset this language needs,
// since nothing here ever runs the stream back through a VM.
package rpn

import "strconv"

// Opcode is one postfix instruction.
type Opcode int

const (
	// Stack-pushing.
	PushNum Opcode = iota
	PushStr
	PushBool
	LoadVar // pushes the named variable's value, substituted at simulation time

	// Unary.
	Neg
	Not

	// Binary, numeric.
	Add
	Sub
	Mul
	Div

	// Binary, boolean.
	And
	Or

	// Binary, comparison.
	Eq
	Neq
	Lt
	Gt
	Le
	Ge
)

// Instruction is one opcode plus whichever operand field its kind uses.
type Instruction struct {
	Op   Opcode
	Num  float64 // PushNum
	Str  string  // PushStr, LoadVar
	Bool bool    // PushBool
}

// Stream is the flat postfix instruction sequence a `code { ... }`
// block compiles to.
type Stream struct {
	Instructions []Instruction
}

func (s *Stream) push(i Instruction) { s.Instructions = append(s.Instructions, i) }

func (s *Stream) PushNum(v float64)    { s.push(Instruction{Op: PushNum, Num: v}) }
func (s *Stream) PushStr(v string)     { s.push(Instruction{Op: PushStr, Str: v}) }
func (s *Stream) PushBool(v bool)      { s.push(Instruction{Op: PushBool, Bool: v}) }
func (s *Stream) LoadVar(name string)  { s.push(Instruction{Op: LoadVar, Str: name}) }
func (s *Stream) Op(op Opcode)         { s.push(Instruction{Op: op}) }

// Append concatenates another stream's instructions onto s, the
// mechanism the compiler uses to lower `lhs op rhs` into postfix order
// (lhs stream, then rhs stream, then the operator).
func (s *Stream) Append(other *Stream) {
	s.Instructions = append(s.Instructions, other.Instructions...)
}

func (op Opcode) String() string {
	switch op {
	case PushNum:
		return "push.num"
	case PushStr:
		return "push.str"
	case PushBool:
		return "push.bool"
	case LoadVar:
		return "load.var"
	case Neg:
		return "neg"
	case Not:
		return "not"
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case And:
		return "and"
	case Or:
		return "or"
	case Eq:
		return "eq"
	case Neq:
		return "neq"
	case Lt:
		return "lt"
	case Gt:
		return "gt"
	case Le:
		return "le"
	case Ge:
		return "ge"
	default:
		return "illegal"
	}
}

// Render renders the stream as whitespace-separated postfix tokens, the
// text form internal/xmlwriter embeds verbatim as a <Code> element's
// data. This is the "textual RPN form" spec.md §4.4 treats as opaque,
// pre-formatted content the writer does not escape.
func (s *Stream) Render() string {
	out := make([]byte, 0, len(s.Instructions)*4)
	for i, instr := range s.Instructions {
		if i > 0 {
			out = append(out, ' ')
		}
		switch instr.Op {
		case PushNum:
			out = append(out, strconv.FormatFloat(instr.Num, 'g', -1, 64)...)
		case PushStr:
			out = append(out, strconv.Quote(instr.Str)...)
		case PushBool:
			out = append(out, strconv.FormatBool(instr.Bool)...)
		case LoadVar:
			out = append(out, '$')
			out = append(out, instr.Str...)
		default:
			out = append(out, instr.Op.String()...)
		}
	}
	return string(out)
}
