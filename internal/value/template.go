package value

import "github.com/Synaptic-Simulations/behave/internal/rpn"

// TemplateValue is the result of evaluating a template in template mode,
// per spec.md §3's Template Value definition: Block, Component,
// Animation, Visibility or Emissive.
type TemplateValue interface {
	templateValueNode()
}

// Block is a sequence of nested template values — the accumulated
// result of a template use (spec.md §4.2.2).
type Block struct {
	Values []TemplateValue
}

func (*Block) templateValueNode() {}

// RuntimeComponent is a component bound to a scene node (or, when
// HasNode is false, a nameless grouping component) with its own nested
// template-value block.
type RuntimeComponent struct {
	Name    string
	Node    string
	HasNode bool
	Body    *Block
}

func (*RuntimeComponent) templateValueNode() {}

// RuntimeAnimation is one animation channel, carrying a compiled RPN
// stream whose result type is always `num`.
type RuntimeAnimation struct {
	Name   string
	Lag    float64
	Length float64
	Value  *rpn.Stream
}

func (*RuntimeAnimation) templateValueNode() {}

// Visibility is a compiled RPN stream whose result type is `bool`.
type Visibility struct {
	Stream *rpn.Stream
}

func (*Visibility) templateValueNode() {}

// Emissive is a compiled RPN stream whose result type is `num`.
type Emissive struct {
	Stream *rpn.Stream
}

func (*Emissive) templateValueNode() {}
