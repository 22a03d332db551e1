package rpn

import "testing"

func TestRenderEmitsPostfixOrder(t *testing.T) {
	// radius * 2 lowers to: push radius, push 2, mul
	s := &Stream{}
	s.LoadVar("radius")
	s.PushNum(2)
	s.Op(Mul)

	want := "$radius 2 mul"
	if got := s.Render(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderQuotesStringsAndFormatsBools(t *testing.T) {
	s := &Stream{}
	s.PushStr("hi")
	s.PushBool(true)
	s.Op(Eq)

	want := `"hi" true eq`
	if got := s.Render(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAppendConcatenatesInstructions(t *testing.T) {
	lhs := &Stream{}
	lhs.PushNum(1)
	rhs := &Stream{}
	rhs.PushNum(2)

	lhs.Append(rhs)
	lhs.Op(Add)

	want := "1 2 add"
	if got := lhs.Render(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOpcodeStringCoversEveryKind(t *testing.T) {
	ops := []Opcode{PushNum, PushStr, PushBool, LoadVar, Neg, Not, Add, Sub, Mul, Div, And, Or, Eq, Neq, Lt, Gt, Le, Ge}
	for _, op := range ops {
		if op.String() == "illegal" {
			t.Errorf("opcode %d has no String() case", op)
		}
	}
}
