package value

import "testing"

func TestDefineAndLookupWithinCurrentFrame(t *testing.T) {
	cs := NewCallStack()
	cs.Define("x", Number(1))

	got, ok := cs.Lookup("x")
	if !ok || got != Number(1) {
		t.Fatalf("got %v, %v", got, ok)
	}
}

func TestLookupDoesNotCrossFrameBoundary(t *testing.T) {
	cs := NewCallStack()
	cs.Define("x", Number(1))

	cs.PushFrame()
	if _, ok := cs.Lookup("x"); ok {
		t.Fatalf("expected no closure over the outer frame's bindings")
	}
	cs.PopFrame()

	if _, ok := cs.Lookup("x"); !ok {
		t.Fatalf("expected the outer binding to still be visible after popping")
	}
}

func TestScopeShadowingAndPop(t *testing.T) {
	cs := NewCallStack()
	cs.Define("x", Number(1))

	cs.PushScope()
	cs.Define("x", Number(2))
	if got, _ := cs.Lookup("x"); got != Number(2) {
		t.Fatalf("expected inner scope to shadow outer, got %v", got)
	}
	cs.PopScope()

	if got, _ := cs.Lookup("x"); got != Number(1) {
		t.Fatalf("expected outer binding to be visible again, got %v", got)
	}
}

func TestAssignUpdatesExistingBindingInPlace(t *testing.T) {
	cs := NewCallStack()
	cs.Define("x", Number(1))
	cs.PushScope()

	if !cs.Assign("x", Number(9)) {
		t.Fatalf("expected Assign to find the outer binding")
	}
	if got, _ := cs.Lookup("x"); got != Number(9) {
		t.Fatalf("got %v, want 9", got)
	}

	if cs.Assign("neverDefined", Number(0)) {
		t.Fatalf("expected Assign to fail for an undefined name")
	}
}

func TestDepthAndScopeDepthTrackPushesAndPops(t *testing.T) {
	cs := NewCallStack()
	if cs.Depth() != 1 || cs.ScopeDepth() != 1 {
		t.Fatalf("got depth %d scopeDepth %d, want 1 1", cs.Depth(), cs.ScopeDepth())
	}

	cs.PushFrame()
	cs.PushScope()
	if cs.Depth() != 2 || cs.ScopeDepth() != 2 {
		t.Fatalf("got depth %d scopeDepth %d, want 2 2", cs.Depth(), cs.ScopeDepth())
	}

	cs.PopScope()
	cs.PopFrame()
	if cs.Depth() != 1 || cs.ScopeDepth() != 1 {
		t.Fatalf("got depth %d scopeDepth %d after pops, want 1 1", cs.Depth(), cs.ScopeDepth())
	}
}
