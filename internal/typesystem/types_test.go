package typesystem

import "testing"

func TestPrimitiveEqualityIsStructural(t *testing.T) {
	if !(Num{}).Equal(Num{}) {
		t.Errorf("expected Num to equal Num")
	}
	if (Num{}).Equal(Str{}) {
		t.Errorf("expected Num not to equal Str")
	}
}

func TestArrayEqualityComparesElementType(t *testing.T) {
	a := Array{Elem: Num{}}
	b := Array{Elem: Num{}}
	c := Array{Elem: Str{}}
	if !a.Equal(b) {
		t.Errorf("expected array<num> to equal array<num>")
	}
	if a.Equal(c) {
		t.Errorf("expected array<num> not to equal array<str>")
	}
}

func TestMapEqualityComparesKeyAndValue(t *testing.T) {
	a := Map{Key: Str{}, Value: Num{}}
	b := Map{Key: Str{}, Value: Num{}}
	c := Map{Key: Str{}, Value: Bool{}}
	if !a.Equal(b) {
		t.Errorf("expected map<str,num> to equal map<str,num>")
	}
	if a.Equal(c) {
		t.Errorf("expected map<str,num> not to equal map<str,bool>")
	}
}

func TestUserEqualityComparesKindAndID(t *testing.T) {
	a := User{Kind: UserStruct, ID: 1, Name: "Point"}
	b := User{Kind: UserStruct, ID: 1, Name: "DifferentName"}
	c := User{Kind: UserEnum, ID: 1, Name: "Point"}
	d := User{Kind: UserStruct, ID: 2, Name: "Point"}
	if !a.Equal(b) {
		t.Errorf("expected same kind/id to be equal regardless of name")
	}
	if a.Equal(c) {
		t.Errorf("expected different kind not to be equal")
	}
	if a.Equal(d) {
		t.Errorf("expected different id not to be equal")
	}
}

func TestSumEqualityIsOrderSensitive(t *testing.T) {
	a := Sum{Options: []Type{Num{}, Str{}}}
	b := Sum{Options: []Type{Num{}, Str{}}}
	c := Sum{Options: []Type{Str{}, Num{}}}
	if !a.Equal(b) {
		t.Errorf("expected identical sum types to be equal")
	}
	if a.Equal(c) {
		t.Errorf("expected sum types with different option order not to be equal")
	}
}

func TestFunctionEqualityComparesArgsAndRet(t *testing.T) {
	a := Function{Args: []Type{Num{}, Str{}}, Ret: Bool{}}
	b := Function{Args: []Type{Num{}, Str{}}, Ret: Bool{}}
	c := Function{Args: []Type{Num{}}, Ret: Bool{}}
	none := Function{Args: []Type{}, Ret: nil}
	noneToo := Function{Args: []Type{}, Ret: nil}
	if !a.Equal(b) {
		t.Errorf("expected matching function types to be equal")
	}
	if a.Equal(c) {
		t.Errorf("expected different arg count not to be equal")
	}
	if !none.Equal(noneToo) {
		t.Errorf("expected two nil-return functions to be equal")
	}
}

func TestStringFormatsMatchSyntax(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{Num{}, "num"},
		{Array{Elem: Num{}}, "array<num>"},
		{Map{Key: Str{}, Value: Num{}}, "map<str, num>"},
		{Optional{Inner: Num{}}, "num?"},
		{Sum{Options: []Type{Num{}, Str{}}}, "num | str"},
	}
	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}
