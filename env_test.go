package curly

import (
	"errors"
	"testing"
)

func TestEnvLookup(t *testing.T) {
	env := (*Env)(nil).bind("x", 1).bind("y", 2).bind("x", 3)

	if v, err := env.lookup("x"); err != nil || v != 3 {
		t.Errorf("lookup(x) = %d, %v; want innermost binding 3", v, err)
	}
	if v, err := env.lookup("y"); err != nil || v != 2 {
		t.Errorf("lookup(y) = %d, %v; want 2", v, err)
	}

	_, err := env.lookup("z")
	var free *FreeIdentifier
	if !errors.As(err, &free) || free.Name != "z" {
		t.Errorf("lookup(z): error %#v, want *FreeIdentifier{z}", err)
	}
}

func TestEmptyEnv(t *testing.T) {
	var env *Env
	if _, err := env.lookup("x"); err == nil {
		t.Error("lookup on empty environment succeeded")
	}
}

// bind must extend, not replace: the parent chain stays reachable and
// unchanged after an inner scope is discarded.
func TestBindLeavesParent(t *testing.T) {
	outer := (*Env)(nil).bind("x", 1)
	inner := outer.bind("x", 2)

	if v, _ := inner.lookup("x"); v != 2 {
		t.Errorf("inner lookup(x) = %d, want 2", v)
	}
	if v, _ := outer.lookup("x"); v != 1 {
		t.Errorf("outer lookup(x) = %d, want 1", v)
	}
}

func TestTableLookup(t *testing.T) {
	table := BuildTable([]*FunDef{
		{Name: "f", Param: "x", Body: &IntExpr{N: 1}},
		{Name: "g", Param: "x", Body: &IntExpr{N: 2}},
		{Name: "f", Param: "x", Body: &IntExpr{N: 3}},
	})

	def, err := table.Lookup("f")
	if err != nil {
		t.Fatalf("Lookup(f) failed: %v", err)
	}
	if def.Body.(*IntExpr).N != 1 {
		t.Errorf("Lookup(f) found the later definition")
	}

	_, err = table.Lookup("h")
	var undef *UndefinedFunction
	if !errors.As(err, &undef) || undef.Name != "h" {
		t.Errorf("Lookup(h): error %#v, want *UndefinedFunction{h}", err)
	}
}
