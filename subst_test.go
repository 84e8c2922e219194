package curly

import "testing"

var substTests = []struct {
	input  string
	target string
	value  int
	want   string
}{
	{"5", "x", 3, "5"},
	{"x", "x", 3, "3"},
	{"y", "x", 3, "y"},
	{"{+ x x}", "x", 5, "{+ 5 5}"},
	{"{- x {+ 1 x}}", "x", 2, "{- 2 {+ 1 2}}"},
	// a different binder doesn't stop the rewrite
	{"{with {y 3} x}", "x", 5, "{with {y 3} 5}"},
	// the bound expression is outer scope: always rewritten
	{"{with {x {+ x 1}} {+ x 2}}", "x", 5, "{with {x {+ 5 1}} {+ x 2}}"},
	// the body is shadowed: never rewritten
	{"{with {x 3} {+ x x}}", "x", 5, "{with {x 3} {+ x x}}"},
	{"{if0 x x x}", "x", 0, "{if0 0 0 0}"},
	// arguments are rewritten, callee bodies are the table's business
	{"{f x}", "x", 5, "{f 5}"},
	{"{f {with {x x} x}}", "x", 5, "{f {with {x 5} x}}"},
}

func TestSubst(t *testing.T) {
	for _, tt := range substTests {
		expr, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		got := Format(Subst(expr, tt.target, &IntExpr{N: tt.value}))
		if got != tt.want {
			t.Errorf("Subst(%q, %s, %d) = %q, want %q",
				tt.input, tt.target, tt.value, got, tt.want)
		}
	}
}

// Subst builds a new tree; the input must come back out unchanged.
func TestSubstDoesNotMutate(t *testing.T) {
	expr, err := Parse("{with {y x} {+ x y}}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	before := Format(expr)
	Subst(expr, "x", &IntExpr{N: 9})
	if after := Format(expr); after != before {
		t.Errorf("input mutated: %q became %q", before, after)
	}
}
