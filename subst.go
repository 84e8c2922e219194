package curly

import "fmt"

// Subst returns a new expression in which every free occurrence of
// target has been replaced by value. Bound occurrences stay untouched.
//
// Each call walks the whole subtree, so substituting through n nested
// binders costs O(n²); Eval avoids this by deferring lookups to an
// environment instead.
func Subst(expr Expr, target string, value Expr) Expr {
	switch e := expr.(type) {
	case *IntExpr:
		return e
	case *VarExpr:
		if e.Name == target {
			return value
		}
		return e
	case *BinExpr:
		return &BinExpr{
			Op:    e.Op,
			Left:  Subst(e.Left, target, value),
			Right: Subst(e.Right, target, value),
		}
	case *WithExpr:
		// The bound expression belongs to the outer scope, so it is always
		// rewritten. The body is rewritten only when the binder does not
		// shadow target.
		val := Subst(e.Val, target, value)
		body := e.Body
		if e.Name != target {
			body = Subst(body, target, value)
		}
		return &WithExpr{Name: e.Name, Val: val, Body: body}
	case *If0Expr:
		return &If0Expr{
			Cond: Subst(e.Cond, target, value),
			Then: Subst(e.Then, target, value),
			Else: Subst(e.Else, target, value),
		}
	case *CallExpr:
		// Only the argument is rewritten; the callee's body lives in the
		// function table and is resolved at call time.
		return &CallExpr{Func: e.Func, Arg: Subst(e.Arg, target, value)}
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}
