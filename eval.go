package curly

import "fmt"

// Eval reduces expr to an integer using deferred substitution: instead
// of rewriting the tree, bindings are pushed onto an environment chain
// and identifiers are looked up when reached. Each node is visited
// once, each lookup is bounded by binding depth.
//
// Evaluation is plain recursive descent on the goroutine stack, so
// deeply nested programs and runaway user recursion exhaust the stack;
// that is a limit of the language, not a detected error.
func Eval(expr Expr, table FunTable, env *Env) (int, error) {
	switch e := expr.(type) {
	case *IntExpr:
		return e.N, nil
	case *VarExpr:
		return env.lookup(e.Name)
	case *BinExpr:
		left, err := Eval(e.Left, table, env)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.Right, table, env)
		if err != nil {
			return 0, err
		}
		return arith(e.Op, left, right), nil
	case *WithExpr:
		// the bound expression is outer scope, the body sees the new binding
		val, err := Eval(e.Val, table, env)
		if err != nil {
			return 0, err
		}
		return Eval(e.Body, table, env.bind(e.Name, val))
	case *If0Expr:
		cond, err := Eval(e.Cond, table, env)
		if err != nil {
			return 0, err
		}
		if cond == 0 {
			return Eval(e.Then, table, env)
		}
		return Eval(e.Else, table, env)
	case *CallExpr:
		def, err := table.Lookup(e.Func)
		if err != nil {
			return 0, err
		}
		arg, err := Eval(e.Arg, table, env)
		if err != nil {
			return 0, err
		}
		// The body runs under a fresh environment holding only the
		// parameter, never chained onto the caller's env. Chaining it
		// would let callees see call-site bindings: dynamic scoping.
		return Eval(def.Body, table, &Env{Name: def.Param, Value: arg})
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

// EvalSubst reduces expr by physically substituting values into the
// tree. It is the reference strategy Eval is checked against: the two
// must agree on every program that evaluates at all.
func EvalSubst(expr Expr, table FunTable) (int, error) {
	switch e := expr.(type) {
	case *IntExpr:
		return e.N, nil
	case *VarExpr:
		// substitution has already consumed every binder above us
		return 0, &FreeIdentifier{Name: e.Name}
	case *BinExpr:
		left, err := EvalSubst(e.Left, table)
		if err != nil {
			return 0, err
		}
		right, err := EvalSubst(e.Right, table)
		if err != nil {
			return 0, err
		}
		return arith(e.Op, left, right), nil
	case *WithExpr:
		val, err := EvalSubst(e.Val, table)
		if err != nil {
			return 0, err
		}
		return EvalSubst(Subst(e.Body, e.Name, &IntExpr{N: val}), table)
	case *If0Expr:
		cond, err := EvalSubst(e.Cond, table)
		if err != nil {
			return 0, err
		}
		if cond == 0 {
			return EvalSubst(e.Then, table)
		}
		return EvalSubst(e.Else, table)
	case *CallExpr:
		def, err := table.Lookup(e.Func)
		if err != nil {
			return 0, err
		}
		arg, err := EvalSubst(e.Arg, table)
		if err != nil {
			return 0, err
		}
		return EvalSubst(Subst(def.Body, def.Param, &IntExpr{N: arg}), table)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func arith(op string, left, right int) int {
	switch op {
	case "+":
		return left + right
	case "-":
		return left - right
	default:
		panic(fmt.Sprintf("unhandled binop: %s", op))
	}
}
