package curly

type Expr interface{}

type IntExpr struct {
	N int
}

type VarExpr struct {
	Name string
}

// BinExpr is arithmetic over two sub-expressions; Op is "+" or "-".
type BinExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

// WithExpr binds Name to the value of Val, visible only inside Body.
type WithExpr struct {
	Name string
	Val  Expr
	Body Expr
}

type If0Expr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// CallExpr applies the named function to one argument.
// The callee is resolved by name against the function table at call time.
type CallExpr struct {
	Func string
	Arg  Expr
}

// A FunDef is a named single-parameter function.
// Bodies are parsed when the definition is read and evaluated once per call.
type FunDef struct {
	Name  string
	Param string
	Body  Expr
}
