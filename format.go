package curly

import (
	"bytes"
	"fmt"
)

// format.go converts an AST back to concrete syntax.
// The grammar is fully bracketed, so there is no precedence to restore.

type formatter struct {
	buf bytes.Buffer
}

func Format(expr Expr) string {
	var f formatter
	f.visitExpr(expr)
	return f.buf.String()
}

func FormatDef(def *FunDef) string {
	var f formatter
	f.write("{deffun {%s %s} ", def.Name, def.Param)
	f.visitExpr(def.Body)
	f.write("}")
	return f.buf.String()
}

func (f *formatter) visitExpr(e Expr) {
	switch e := e.(type) {
	case *IntExpr:
		f.write("%d", e.N)
	case *VarExpr:
		f.write("%s", e.Name)
	case *BinExpr:
		f.write("{%s ", e.Op)
		f.visitExpr(e.Left)
		f.write(" ")
		f.visitExpr(e.Right)
		f.write("}")
	case *WithExpr:
		f.write("{with {%s ", e.Name)
		f.visitExpr(e.Val)
		f.write("} ")
		f.visitExpr(e.Body)
		f.write("}")
	case *If0Expr:
		f.write("{if0 ")
		f.visitExpr(e.Cond)
		f.write(" ")
		f.visitExpr(e.Then)
		f.write(" ")
		f.visitExpr(e.Else)
		f.write("}")
	case *CallExpr:
		f.write("{%s ", e.Func)
		f.visitExpr(e.Arg)
		f.write("}")
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func (f *formatter) write(format string, args ...interface{}) {
	fmt.Fprintf(&f.buf, format, args...)
}
