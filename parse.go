package curly

import (
	"fmt"
	"strings"
)

// A SyntaxError reports input that matches none of the grammar forms.
// Fragment holds the offending token or bracketed form.
type SyntaxError struct {
	Fragment string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bad syntax: %s", e.Fragment)
}

// The reader's nested-list form: a form is either a token (atom)
// or a []form (the contents of a braced sequence).
type form interface{}

// read pops one form from the front of toks.
func read(toks *[]token) (form, error) {
	if len(*toks) == 0 {
		return nil, &SyntaxError{Fragment: "unexpected end of input"}
	}
	t := (*toks)[0]
	*toks = (*toks)[1:]
	switch t.kind {
	case tokRBrace:
		return nil, &SyntaxError{Fragment: "}"}
	case tokLBrace:
		var list []form
		for {
			if len(*toks) == 0 {
				return nil, &SyntaxError{Fragment: "missing }"}
			}
			if (*toks)[0].kind == tokRBrace {
				*toks = (*toks)[1:]
				return list, nil
			}
			f, err := read(toks)
			if err != nil {
				return nil, err
			}
			list = append(list, f)
		}
	default:
		return t, nil
	}
}

func renderForm(f form) string {
	switch f := f.(type) {
	case token:
		return f.String()
	case []form:
		parts := make([]string, len(f))
		for i, sub := range f {
			parts[i] = renderForm(sub)
		}
		return "{" + strings.Join(parts, " ") + "}"
	default:
		panic(fmt.Sprintf("unhandled case: %T", f))
	}
}

func badForm(f form) error {
	return &SyntaxError{Fragment: renderForm(f)}
}

// Parse translates a single bracketed-prefix expression into an AST.
func Parse(src string) (Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	f, err := read(&toks)
	if err != nil {
		return nil, err
	}
	if len(toks) > 0 {
		return nil, &SyntaxError{Fragment: toks[0].String()}
	}
	return parseExpr(f)
}

func ident(f form) (string, bool) {
	t, ok := f.(token)
	if !ok || t.kind != tokIdent {
		return "", false
	}
	return t.text, true
}

// parseExpr is structural recursion over the nested-list form.
// Shapes matching no production are syntax errors carrying the fragment.
func parseExpr(f form) (Expr, error) {
	switch f := f.(type) {
	case token:
		switch f.kind {
		case tokInt:
			return &IntExpr{N: f.n}, nil
		case tokIdent:
			if reserved(f.text) {
				return nil, badForm(f)
			}
			return &VarExpr{Name: f.text}, nil
		}
		return nil, badForm(f)
	case []form:
		head, ok := ident(first(f))
		if !ok {
			return nil, badForm(f)
		}
		switch head {
		case "+", "-":
			if len(f) != 3 {
				return nil, badForm(f)
			}
			left, err := parseExpr(f[1])
			if err != nil {
				return nil, err
			}
			right, err := parseExpr(f[2])
			if err != nil {
				return nil, err
			}
			return &BinExpr{Op: head, Left: left, Right: right}, nil
		case "with":
			return parseWith(f)
		case "if0":
			if len(f) != 4 {
				return nil, badForm(f)
			}
			cond, err := parseExpr(f[1])
			if err != nil {
				return nil, err
			}
			then, err := parseExpr(f[2])
			if err != nil {
				return nil, err
			}
			els, err := parseExpr(f[3])
			if err != nil {
				return nil, err
			}
			return &If0Expr{Cond: cond, Then: then, Else: els}, nil
		default:
			// function application: exactly {name arg}
			if len(f) != 2 {
				return nil, badForm(f)
			}
			arg, err := parseExpr(f[1])
			if err != nil {
				return nil, err
			}
			return &CallExpr{Func: head, Arg: arg}, nil
		}
	default:
		panic(fmt.Sprintf("unhandled case: %T", f))
	}
}

// parseWith handles {with {id expr} body}.
func parseWith(f []form) (Expr, error) {
	if len(f) != 3 {
		return nil, badForm(f)
	}
	clause, ok := f[1].([]form)
	if !ok || len(clause) != 2 {
		return nil, badForm(f)
	}
	name, ok := ident(clause[0])
	if !ok || reserved(name) {
		return nil, badForm(f)
	}
	val, err := parseExpr(clause[1])
	if err != nil {
		return nil, err
	}
	body, err := parseExpr(f[2])
	if err != nil {
		return nil, err
	}
	return &WithExpr{Name: name, Val: val, Body: body}, nil
}

// ParseDefs reads a sequence of {deffun {name param} body} forms.
func ParseDefs(src string) ([]*FunDef, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	var defs []*FunDef
	for len(toks) > 0 {
		f, err := read(&toks)
		if err != nil {
			return nil, err
		}
		def, err := parseDef(f)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseDef(f form) (*FunDef, error) {
	list, ok := f.([]form)
	if !ok || len(list) != 3 {
		return nil, badForm(f)
	}
	if head, ok := ident(list[0]); !ok || head != "deffun" {
		return nil, badForm(f)
	}
	sig, ok := list[1].([]form)
	if !ok || len(sig) != 2 {
		return nil, badForm(f)
	}
	name, ok := ident(sig[0])
	if !ok || reserved(name) {
		return nil, badForm(f)
	}
	param, ok := ident(sig[1])
	if !ok || reserved(param) {
		return nil, badForm(f)
	}
	body, err := parseExpr(list[2])
	if err != nil {
		return nil, err
	}
	return &FunDef{Name: name, Param: param, Body: body}, nil
}

func first(f []form) form {
	if len(f) == 0 {
		return nil
	}
	return f[0]
}

func reserved(name string) bool {
	switch name {
	case "with", "if0", "deffun", "+", "-":
		return true
	}
	return false
}
