package curly

// Run parses defs into a function table, parses program, and evaluates
// it under the empty environment. defs may be empty. Every failure is
// one of *SyntaxError, *UndefinedFunction, or *FreeIdentifier.
func Run(program, defs string) (int, error) {
	table, expr, err := prepare(program, defs)
	if err != nil {
		return 0, err
	}
	return Eval(expr, table, nil)
}

// RunSubst is Run under the substitution strategy.
func RunSubst(program, defs string) (int, error) {
	table, expr, err := prepare(program, defs)
	if err != nil {
		return 0, err
	}
	return EvalSubst(expr, table)
}

func prepare(program, defs string) (FunTable, Expr, error) {
	fundefs, err := ParseDefs(defs)
	if err != nil {
		return nil, nil, err
	}
	expr, err := Parse(program)
	if err != nil {
		return nil, nil, err
	}
	return BuildTable(fundefs), expr, nil
}
