package curly

import "fmt"

// An UndefinedFunction reports a call to a name absent from the table.
type UndefinedFunction struct {
	Name string
}

func (e *UndefinedFunction) Error() string {
	return fmt.Sprintf("undefined function: %s", e.Name)
}

// A FunTable is an ordered collection of function definitions. It is
// built once, before evaluation, and never mutated afterwards, so it
// may be shared by reference. Because calls resolve names against the
// complete table, definitions may refer to functions defined later.
type FunTable []*FunDef

func BuildTable(defs []*FunDef) FunTable {
	return FunTable(defs)
}

// Lookup finds the definition for name; the first definition wins.
func (t FunTable) Lookup(name string) (*FunDef, error) {
	for _, def := range t {
		if def.Name == name {
			return def, nil
		}
	}
	return nil, &UndefinedFunction{Name: name}
}
