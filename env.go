package curly

import "fmt"

// A FreeIdentifier reports a name with no enclosing binding.
type FreeIdentifier struct {
	Name string
}

func (e *FreeIdentifier) Error() string {
	return fmt.Sprintf("free identifier: %s", e.Name)
}

// An Env is a chain of deferred substitutions: one binding per frame,
// innermost first. The nil Env is the empty environment.
//
// A fresh Env is pushed at each with-binding and at each function call
// and lives only as long as the evaluation of that subtree.
type Env struct {
	Name   string
	Value  int
	Parent *Env
}

// bind extends env with one binding, leaving env itself untouched.
func (env *Env) bind(name string, value int) *Env {
	return &Env{Name: name, Value: value, Parent: env}
}

// lookup walks the chain from innermost to outermost.
func (env *Env) lookup(name string) (int, error) {
	for e := env; e != nil; e = e.Parent {
		if e.Name == name {
			return e.Value, nil
		}
	}
	return 0, &FreeIdentifier{Name: name}
}
