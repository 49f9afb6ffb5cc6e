// Package session models the live environment an inspector reports on: a
// set of named bindings, the modules imported into it, and the documentation
// registered for its values. Environments are passed to the inspector
// explicitly; nothing here captures ambient scope.
package session

import "sort"

// Kind classifies what a binding holds. Modules and builtins are tagged
// explicitly because the host language has no runtime notion of either;
// plain function values are recognized by reflection at report time.
type Kind int

const (
	KindValue Kind = iota
	KindModule
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindBuiltin:
		return "builtin"
	default:
		return "value"
	}
}

// Binding is one name-to-value association in an environment.
type Binding struct {
	Name  string
	Value any
	Kind  Kind
}

// Environment holds the bindings of one interactive session. It is not
// safe for concurrent use; sessions are single-threaded by contract.
type Environment struct {
	bindings map[string]Binding
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Binding)}
}

// Define binds name to a plain value, replacing any previous binding.
func (e *Environment) Define(name string, value any) {
	e.bindings[name] = Binding{Name: name, Value: value, Kind: KindValue}
}

// DefineModule binds name to an imported module namespace.
func (e *Environment) DefineModule(name string, m *Module) {
	e.bindings[name] = Binding{Name: name, Value: m, Kind: KindModule}
}

// DefineBuiltin binds name to a host-provided callable and registers its
// documentation so object reports can surface it.
func (e *Environment) DefineBuiltin(name string, fn any, doc string) {
	e.bindings[name] = Binding{Name: name, Value: fn, Kind: KindBuiltin}
	if doc != "" {
		RegisterDoc(fn, doc)
	}
}

// Get returns the bound value for name.
func (e *Environment) Get(name string) (any, bool) {
	b, ok := e.bindings[name]
	if !ok {
		return nil, false
	}
	return b.Value, true
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	return len(e.bindings)
}

// Bindings returns a snapshot of all bindings. Names are unique by
// construction; order is name-sorted so snapshots are deterministic
// (callers apply their own display ordering on top).
func (e *Environment) Bindings() []Binding {
	out := make([]Binding, 0, len(e.bindings))
	for _, b := range e.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
