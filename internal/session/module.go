package session

// Module is a named symbol namespace standing in for an imported package.
// Interpreter adapters register one Module binding per import so the global
// report can filter them out of the basic view.
type Module struct {
	Name    string
	Path    string
	Symbols map[string]any
}

// NewModule creates a module namespace for the given import path. Name is
// the last path element unless the path has none.
func NewModule(path string) *Module {
	name := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			name = path[i+1:]
			break
		}
	}
	return &Module{
		Name:    name,
		Path:    path,
		Symbols: make(map[string]any),
	}
}
