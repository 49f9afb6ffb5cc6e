package session

import (
	"github.com/traefik/yaegi/interp"
)

// FromYaegi snapshots the symbol table of a live yaegi interpreter into an
// Environment. Symbols defined in importPath (typically "main") become
// direct bindings; every other package in the table becomes a Module
// binding, so the basic global report hides imports the way it hides any
// other module.
func FromYaegi(i *interp.Interpreter, importPath string) *Environment {
	env := NewEnvironment()
	if i == nil {
		return env
	}

	for pkgPath, table := range i.Symbols("") {
		if pkgPath == importPath {
			for name, rv := range table {
				if !rv.IsValid() || !rv.CanInterface() {
					continue
				}
				env.Define(name, rv.Interface())
			}
			continue
		}

		mod := NewModule(pkgPath)
		for name, rv := range table {
			if !rv.IsValid() || !rv.CanInterface() {
				continue
			}
			mod.Symbols[name] = rv.Interface()
		}
		env.DefineModule(mod.Name, mod)
	}

	return env
}
