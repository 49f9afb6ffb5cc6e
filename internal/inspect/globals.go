package inspect

import (
	"sort"
	"strings"

	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/session"
)

// globalReport renders one row per visible binding of env. The basic view
// hides session artifacts, modules and callables; the advanced view shows
// every binding unfiltered.
func (ins *Inspector) globalReport(env *session.Environment, includeAdvanced bool) {
	t := display.NewTable(
		"User-defined and basic type global variables:",
		"Name", "Type", "Size (MB)", "Len", "Value",
	)

	var bindings []session.Binding
	if env != nil {
		bindings = env.Bindings()
	}

	kept := bindings[:0:0]
	for _, b := range bindings {
		if includeAdvanced || !ins.hidden(b) {
			kept = append(kept, b)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		li, lj := strings.ToLower(kept[i].Name), strings.ToLower(kept[j].Name)
		if ins.descending {
			return li > lj
		}
		return li < lj
	})

	for _, b := range kept {
		t.Append(
			b.Name,
			typeName(b.Value),
			formatSize(b.Value),
			formatLen(b.Value),
			formatValue(b.Value),
		)
	}

	ins.sink.Render(t)
}

// hidden applies the basic-view filter: excluded name prefixes, trailing
// underscores, and bindings holding modules, functions or builtins.
func (ins *Inspector) hidden(b session.Binding) bool {
	for _, prefix := range ins.excludeNames {
		if strings.HasPrefix(b.Name, prefix) {
			return true
		}
	}
	if strings.HasSuffix(b.Name, "_") {
		return true
	}
	if b.Kind == session.KindModule || b.Kind == session.KindBuiltin {
		return true
	}
	return isCallable(b.Value)
}
