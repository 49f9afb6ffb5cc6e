package inspect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/session"
)

const noDocPlaceholder = "No documentation available"

// overviewReport renders the transposed single-object summary: one labeled
// row per derived field. Every field is derived independently; a failed or
// inapplicable query yields its placeholder, never an aborted report.
func (ins *Inspector) overviewReport(target any) {
	loc := locate(target)

	t := display.NewTable("Object Overview:", "", "Value")
	t.Append("Type", orPlaceholder("Unknown type", func() string { return typeName(target) }))
	t.Append("Module", orPlaceholder("Unknown module", func() string { return moduleName(target) }))
	t.Append("Source File", loc.sourceFile)
	t.Append("File Path", loc.filePath)
	t.Append("Source Lines", loc.sourceLines)
	t.Append("Size (MB)", orPlaceholder("0.00", func() string { return formatSize(target) }))
	t.Append("Doc", orPlaceholder(noDocPlaceholder, func() string { return session.Doc(target) }))

	ins.sink.Render(t)
}

type location struct {
	sourceFile  string
	filePath    string
	sourceLines string
}

// locate resolves where a value's executable code lives. Only callables
// carry code; everything else gets the fixed placeholders.
func locate(v any) (loc location) {
	loc = location{
		sourceFile:  "Source file not available",
		filePath:    "File not applicable",
		sourceLines: "No source line info",
	}
	defer func() {
		if recover() != nil {
			loc.sourceFile = "Source file not applicable"
		}
	}()

	if !isCallable(v) {
		return loc
	}
	fn := runtime.FuncForPC(reflect.ValueOf(v).Pointer())
	if fn == nil {
		loc.sourceFile = "Source file not applicable"
		return loc
	}
	file, line := fn.FileLine(fn.Entry())
	if file != "" {
		loc.sourceFile = file
		loc.filePath = file
	}
	if line > 0 {
		loc.sourceLines = fmt.Sprintf("Starts at line %d", line)
	}
	return loc
}

// moduleName resolves the package or module a value belongs to.
func moduleName(v any) string {
	const unknown = "Unknown module"
	if v == nil {
		return unknown
	}
	if m, ok := v.(*session.Module); ok {
		return m.Path
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		fn := runtime.FuncForPC(rv.Pointer())
		if fn == nil {
			return unknown
		}
		return packageOf(fn.Name())
	}

	t := rv.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if pkg := t.PkgPath(); pkg != "" {
		return pkg
	}
	return unknown
}

// packageOf extracts the package path from a qualified symbol name like
// "github.com/x/y.Func" or "main.(*T).Method".
func packageOf(symbol string) string {
	if symbol == "" {
		return "Unknown module"
	}
	slash := strings.LastIndexByte(symbol, '/')
	dot := strings.IndexByte(symbol[slash+1:], '.')
	if dot < 0 {
		return symbol
	}
	return symbol[:slash+1+dot]
}

// orPlaceholder runs f, substituting placeholder when f panics or returns
// an empty string.
func orPlaceholder(placeholder string, f func() string) (out string) {
	defer func() {
		if recover() != nil {
			out = placeholder
		}
	}()
	out = f()
	if out == "" {
		out = placeholder
	}
	return out
}
