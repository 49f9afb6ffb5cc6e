package inspect

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/leengari/varspect/internal/session"
)

// AbsenceMarker is rendered wherever a concept (length, size, signature)
// does not apply to a value.
const AbsenceMarker = "-"

// typeName returns the runtime type name of a value.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	if _, ok := v.(*session.Module); ok {
		return "module"
	}
	return reflect.TypeOf(v).String()
}

// isCallable reports whether a value can be invoked.
func isCallable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}

// lengthOf returns the natural length of a value when it has one.
func lengthOf(v any) (n int, ok bool) {
	defer func() {
		if recover() != nil {
			n, ok = 0, false
		}
	}()
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len(), true
	}
	return 0, false
}

// sizeOf estimates the shallow memory footprint of a value in bytes: the
// value's own layout plus the immediate backing storage of strings, slices
// and maps. Container contents are never traversed.
func sizeOf(v any) (bytes uintptr) {
	defer func() {
		if recover() != nil {
			bytes = 0
		}
	}()
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	t := rv.Type()
	switch rv.Kind() {
	case reflect.String:
		return t.Size() + uintptr(rv.Len())
	case reflect.Slice:
		return t.Size() + uintptr(rv.Len())*t.Elem().Size()
	case reflect.Map:
		return t.Size() + uintptr(rv.Len())*(t.Key().Size()+t.Elem().Size())
	default:
		return t.Size()
	}
}

// sizeMB converts the shallow size estimate to megabytes.
func sizeMB(v any) float64 {
	return float64(sizeOf(v)) / (1 << 20)
}

func formatSize(v any) string {
	return strconv.FormatFloat(sizeMB(v), 'f', 2, 64)
}

func formatLen(v any) string {
	if n, ok := lengthOf(v); ok {
		return strconv.Itoa(n)
	}
	return AbsenceMarker
}

// formatValue produces the canonical debug form of a value. Truncation to
// the configured width is the renderer's job, not this function's.
func formatValue(v any) string {
	if v == nil {
		return "nil"
	}
	if m, ok := v.(*session.Module); ok {
		return fmt.Sprintf("<module %q>", m.Path)
	}
	return fmt.Sprintf("%#v", v)
}

// signature formats the call signature of a callable, or "N/A" when the
// value's function type cannot be introspected.
func signature(v any) (sig string) {
	defer func() {
		if recover() != nil {
			sig = "N/A"
		}
	}()
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return "N/A"
	}
	return rv.Type().String()
}
