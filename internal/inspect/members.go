package inspect

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/session"
)

// member is one entry in a value's attribute directory. Reading is
// deferred so a failure stays scoped to the one member.
type member struct {
	name string
	read func() (any, error)
}

// memberReport renders one row per member of target: struct fields in
// declaration order, then the method set. No sorting is applied on top of
// that directory order. A member whose read fails is reported as a
// diagnostic line and skipped; enumeration continues.
func (ins *Inspector) memberReport(target any, includeAdvanced bool, reportID string) {
	owner := typeName(target)
	t := display.NewTable(
		fmt.Sprintf("Attributes and methods of %s:", owner),
		"Name", "Type", "Signature", "Size (MB)", "Len", "Value",
	)

	for _, m := range members(target) {
		if !includeAdvanced && !isPublicName(m.name) {
			continue
		}
		value, err := m.read()
		if err != nil {
			ins.sink.Printf("Attribute %s is not accessible.\n", m.name)
			ins.logger.Warn("attribute skipped",
				"report_id", reportID,
				"attribute", m.name,
				"error", err,
			)
			ins.emit(Event{
				Type:      EventAttributeSkipped,
				ReportID:  reportID,
				Timestamp: time.Now(),
				Data:      m.name,
			})
			continue
		}

		if isCallable(value) {
			t.Append(
				m.name,
				"Method",
				signature(value),
				AbsenceMarker,
				AbsenceMarker,
				memberDoc(owner, m.name, value),
			)
			continue
		}
		t.Append(
			m.name,
			typeName(value),
			AbsenceMarker,
			formatSize(value),
			formatLen(value),
			formatValue(value),
		)
	}

	ins.sink.Render(t)
}

// members builds the attribute directory of a value: fields of the
// underlying struct (through pointers), then the value's method set.
func members(target any) []member {
	if target == nil {
		return nil
	}
	rv := reflect.ValueOf(target)

	base := rv
	for base.Kind() == reflect.Pointer && !base.IsNil() {
		base = base.Elem()
	}

	var out []member
	if base.Kind() == reflect.Struct {
		st := base.Type()
		for i := 0; i < st.NumField(); i++ {
			field := st.Field(i)
			fv := base.Field(i)
			out = append(out, member{
				name: field.Name,
				read: func() (any, error) { return readField(field.Name, fv) },
			})
		}
	}

	mt := rv.Type()
	for i := 0; i < mt.NumMethod(); i++ {
		name := mt.Method(i).Name
		mv := rv.Method(i)
		out = append(out, member{
			name: name,
			read: func() (any, error) { return mv.Interface(), nil },
		})
	}
	return out
}

// readField materializes a struct field value. Unexported scalar fields
// are read through their kind accessors; unexported composites cannot be
// materialized and yield an AccessError.
func readField(name string, fv reflect.Value) (any, error) {
	if fv.CanInterface() {
		return fv.Interface(), nil
	}
	switch fv.Kind() {
	case reflect.Bool:
		return fv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return fv.Float(), nil
	case reflect.Complex64, reflect.Complex128:
		return fv.Complex(), nil
	case reflect.String:
		return fv.String(), nil
	}
	return nil, session.NewAccessError(name, "unexported "+fv.Kind().String()+" field")
}

// isPublicName reports whether a member name is public by convention:
// not underscore-prefixed and exported.
func isPublicName(name string) bool {
	if name == "" || strings.HasPrefix(name, "_") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// memberDoc resolves documentation for a callable member: a doc registered
// for the qualified member name wins, then a doc registered for the func
// value itself. Pointer owners resolve against the base type name.
func memberDoc(owner, name string, value any) string {
	owner = strings.TrimPrefix(owner, "*")
	if doc := session.DocFor(owner + "." + name); doc != "" {
		return doc
	}
	if doc := session.Doc(value); doc != "" {
		return doc
	}
	return noDocPlaceholder
}
