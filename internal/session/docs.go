package session

import "reflect"

// The host language keeps documentation in source, not at runtime, so docs
// are carried in an explicit registry instead: builtins and notable types
// register a doc string, and reports look values up here.

type docRegistry struct {
	byFunc map[uintptr]string
	byType map[reflect.Type]string
}

var docs = &docRegistry{
	byFunc: make(map[uintptr]string),
	byType: make(map[reflect.Type]string),
}

// RegisterDoc attaches a documentation string to a value. Functions are
// keyed by code pointer, everything else by concrete type.
func RegisterDoc(value any, doc string) {
	if value == nil || doc == "" {
		return
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Func {
		docs.byFunc[rv.Pointer()] = doc
		return
	}
	docs.byType[rv.Type()] = doc
}

// Doc returns the registered documentation for a value, or "" if none.
func Doc(value any) string {
	if value == nil {
		return ""
	}
	if m, ok := value.(*Module); ok {
		return "Module " + m.Path
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Func {
		return docs.byFunc[rv.Pointer()]
	}
	return docs.byType[rv.Type()]
}

// DocFor returns the documentation registered for a qualified member name
// such as "Type.Method". Member docs share the type registry keyspace via
// a dedicated map so they never collide with value docs.
var memberDocs = make(map[string]string)

// RegisterMemberDoc attaches documentation to a named member of a type,
// e.g. RegisterMemberDoc("Buffer.Write", "...").
func RegisterMemberDoc(qualified, doc string) {
	if qualified == "" || doc == "" {
		return
	}
	memberDocs[qualified] = doc
}

func DocFor(qualified string) string {
	return memberDocs[qualified]
}
