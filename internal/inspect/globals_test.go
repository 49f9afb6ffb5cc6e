package inspect

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/session"
)

func newCaptured(t *testing.T, cfg Config) (*Inspector, *display.CaptureSink) {
	t.Helper()
	sink := &display.CaptureSink{}
	cfg.Sink = sink
	return New(cfg), sink
}

func renderedNames(tbl *display.Table) []string {
	names := make([]string, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		names = append(names, row[0])
	}
	return names
}

func TestGlobalReportBasicFiltering(t *testing.T) {
	env := session.NewEnvironment()
	env.Define("kept", 1)
	env.Define("_scratch", 2)   // excluded prefix
	env.Define("trailing_", 3)  // trailing underscore
	env.Define("fn", func() {}) // function value
	env.DefineModule("strings", session.NewModule("strings"))
	env.DefineBuiltin("viewVar", func() {}, "")

	ins, sink := newCaptured(t, Config{})
	ins.Inspect(env, nil, false)

	if len(sink.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(sink.Tables))
	}
	got := renderedNames(sink.Tables[0])
	want := []string{"kept"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filtered names mismatch (-want +got):\n%s", diff)
	}
}

func TestGlobalReportAdvancedShowsEverything(t *testing.T) {
	env := session.NewEnvironment()
	env.Define("kept", 1)
	env.Define("_scratch", 2)
	env.Define("trailing_", 3)
	env.Define("fn", func() {})
	env.DefineModule("strings", session.NewModule("strings"))

	ins, sink := newCaptured(t, Config{})
	ins.Inspect(env, nil, true)

	got := renderedNames(sink.Tables[0])
	want := []string{"_scratch", "fn", "kept", "strings", "trailing_"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("advanced names mismatch (-want +got):\n%s", diff)
	}
}

// TestGlobalReportSortOrder covers the case-insensitive ordering contract:
// {"b":1, "A":2, "c":3} renders as A, b, c.
func TestGlobalReportSortOrder(t *testing.T) {
	env := session.NewEnvironment()
	env.Define("b", 1)
	env.Define("A", 2)
	env.Define("c", 3)

	ins, sink := newCaptured(t, Config{})
	ins.Inspect(env, nil, false)

	got := renderedNames(sink.Tables[0])
	want := []string{"A", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestGlobalReportDescending(t *testing.T) {
	env := session.NewEnvironment()
	env.Define("b", 1)
	env.Define("A", 2)
	env.Define("c", 3)

	ins, sink := newCaptured(t, Config{Descending: true})
	ins.Inspect(env, nil, false)

	got := renderedNames(sink.Tables[0])
	want := []string{"c", "b", "A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("descending order mismatch (-want +got):\n%s", diff)
	}
}

func TestGlobalReportCustomExcludePrefixes(t *testing.T) {
	env := session.NewEnvironment()
	env.Define("tmpValue", 1)
	env.Define("real", 2)

	ins, sink := newCaptured(t, Config{ExcludeNames: []string{"tmp"}})
	ins.Inspect(env, nil, false)

	got := renderedNames(sink.Tables[0])
	want := []string{"real"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("custom exclude mismatch (-want +got):\n%s", diff)
	}
}

func TestGlobalReportRowShape(t *testing.T) {
	env := session.NewEnvironment()
	env.Define("xs", []int{1, 2, 3})

	ins, sink := newCaptured(t, Config{})
	ins.Inspect(env, nil, false)

	tbl := sink.Tables[0]
	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	row := tbl.Rows[0]
	if row[1] != "[]int" {
		t.Errorf("Type = %q, want \"[]int\"", row[1])
	}
	if row[3] != "3" {
		t.Errorf("Len = %q, want \"3\"", row[3])
	}
	if row[4] != "[]int{1, 2, 3}" {
		t.Errorf("Value = %q", row[4])
	}
}

func TestGlobalReportNilEnvironment(t *testing.T) {
	ins, sink := newCaptured(t, Config{})
	ins.Inspect(nil, nil, false)

	if len(sink.Tables) != 1 {
		t.Fatalf("expected an empty table, got %d tables", len(sink.Tables))
	}
	if len(sink.Tables[0].Rows) != 0 {
		t.Errorf("expected no rows for nil environment")
	}
}
