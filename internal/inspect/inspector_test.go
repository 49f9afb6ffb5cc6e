package inspect

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/session"
)

// Inspection is synchronous by contract: no invocation may leave a
// goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInspectRestoresDisplaySettings(t *testing.T) {
	display.Set(display.Settings{MaxColWidth: 123, MaxRows: 45})
	before := display.Current()

	env := session.NewEnvironment()
	env.Define("x", 1)

	ins, _ := newCaptured(t, Config{MaxValueLength: 20, MaxRows: 5})
	ins.Inspect(env, nil, false)

	if got := display.Current(); got != before {
		t.Errorf("display settings not restored: got %+v, want %+v", got, before)
	}
}

func TestInspectRestoresDisplaySettingsAfterAttributeFailure(t *testing.T) {
	display.Set(display.Settings{MaxColWidth: 123, MaxRows: 45})
	before := display.Current()

	// newSample carries an unreadable attribute, so the member report
	// takes its recoverable-failure path.
	ins, sink := newCaptured(t, Config{MaxValueLength: 20, MaxRows: 5})
	ins.Inspect(nil, newSample(), true)

	if len(sink.Lines) == 0 {
		t.Fatal("expected at least one diagnostic line")
	}
	if got := display.Current(); got != before {
		t.Errorf("display settings not restored after failure: got %+v, want %+v", got, before)
	}
}

type panickySink struct{ display.CaptureSink }

func (s *panickySink) Render(t *display.Table) { panic("render exploded") }

func TestInspectSurvivesSinkPanicAndRestores(t *testing.T) {
	display.Set(display.Settings{MaxColWidth: 123, MaxRows: 45})
	before := display.Current()

	env := session.NewEnvironment()
	env.Define("x", 1)

	ins := New(Config{Sink: &panickySink{}, MaxValueLength: 10, MaxRows: 3})
	ins.Inspect(env, nil, false) // must not panic out

	if got := display.Current(); got != before {
		t.Errorf("display settings not restored after sink panic: got %+v, want %+v", got, before)
	}
}

func TestInspectAppliesConfiguredSettingsDuringRender(t *testing.T) {
	display.Set(display.DefaultSettings())

	var seen display.Settings
	env := session.NewEnvironment()
	env.Define("x", 1)

	sink := &settingsProbe{seen: &seen}
	ins := New(Config{Sink: sink, MaxValueLength: 42, MaxRows: 7})
	ins.Inspect(env, nil, false)

	if seen.MaxColWidth != 42 || seen.MaxRows != 7 {
		t.Errorf("settings during render = %+v, want 42/7", seen)
	}
}

type settingsProbe struct {
	seen *display.Settings
}

func (s *settingsProbe) Render(t *display.Table) { *s.seen = display.Current() }

func (s *settingsProbe) Printf(format string, args ...any) {}

type recordingObserver struct{ events []Event }

func (r *recordingObserver) OnEvent(e Event) { r.events = append(r.events, e) }

func TestInspectEmitsLifecycleEvents(t *testing.T) {
	obs := &recordingObserver{}
	sink := &display.CaptureSink{}
	ins := New(Config{Sink: sink, Observers: []Observer{obs}})

	ins.Inspect(nil, newSample(), true)

	if len(obs.events) < 3 {
		t.Fatalf("expected start, skip and end events, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventReportStart {
		t.Errorf("first event = %v, want %v", obs.events[0].Type, EventReportStart)
	}
	if last := obs.events[len(obs.events)-1]; last.Type != EventReportEnd {
		t.Errorf("last event = %v, want %v", last.Type, EventReportEnd)
	}

	var skipped bool
	for _, e := range obs.events {
		if e.Type == EventAttributeSkipped && e.Data == "secrets" {
			skipped = true
		}
		if e.ReportID == "" {
			t.Error("event missing report ID")
		}
		if e.ReportID != obs.events[0].ReportID {
			t.Error("events of one invocation should share a report ID")
		}
	}
	if !skipped {
		t.Error("missing attribute_skipped event for unreadable attribute")
	}
}

func TestNewFillsDefaults(t *testing.T) {
	ins := New(Config{})
	if ins.maxValueLength != defaultMaxValueLength {
		t.Errorf("maxValueLength = %d, want %d", ins.maxValueLength, defaultMaxValueLength)
	}
	if ins.maxRows != display.DefaultSettings().MaxRows {
		t.Errorf("maxRows = %d, want ambient default", ins.maxRows)
	}
	if len(ins.excludeNames) == 0 {
		t.Error("exclude names default missing")
	}
	if ins.sink == nil || ins.logger == nil {
		t.Error("sink/logger defaults missing")
	}
}
