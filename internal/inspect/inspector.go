// Package inspect renders human-facing tabular reports about the bindings
// of a live session or the members of a single value. Reports are
// best-effort: unreadable members and unsupported introspection queries
// degrade to placeholders or diagnostic lines, never to a crash.
package inspect

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/session"
)

// DefaultExcludeNames are the interactive-session artifacts hidden from the
// basic global report.
func DefaultExcludeNames() []string {
	return []string{"_", "exit", "quit", "help"}
}

const defaultMaxValueLength = 300

// Config carries the construction parameters of an Inspector. Zero values
// fall back to defaults, so Config{} is a valid configuration.
type Config struct {
	// ExcludeNames is the set of binding-name prefixes hidden from the
	// basic global report.
	ExcludeNames []string
	// Descending flips the sort order of the global report.
	Descending bool
	// MaxValueLength caps the rendered width of value previews.
	MaxValueLength int
	// MaxRows caps the number of rendered rows per table. Zero means the
	// ambient display default.
	MaxRows int
	// Sink receives rendered tables and diagnostic lines.
	Sink display.Sink
	// Logger receives structured diagnostics.
	Logger *slog.Logger
	// Observers receive lifecycle events.
	Observers []Observer
}

// Inspector produces tabular reports. Configuration is fixed at
// construction; invocations share no other state.
type Inspector struct {
	excludeNames   []string
	descending     bool
	maxValueLength int
	maxRows        int
	sink           display.Sink
	logger         *slog.Logger
	observers      []Observer
}

// New creates an Inspector, filling unset Config fields with defaults.
func New(cfg Config) *Inspector {
	if cfg.ExcludeNames == nil {
		cfg.ExcludeNames = DefaultExcludeNames()
	}
	if cfg.MaxValueLength <= 0 {
		cfg.MaxValueLength = defaultMaxValueLength
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = display.DefaultSettings().MaxRows
	}
	if cfg.Sink == nil {
		cfg.Sink = display.NewTerminalSink(os.Stdout, false)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Inspector{
		excludeNames:   cfg.ExcludeNames,
		descending:     cfg.Descending,
		maxValueLength: cfg.MaxValueLength,
		maxRows:        cfg.MaxRows,
		sink:           cfg.Sink,
		logger:         cfg.Logger,
		observers:      cfg.Observers,
	}
}

// Inspect renders the global-binding report of env when target is nil,
// otherwise an overview and member report for target. The ambient display
// settings are overridden for the duration of the call and restored on
// every exit path. Inspect never panics; internal failures are logged and
// the report ends early.
func (ins *Inspector) Inspect(env *session.Environment, target any, includeAdvanced bool) {
	restore := display.Override(display.Settings{
		MaxColWidth: ins.maxValueLength,
		MaxRows:     ins.maxRows,
	})
	defer restore()

	reportID := uuid.NewString()
	ins.emit(Event{
		Type:      EventReportStart,
		ReportID:  reportID,
		Timestamp: time.Now(),
		Data:      reportMode(target),
	})
	defer func() {
		if r := recover(); r != nil {
			ins.logger.Error("inspection failed",
				"report_id", reportID,
				"panic", r,
			)
		}
		ins.emit(Event{
			Type:      EventReportEnd,
			ReportID:  reportID,
			Timestamp: time.Now(),
			Data:      reportMode(target),
		})
	}()

	if target == nil {
		ins.globalReport(env, includeAdvanced)
		return
	}
	ins.overviewReport(target)
	ins.memberReport(target, includeAdvanced, reportID)
}

func (ins *Inspector) emit(event Event) {
	for _, o := range ins.observers {
		o.OnEvent(event)
	}
}

func reportMode(target any) string {
	if target == nil {
		return "globals"
	}
	return "object"
}
