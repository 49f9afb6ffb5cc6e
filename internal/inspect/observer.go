package inspect

import (
	"log/slog"
	"time"
)

// EventType represents lifecycle phases of one inspection report.
type EventType string

const (
	EventReportStart      EventType = "report_start"
	EventReportEnd        EventType = "report_end"
	EventAttributeSkipped EventType = "attribute_skipped"
)

// Event is a lifecycle event emitted while a report is produced.
type Event struct {
	Type      EventType // Type of event
	ReportID  string    // Report ID for tracing one invocation end to end
	Timestamp time.Time // When the event occurred
	Data      any       // Phase-specific data (mode, attribute name, row count)
}

// Observer interface for event subscribers.
type Observer interface {
	OnEvent(event Event)
}

// LoggingObserver logs every lifecycle event using structured logging.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer on the default logger.
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// OnEvent implements the Observer interface.
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("inspection_lifecycle",
		"event", event.Type,
		"report_id", event.ReportID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
