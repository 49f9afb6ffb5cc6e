package display

import "fmt"

// CaptureSink records rendered tables and printed lines for assertions in
// tests and for callers that post-process reports instead of printing them.
type CaptureSink struct {
	Tables []*Table
	Lines  []string
}

func (s *CaptureSink) Render(t *Table) {
	s.Tables = append(s.Tables, t)
}

func (s *CaptureSink) Printf(format string, args ...any) {
	s.Lines = append(s.Lines, fmt.Sprintf(format, args...))
}
