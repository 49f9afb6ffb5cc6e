package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Sink renders tables and diagnostic lines to an interactive surface.
// Rendering is best-effort: sinks never return errors to the caller.
type Sink interface {
	Render(t *Table)
	Printf(format string, args ...any)
}

// TerminalSink writes tables as aligned text grids using tabwriter,
// honoring the ambient Settings for cell truncation and row capping.
type TerminalSink struct {
	w     io.Writer
	color bool

	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
}

// NewTerminalSink creates a sink writing to w. With color enabled, table
// titles and headers are styled; the grid itself stays plain so tabwriter
// alignment is not thrown off by escape sequences.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	return &TerminalSink{
		w:           w,
		color:       color,
		titleStyle:  lipgloss.NewStyle().Bold(true),
		headerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Printf writes a diagnostic or title line.
func (s *TerminalSink) Printf(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
}

// Render writes the table. Cells longer than the ambient MaxColWidth are
// truncated with an ellipsis; tables longer than MaxRows are cut with a
// trailing note. An empty table renders its header only.
func (s *TerminalSink) Render(t *Table) {
	cfg := Current()

	if t.Title != "" {
		title := t.Title
		if s.color {
			title = s.titleStyle.Render(title)
		}
		fmt.Fprintln(s.w, title)
	}

	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', 0)

	for i, col := range t.Columns {
		if s.color {
			// Style per cell, then write the plain tab separators so
			// tabwriter still sees one escape-free delimiter per column.
			fmt.Fprint(tw, s.headerStyle.Render(col))
		} else {
			fmt.Fprint(tw, col)
		}
		if i < len(t.Columns)-1 {
			fmt.Fprint(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	for i := range t.Columns {
		fmt.Fprint(tw, "---")
		if i < len(t.Columns)-1 {
			fmt.Fprint(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	shown := len(t.Rows)
	if shown > cfg.MaxRows {
		shown = cfg.MaxRows
	}
	for _, row := range t.Rows[:shown] {
		for i, cell := range row {
			fmt.Fprint(tw, clipCell(cell, cfg.MaxColWidth))
			if i < len(row)-1 {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	if omitted := len(t.Rows) - shown; omitted > 0 {
		fmt.Fprintf(s.w, "(%d more rows not shown)\n", omitted)
	}
}

// clipCell flattens newlines and tabs, then truncates to max runes with an
// ellipsis. Grid integrity depends on cells never containing '\t' or '\n'.
func clipCell(cell string, max int) string {
	cell = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`).Replace(cell)
	runes := []rune(cell)
	if max <= 0 || len(runes) <= max {
		return cell
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
