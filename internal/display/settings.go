package display

// Settings is the ambient display configuration shared by all sinks:
// the maximum width of a rendered cell and the maximum number of rows
// shown per table. It mirrors the display-option store of the host
// surface, so inspectors override it for the duration of a report and
// restore it afterwards.
type Settings struct {
	MaxColWidth int
	MaxRows     int
}

const (
	defaultMaxColWidth = 300
	defaultMaxRows     = 300
)

// current is process-wide state. Invocations are single-threaded by
// contract; nested overrides on one goroutine restore in LIFO order.
var current = DefaultSettings()

// DefaultSettings returns the stock display configuration.
func DefaultSettings() Settings {
	return Settings{
		MaxColWidth: defaultMaxColWidth,
		MaxRows:     defaultMaxRows,
	}
}

// Current returns the ambient settings.
func Current() Settings {
	return current
}

// Set replaces the ambient settings. Zero fields keep their defaults so a
// partially filled Settings never disables truncation outright.
func Set(s Settings) {
	if s.MaxColWidth <= 0 {
		s.MaxColWidth = defaultMaxColWidth
	}
	if s.MaxRows <= 0 {
		s.MaxRows = defaultMaxRows
	}
	current = s
}

// Override swaps in the given settings and returns a restore function that
// puts the prior values back. Callers defer the restore so the ambient
// configuration survives early returns and panics alike.
func Override(s Settings) (restore func()) {
	prev := current
	Set(s)
	return func() {
		current = prev
	}
}
