package metrics

import "fmt"

// Window identifies an aggregation period anchored at evaluation time.
type Window int

const (
	WindowToday Window = iota
	WindowMonth
	WindowPast3Months
	WindowYear
)

// Windows lists every window in display order.
var Windows = []Window{WindowToday, WindowMonth, WindowPast3Months, WindowYear}

func (w Window) String() string {
	switch w {
	case WindowToday:
		return "today"
	case WindowMonth:
		return "month"
	case WindowPast3Months:
		return "3mo"
	case WindowYear:
		return "ytd"
	}
	return "unknown"
}

// Title returns the human-readable window name.
func (w Window) Title() string {
	switch w {
	case WindowToday:
		return "Today"
	case WindowMonth:
		return "Current Month"
	case WindowPast3Months:
		return "Past 3 Months"
	case WindowYear:
		return "Year to Date"
	}
	return "Unknown"
}

// Months returns the trailing month count for multi-month windows, 0
// otherwise.
func (w Window) Months() int {
	switch w {
	case WindowPast3Months:
		return 3
	case WindowYear:
		return 12
	}
	return 0
}

// ParseWindow parses a window flag value.
func ParseWindow(s string) (Window, error) {
	for _, w := range Windows {
		if w.String() == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown window %q (want today, month, 3mo, or ytd)", s)
}
