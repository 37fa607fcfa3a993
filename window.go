package exchange

import (
	"fmt"
	"time"
)

// DefaultWindow is the trailing duration over which the ticker price is
// averaged when the caller does not choose one.
const DefaultWindow = 15 * time.Minute

// Window represents an interval of time, boundaries included.
type Window struct{ From, To time.Time }

// NewWindow creates a new time window. If 'from' is after 'to', they are swapped.
func NewWindow(from, to time.Time) Window {
	if from.After(to) {
		from, to = to, from
	}
	return Window{From: from, To: to}
}

// TrailingWindow returns the window of the given duration ending at 'asOf'.
func TrailingWindow(asOf time.Time, d time.Duration) Window {
	return NewWindow(asOf.Add(-d), asOf)
}

// Contains returns true if the instant falls within the window (boundaries included).
func (w Window) Contains(t time.Time) bool { return !t.Before(w.From) && !t.After(w.To) }

// Duration returns the length of the window.
func (w Window) Duration() time.Duration { return w.To.Sub(w.From) }

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.From.Format(time.RFC3339), w.To.Format(time.RFC3339))
}
