package flow

import "time"

const (
	// PulseInitialVisible is how many events show when the screen opens.
	PulseInitialVisible = 2
	// PulseInterval is the default delay between reveals.
	PulseInterval = 1500 * time.Millisecond
)

// Revealer exposes a growing prefix of a fixed event log. It holds no timer;
// the caller fires Advance on its own schedule.
type Revealer struct {
	visible int
	total   int
}

// NewRevealer starts with min(PulseInitialVisible, total) events visible.
func NewRevealer(total int) Revealer {
	if total < 0 {
		total = 0
	}
	return Revealer{visible: min(PulseInitialVisible, total), total: total}
}

func (r Revealer) Visible() int { return r.visible }

func (r Revealer) Total() int { return r.total }

// Done reports whether every event is visible.
func (r Revealer) Done() bool { return r.visible >= r.total }

// Advance reveals one more event. It returns false once the log is exhausted.
func (r *Revealer) Advance() bool {
	if r.Done() {
		return false
	}
	r.visible++
	return true
}
