package engine

import "time"

// DebounceDelay is how long filter inputs settle before recomputing.
const DebounceDelay = 200 * time.Millisecond

// Debouncer issues tokens for deferred filter applies with a last-write-wins
// guarantee: only the token from the most recent keystroke is still current
// when its timer fires, so an earlier timer resolving late can never
// overwrite a newer value.
type Debouncer struct {
	seq   uint64
	delay time.Duration
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Arm invalidates all outstanding tokens and returns a fresh one.
func (d *Debouncer) Arm() uint64 {
	d.seq++
	return d.seq
}

// Current reports whether token is still the latest armed one.
func (d *Debouncer) Current(token uint64) bool { return token == d.seq }

func (d *Debouncer) Delay() time.Duration { return d.delay }
