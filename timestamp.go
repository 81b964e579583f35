package plot2d

import "sync/atomic"

// timeCounter is the process-global modification counter. Every call to
// TimeStamp.Modified draws a fresh value from it, so timestamps taken
// anywhere in the library are totally ordered.
var timeCounter atomic.Uint64

// TimeStamp records a point in the global modification order. The zero
// value is older than any recorded timestamp. Actors compare input,
// style, and viewport timestamps against their last build time to decide
// whether cached geometry is stale.
type TimeStamp struct {
	value uint64
}

// Modified records a new timestamp strictly greater than every timestamp
// recorded before it, in any TimeStamp in the process.
func (t *TimeStamp) Modified() {
	t.value = timeCounter.Add(1)
}

// Value returns the raw counter value, 0 if never modified.
func (t TimeStamp) Value() uint64 { return t.value }

// After reports whether t was recorded after o.
func (t TimeStamp) After(o TimeStamp) bool { return t.value > o.value }

// maxTime returns the later of two timestamps.
func maxTime(a, b TimeStamp) TimeStamp {
	if a.After(b) {
		return a
	}
	return b
}
