//go:build !tinygo

package hal

import "time"

// tickPeriod is the host time represented by one Time tick.
const tickPeriod = time.Millisecond

// hostTime converts wall-clock time between steps into ticks. Ticks that
// find the channel full are dropped.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
	now  func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks elapsed since the previous call. The first call emits
// n ticks to start the stream.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.emit(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now
	if ticks := uint64(t.acc / tickPeriod); ticks > 0 {
		t.acc %= tickPeriod
		t.emit(ticks)
	}
}

func (t *hostTime) emit(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
