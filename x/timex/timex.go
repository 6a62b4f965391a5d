package timex

import "time"

// Wait blocks the caller for approximately d.
type Wait func(d time.Duration)

// spinBelow is the cutoff under which Delay spins instead of sleeping. TinyGo
// rounds time.Sleep up to its scheduler tick, which is far coarser than the
// pulse widths the sensor and display need.
const spinBelow = time.Millisecond

// BusyWait spins on the monotonic clock until d has elapsed. It never yields.
func BusyWait(d time.Duration) {
	if d <= 0 {
		return
	}
	end := time.Now().Add(d)
	for time.Now().Before(end) {
	}
}

// Delay spins for sub-millisecond waits and sleeps otherwise.
func Delay(d time.Duration) {
	if d < spinBelow {
		BusyWait(d)
		return
	}
	time.Sleep(d)
}

// Or returns w, or Delay when w is nil.
func Or(w Wait) Wait {
	if w == nil {
		return Delay
	}
	return w
}
