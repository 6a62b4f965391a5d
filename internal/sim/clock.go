// Package sim models the station's hardware on the host: a DHT11 on a GPIO
// line, a polled two-wire controller with a PCF8574+HD44780 display attached,
// and push buttons. Everything runs on a virtual microsecond clock so the
// timing-dependent drivers can be exercised without real delays.
package sim

import "time"

// PollCost is how far the clock advances on every line read. It stands in for
// the instruction time of one iteration of a busy-poll loop.
const PollCost = time.Microsecond

// Clock is a virtual monotonic clock.
type Clock struct {
	now time.Duration
}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) Now() time.Duration { return c.now }

func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Wait matches timex.Wait; it advances the clock instead of blocking.
func (c *Clock) Wait(d time.Duration) { c.Advance(d) }
