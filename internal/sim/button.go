package sim

import "dhtstation-go/hal"

// Button is an active-low push button with a pull-up: Get is false while
// pressed. A tap holds the button for a fixed number of reads so code that
// waits for release terminates.
type Button struct {
	clock *Clock
	pin   int
	hold  int
	Reads int
}

var _ hal.GPIOPin = (*Button)(nil)

// TapReads is how many reads a Tap stays pressed for.
const TapReads = 4

func NewButton(c *Clock, pin int) *Button { return &Button{clock: c, pin: pin} }

// Tap presses the button for the next TapReads reads.
func (b *Button) Tap() { b.hold = TapReads }

func (b *Button) Pressed() bool { return b.hold > 0 }

func (b *Button) ConfigureInput(hal.Pull) error { return nil }
func (b *Button) ConfigureOutput(bool) error    { return nil }
func (b *Button) Set(bool)                      {}
func (b *Button) Number() int                   { return b.pin }

func (b *Button) Get() bool {
	b.clock.Advance(PollCost)
	b.Reads++
	if b.hold > 0 {
		b.hold--
		return false
	}
	return true
}
