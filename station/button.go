package station

import (
	"time"

	"dhtstation-go/hal"
	"dhtstation-go/x/timex"
)

// Button is an active-low push button on a pulled-up input: pressed reads
// low.
type Button struct {
	pin      hal.GPIOPin
	debounce time.Duration
	wait     timex.Wait
}

// NewButton configures pin as a pulled-up input.
func NewButton(pin hal.GPIOPin, debounce time.Duration, wait timex.Wait) Button {
	_ = pin.ConfigureInput(hal.PullUp)
	return Button{pin: pin, debounce: debounce, wait: timex.Or(wait)}
}

func (b Button) Pressed() bool { return !b.pin.Get() }

// Debounce waits out contact bounce after a press was first seen.
func (b Button) Debounce() { b.wait(b.debounce) }

// AwaitRelease blocks until the button reads released. No timeout.
func (b Button) AwaitRelease() {
	for b.Pressed() {
	}
}
