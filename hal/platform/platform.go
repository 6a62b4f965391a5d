// Package platform builds the station's hardware for the current target:
// machine pins, I2C0 and a UART log on RP2 builds, simulated hardware
// everywhere else.
package platform

import (
	"io"

	"dhtstation-go/hal"
	"dhtstation-go/x/timex"

	"tinygo.org/x/drivers"
)

// Hardware is everything the station loop needs from the board.
type Hardware struct {
	I2C      drivers.I2C
	DHT      hal.GPIOPin
	Forward  hal.GPIOPin
	Backward hal.GPIOPin
	Log      io.Writer
	Wait     timex.Wait
}
