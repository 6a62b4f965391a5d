//go:build rp2040 || rp2350

package platform

import (
	"device/rp"
	"machine"

	"dhtstation-go/drivers/twi"
	"dhtstation-go/errcode"
	"dhtstation-go/hal"
	"dhtstation-go/hal/boards"
	"dhtstation-go/x/timex"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Open configures I2C0 and UART0 for b and returns machine-backed pins. The
// display bus is a twi.Master polling the I2C0 registers directly;
// machine.I2C0 is only used to set up pins and bus speed.
func Open(b boards.Board) (Hardware, error) {
	log := uartx.UART0
	if err := log.Configure(uartx.UARTConfig{
		BaudRate: b.LogBaud,
		TX:       machine.Pin(b.LogTX),
		RX:       machine.Pin(b.LogRX),
	}); err != nil {
		return Hardware{}, &errcode.E{C: errcode.Error, Op: "platform.Open", Msg: "uart0 configure", Err: err}
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: b.I2CHz,
		SDA:       machine.Pin(b.SDAPin),
		SCL:       machine.Pin(b.SCLPin),
	}); err != nil {
		return Hardware{}, &errcode.E{C: errcode.Error, Op: "platform.Open", Msg: "i2c0 configure", Err: err}
	}

	pins := DefaultPinFactory()
	get := func(n int) (hal.GPIOPin, error) {
		p, ok := pins.ByNumber(n)
		if !ok {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "platform.Open", Msg: "pin out of range"}
		}
		return p, nil
	}
	dht, err := get(b.DHTPin)
	if err != nil {
		return Hardware{}, err
	}
	fwd, err := get(b.ForwardPin)
	if err != nil {
		return Hardware{}, err
	}
	back, err := get(b.BackwardPin)
	if err != nil {
		return Hardware{}, err
	}

	return Hardware{
		I2C:      twi.NewMaster(newRP2TWI(rp.I2C0)),
		DHT:      dht,
		Forward:  fwd,
		Backward: back,
		Log:      log,
		Wait:     timex.Delay,
	}, nil
}

// DefaultPinFactory maps logical numbers directly to machine.Pin(n), matching
// Pico GP numbering.
func DefaultPinFactory() hal.PinFactory { return rp2PinFactory{} }

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull hal.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }
