// Package lcd1602 drives an HD44780 character display through a PCF8574 I²C
// backpack (RS=P0, RW=P1, E=P2, backlight=P3, D4..D7=P4..P7).
//
// Every nibble is two bus writes: once with the enable strobe set and once
// with it clear, each followed by a settle delay. The display is write-only,
// so RW is always low.
//
// Configure must run before any other method; until then the device sends
// nothing.
//
// Bus failures are not returned to callers. They are counted and exposed via
// Nacks so a caller can report them without the display path stopping.
package lcd1602

import (
	"time"

	"dhtstation-go/x/timex"

	"tinygo.org/x/drivers"
)

// Address is the usual PCF8574 backpack address (A0..A2 high).
const Address = 0x27

// Expander bits.
const (
	flagRS        = 0x01
	flagRW        = 0x02 // never set
	flagEnable    = 0x04
	flagBacklight = 0x08
)

// HD44780 instructions used by the driver.
const (
	CmdClear       = 0x01
	CmdEntryMode   = 0x06 // increment, no shift
	CmdDisplayOn   = 0x0C // display on, cursor off, blink off
	CmdFunctionSet = 0x28 // 4-bit, 2 lines, 5x8 font
	CmdLine1       = 0x80 // DDRAM address 0

	modeEightBit = 0x30
	modeFourBit  = 0x20
)

// Config controls timing and addressing. All fields are optional.
type Config struct {
	// Address defaults to 0x27 if zero.
	Address uint16
	// BacklightOff leaves the backlight bit clear on every write.
	BacklightOff bool
	// NibbleSettle follows each of the two writes of a nibble. Default 50µs.
	NibbleSettle time.Duration
	// CommandSettle follows each instruction; long enough for clear/home.
	// Default 2ms.
	CommandSettle time.Duration
	// DataSettle follows each character. Default 100µs.
	DataSettle time.Duration
	// PowerOn is waited before the init sequence. Default 50ms.
	PowerOn time.Duration
	// Wait is the delay primitive. Default timex.Delay.
	Wait timex.Wait
}

// Device wraps an I2C connection to the backpack.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg        Config
	configured bool
	flags      byte
	nacks      uint32
	buf        [1]byte
}

// New creates a new display connection. The I2C bus must already be
// configured. It does not touch the device; call Configure.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
		flags:   flagBacklight,
	}
}

// Configure applies optional config and runs the init sequence.
func (d *Device) Configure(cfgs ...Config) {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.Address = c.Address
	}
	if c.NibbleSettle <= 0 {
		c.NibbleSettle = 50 * time.Microsecond
	}
	if c.CommandSettle <= 0 {
		c.CommandSettle = 2 * time.Millisecond
	}
	if c.DataSettle <= 0 {
		c.DataSettle = 100 * time.Microsecond
	}
	if c.PowerOn <= 0 {
		c.PowerOn = 50 * time.Millisecond
	}
	c.Wait = timex.Or(c.Wait)
	d.flags = flagBacklight
	if c.BacklightOff {
		d.flags = 0
	}
	d.cfg = c
	d.configured = true
	d.Init()
}

// Init forces the controller into 4-bit mode and sets it up for two lines,
// display on, cursor off, left-to-right entry, cleared. The controller may
// be in 8-bit mode or mid-way through a 4-bit pair, so it is first sent three
// 8-bit function sets; only after the 4-bit mode nibble does it accept paired
// nibbles.
func (d *Device) Init() {
	if !d.configured {
		return
	}
	w := d.cfg.Wait
	w(d.cfg.PowerOn)
	d.pulse(modeEightBit, false)
	w(5 * time.Millisecond)
	d.pulse(modeEightBit, false)
	w(time.Millisecond)
	d.pulse(modeEightBit, false)
	w(200 * time.Microsecond)
	d.pulse(modeFourBit, false)
	w(200 * time.Microsecond)

	d.Command(CmdFunctionSet)
	d.Command(CmdDisplayOn)
	d.Command(CmdEntryMode)
	d.Command(CmdClear)
	w(5 * time.Millisecond)
}

// Command sends one instruction byte, high nibble first.
func (d *Device) Command(cmd byte) {
	if !d.configured {
		return
	}
	d.pulse(cmd&0xF0, false)
	d.pulse(cmd<<4, false)
	d.cfg.Wait(d.cfg.CommandSettle)
}

// Data sends one character byte with register-select set.
func (d *Device) Data(b byte) {
	if !d.configured {
		return
	}
	d.pulse(b&0xF0, true)
	d.pulse(b<<4, true)
	d.cfg.Wait(d.cfg.DataSettle)
}

// WriteString sends s byte by byte from the current cursor position. There
// is no wrapping; the controller's own address auto-increment applies.
func (d *Device) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		d.Data(s[i])
	}
}

// Write implements io.Writer over Data.
func (d *Device) Write(p []byte) (int, error) {
	for _, b := range p {
		d.Data(b)
	}
	return len(p), nil
}

func (d *Device) Clear() { d.Command(CmdClear) }

// Home moves the cursor to the first line origin without clearing.
func (d *Device) Home() { d.Command(CmdLine1) }

// Nacks returns the number of bus writes that failed since New.
func (d *Device) Nacks() uint32 { return d.nacks }

// pulse strobes the upper four bits of nibble into the controller.
func (d *Device) pulse(nibble byte, rs bool) {
	b := nibble&0xF0 | d.flags
	if rs {
		b |= flagRS
	}
	d.write(b | flagEnable)
	d.cfg.Wait(d.cfg.NibbleSettle)
	d.write(b)
	d.cfg.Wait(d.cfg.NibbleSettle)
}

func (d *Device) write(b byte) {
	d.buf[0] = b
	if err := d.bus.Tx(d.Address, d.buf[:], nil); err != nil {
		d.nacks++
	}
}
