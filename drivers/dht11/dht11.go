// Package dht11 reads a DHT11 temperature/humidity sensor over its
// single-wire protocol by pulse-width timing on a plain GPIO line.
//
//	r, ok := d.Acquire() // one full handshake + 40-bit frame
//
// Bits are told apart by one fixed-delay sample after each rising edge: a
// "0" pulse is high for ~26-28µs, a "1" pulse for ~70µs, so a sample taken
// between the two widths reads the bit directly. All waits are unbounded
// busy-polls; a sensor that stops answering hangs Acquire.
//
// Device also implements drivers.Sensor so it can sit behind code written
// for the TinyGo sensor drivers.
package dht11

import (
	"time"

	"dhtstation-go/errcode"
	"dhtstation-go/hal"
	"dhtstation-go/x/mathx"
	"dhtstation-go/x/timex"

	"tinygo.org/x/drivers"
)

// Bits is the frame length: five bytes, MSB first.
const Bits = 40

// Pulse-width classes emitted by the sensor. SampleDelay must sit strictly
// between them.
const (
	ZeroPulseMax = 28 * time.Microsecond
	OnePulseMin  = 70 * time.Microsecond
)

// Errors returned by the driver.
var (
	ErrChecksum = &errcode.E{C: errcode.ChecksumMismatch, Op: "dht11", Msg: "frame checksum mismatch"}
)

// Config controls timing. All fields are optional.
type Config struct {
	// StartPulse is how long the line is held low to wake the sensor.
	// Default 20ms (datasheet minimum 18ms).
	StartPulse time.Duration
	// SampleDelay is the wait after a rising edge before the bit is sampled.
	// Default 35µs.
	SampleDelay time.Duration
	// Wait is the delay primitive. Default timex.Delay.
	Wait timex.Wait
}

func (c Config) withDefaults() Config {
	c.StartPulse = mathx.Or(c.StartPulse, 20*time.Millisecond)
	c.SampleDelay = mathx.Or(c.SampleDelay, 35*time.Microsecond)
	c.Wait = timex.Or(c.Wait)
	return c
}

// Validate reports whether the config can decode a frame.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.StartPulse < 18*time.Millisecond {
		return &errcode.E{C: errcode.InvalidParams, Op: "dht11.Configure", Msg: "start pulse shorter than 18ms"}
	}
	if !mathx.StrictlyBetween(c.SampleDelay, ZeroPulseMax, OnePulseMin) {
		return &errcode.E{C: errcode.InvalidParams, Op: "dht11.Configure", Msg: "sample delay must sit between 28us and 70us"}
	}
	return nil
}

// ---- Acquisition state ----

// State is the position within one acquisition cycle.
type State uint8

const (
	StateIdle State = iota
	StateStartPulse
	StateAwaitAck
	StateSampling
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStartPulse:
		return "start_pulse"
	case StateAwaitAck:
		return "await_ack"
	case StateSampling:
		return "sampling"
	case StateDone:
		return "done"
	default:
		return "idle"
	}
}

// Device is a DHT11 on one GPIO line with an external pull-up.
type Device struct {
	pin hal.GPIOPin
	cfg Config

	state State
	bit   int
	raw   RawFrame
	last  Reading
	valid bool
}

var _ drivers.Sensor = (*Device)(nil)

// New creates a Device. It does not touch the line; call Configure.
func New(pin hal.GPIOPin) Device {
	return Device{pin: pin}
}

// Configure applies optional config and leaves the line released.
func (d *Device) Configure(cfgs ...Config) error {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if err := c.Validate(); err != nil {
		return err
	}
	d.cfg = c.withDefaults()
	d.state = StateIdle
	return d.pin.ConfigureInput(hal.PullNone)
}

// State returns the current acquisition state.
func (d *Device) State() State { return d.state }

// Acquire runs one full cycle: start pulse, ack handshake, 40 samples, and
// assembly. The returned Reading replaces the previous one even when ok is
// false; an invalid reading carries no usable data.
func (d *Device) Acquire() (r Reading, ok bool) {
	if d.cfg.Wait == nil {
		d.cfg = d.cfg.withDefaults()
	}
	d.startPulse()
	d.awaitAck()
	d.sample()

	d.state = StateDone
	d.last = Assemble(&d.raw)
	d.valid = d.last.Valid()
	return d.last, d.valid
}

func (d *Device) startPulse() {
	d.state = StateStartPulse
	_ = d.pin.ConfigureOutput(true)
	d.pin.Set(false)
	d.cfg.Wait(d.cfg.StartPulse)
	d.pin.Set(true)
	// External pull-up holds the line once released.
	_ = d.pin.ConfigureInput(hal.PullNone)
}

// awaitAck waits for the sensor's 80µs low then 80µs high response, and for
// the high half to end so sampling starts on the first bit's low period.
func (d *Device) awaitAck() {
	d.state = StateAwaitAck
	d.waitFor(false)
	d.waitFor(true)
	d.waitFor(false)
}

func (d *Device) sample() {
	d.state = StateSampling
	for d.bit = 0; d.bit < Bits; d.bit++ {
		d.waitFor(true)
		d.cfg.Wait(d.cfg.SampleDelay)
		if d.pin.Get() {
			d.raw[d.bit] = 1
		} else {
			d.raw[d.bit] = 0
		}
		d.waitFor(false)
	}
}

// waitFor blocks until the line reads level. No timeout.
func (d *Device) waitFor(level bool) {
	for d.pin.Get() != level {
	}
}

// ---- drivers.Sensor ----

// Update runs an acquisition when temperature or humidity is requested.
// ErrChecksum is returned for a corrupt frame.
func (d *Device) Update(which drivers.Measurement) error {
	if which&(drivers.Temperature|drivers.Humidity) == 0 {
		return nil
	}
	if _, ok := d.Acquire(); !ok {
		return ErrChecksum
	}
	return nil
}

// Last returns the most recent reading and its validity.
func (d *Device) Last() (Reading, bool) { return d.last, d.valid }

// Temperature returns the last valid temperature in milli-°C, 0 otherwise.
func (d *Device) Temperature() int32 {
	if !d.valid {
		return 0
	}
	return int32(d.last.Celsius())*1000 + int32(d.last.CelsiusFrac())*100
}

// Humidity returns the last valid relative humidity in hundredths of a
// percent, 0 otherwise.
func (d *Device) Humidity() int32 {
	if !d.valid {
		return 0
	}
	return int32(d.last.Humidity())*100 + int32(d.last.HumidityFrac())*10
}
