package sim

import (
	"time"

	"dhtstation-go/hal"
)

// DHT11 response timing.
const (
	minStartPulse = 18 * time.Millisecond
	respDelay     = 30 * time.Microsecond
	ackLow        = 80 * time.Microsecond
	ackHigh       = 80 * time.Microsecond
	bitLow        = 50 * time.Microsecond
	zeroHigh      = 26 * time.Microsecond
	oneHigh       = 70 * time.Microsecond
)

type segment struct {
	level bool
	dur   time.Duration
}

// DHT is a sensor line. The host drives it low for at least 18ms, releases it,
// and the model answers with the ack and the 40-bit frame set by SetFrame.
type DHT struct {
	clock *Clock
	pin   int
	frame [5]byte

	output   bool
	driven   bool
	lowSince time.Duration
	lastLow  time.Duration

	wave       []segment
	releasedAt time.Duration

	// Responses counts completed start handshakes.
	Responses int
}

var _ hal.GPIOPin = (*DHT)(nil)

func NewDHT(c *Clock, pin int, frame [5]byte) *DHT {
	return &DHT{clock: c, pin: pin, frame: frame, driven: true}
}

// SetFrame replaces the bytes sent on the next handshake.
func (d *DHT) SetFrame(f [5]byte) { d.frame = f }

// ValidFrame builds a frame with the correct checksum.
func ValidFrame(hum, humFrac, temp, tempFrac byte) [5]byte {
	return [5]byte{hum, humFrac, temp, tempFrac, hum + humFrac + temp + tempFrac}
}

func (d *DHT) Number() int { return d.pin }

func (d *DHT) ConfigureOutput(initial bool) error {
	d.output = true
	d.wave = nil
	d.lastLow = 0
	d.Set(initial)
	return nil
}

func (d *DHT) ConfigureInput(_ hal.Pull) error {
	pulse := d.lastLow
	if !d.driven {
		pulse = d.clock.Now() - d.lowSince
	}
	if d.output && pulse >= minStartPulse {
		d.wave = waveform(d.frame)
		d.releasedAt = d.clock.Now()
		d.Responses++
	}
	d.output = false
	return nil
}

func (d *DHT) Set(level bool) {
	if !d.output {
		return
	}
	switch {
	case d.driven && !level:
		d.lowSince = d.clock.Now()
	case !d.driven && level:
		d.lastLow = d.clock.Now() - d.lowSince
	}
	d.driven = level
}

func (d *DHT) Get() bool {
	d.clock.Advance(PollCost)
	if d.output {
		return d.driven
	}
	t := d.clock.Now() - d.releasedAt
	for _, s := range d.wave {
		if t < s.dur {
			return s.level
		}
		t -= s.dur
	}
	// Idle: external pull-up.
	return true
}

func waveform(f [5]byte) []segment {
	w := make([]segment, 0, 3+2*40+1)
	w = append(w,
		segment{true, respDelay},
		segment{false, ackLow},
		segment{true, ackHigh},
	)
	for _, b := range f {
		for j := 7; j >= 0; j-- {
			high := zeroHigh
			if b&(1<<j) != 0 {
				high = oneHigh
			}
			w = append(w, segment{false, bitLow}, segment{true, high})
		}
	}
	return append(w, segment{false, bitLow})
}
