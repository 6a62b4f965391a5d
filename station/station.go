// Package station is the acquisition/display loop: read the sensor, handle
// view buttons, render the selected view, wait, repeat. One pass runs to
// completion before the next begins; every wait inside a pass is blocking.
package station

import (
	"context"
	"time"

	"dhtstation-go/drivers/dht11"
	"dhtstation-go/errcode"
	"dhtstation-go/hal"
	"dhtstation-go/internal/logx"
	"dhtstation-go/x/timex"
)

// Sensor produces one fresh reading per call.
type Sensor interface {
	Acquire() (dht11.Reading, bool)
}

// NackCounter is implemented by displays that count failed bus writes.
type NackCounter interface {
	Nacks() uint32
}

// Config controls loop timing. All fields are optional.
type Config struct {
	// Debounce is waited after a press is first seen. Default 5ms.
	Debounce time.Duration
	// Interval is waited at the end of every pass. Default 200ms.
	Interval time.Duration
	// Wait is the delay primitive. Default timex.Delay.
	Wait timex.Wait
}

// Station owns the view state and the latest reading.
type Station struct {
	sensor Sensor
	disp   Display
	views  Views
	log    *logx.Logger
	cfg    Config

	last  dht11.Reading
	valid bool
	pass  uint64
	nacks uint32
}

// New wires the loop. forward and backward are configured as pulled-up
// inputs. log may be nil.
func New(sensor Sensor, disp Display, forward, backward hal.GPIOPin, log *logx.Logger, cfgs ...Config) *Station {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Debounce <= 0 {
		c.Debounce = 5 * time.Millisecond
	}
	if c.Interval <= 0 {
		c.Interval = 200 * time.Millisecond
	}
	c.Wait = timex.Or(c.Wait)

	return &Station{
		sensor: sensor,
		disp:   disp,
		views: NewViews(disp,
			NewButton(forward, c.Debounce, c.Wait),
			NewButton(backward, c.Debounce, c.Wait)),
		log: log,
		cfg: c,
	}
}

// Step runs one pass: acquire, poll buttons, render, report bus faults, wait.
func (s *Station) Step() {
	s.pass++

	r, ok := s.sensor.Acquire()
	s.last, s.valid = r, ok
	if !ok {
		s.log.Log(string(errcode.ChecksumMismatch), logx.Uint("pass", s.pass), logx.Hex("raw", r[:]))
	}

	if s.views.Poll() {
		s.log.Log("view", logx.Uint("index", uint64(s.views.Index())))
	}

	s.views.Render(r, ok)
	s.reportNacks()

	s.cfg.Wait(s.cfg.Interval)
}

// Run repeats Step until ctx is done. ctx is checked between passes only.
func (s *Station) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Step()
	}
}

// reportNacks logs when the display's failed-write count has grown.
func (s *Station) reportNacks() {
	nc, ok := s.disp.(NackCounter)
	if !ok {
		return
	}
	n := nc.Nacks()
	if n == s.nacks {
		return
	}
	s.log.Log(string(errcode.BusNack), logx.Uint("count", uint64(n)), logx.Uint("new", uint64(n-s.nacks)))
	s.nacks = n
}

// Reading returns the reading from the last pass and its validity.
func (s *Station) Reading() (dht11.Reading, bool) { return s.last, s.valid }

// View returns the selected view.
func (s *Station) View() View { return s.views.Index() }

// Text returns what the last pass rendered.
func (s *Station) Text() string { return s.views.Text(s.last, s.valid) }

// Passes returns the number of completed or started passes.
func (s *Station) Passes() uint64 { return s.pass }
