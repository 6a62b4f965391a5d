//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"
	"time"

	"dhtstation-go/drivers/twi"
	"dhtstation-go/hal/boards"
	"dhtstation-go/internal/logx"
	"dhtstation-go/internal/sim"
)

// hostFrame is what the simulated sensor reports: 45%RH, 23°C.
var hostFrame = sim.ValidFrame(45, 0, 23, 0)

// Open builds simulated hardware wired as b describes. The display's first
// line is logged when it differs at the next instruction; buttons stay
// released.
func Open(b boards.Board) (Hardware, error) {
	return openSim(b, os.Stdout, true)
}

// openSim with pace set also sleeps in real time for waits of a millisecond
// or more, so the loop runs at roughly its device rate.
func openSim(b boards.Board, w io.Writer, pace bool) (Hardware, error) {
	clock := sim.NewClock()
	ctrl := sim.NewController()
	lcd := sim.NewLCD()
	ctrl.Attach(uint8(b.LCDAddress), lcd)

	log := logx.New(w)
	shown := ""
	lcd.OnCommand = func(l *sim.LCD) {
		if t := l.Text(); t != shown {
			shown = t
			log.Log("lcd", logx.Str("text", t))
		}
	}

	return Hardware{
		I2C:      twi.NewMaster(ctrl),
		DHT:      sim.NewDHT(clock, b.DHTPin, hostFrame),
		Forward:  sim.NewButton(clock, b.ForwardPin),
		Backward: sim.NewButton(clock, b.BackwardPin),
		Log:      w,
		Wait: func(d time.Duration) {
			clock.Wait(d)
			if pace && d >= time.Millisecond {
				time.Sleep(d)
			}
		},
	}, nil
}
