// cmd/station-sim/main.go
//
// Runs the station loop against simulated hardware with a scripted scenario
// (button taps, a corrupt frame, a bus fault) and prints what the display
// shows after every pass.
package main

import (
	"flag"
	"fmt"
	"os"

	"dhtstation-go/drivers/dht11"
	"dhtstation-go/drivers/lcd1602"
	"dhtstation-go/drivers/twi"
	"dhtstation-go/internal/logx"
	"dhtstation-go/internal/sim"
	"dhtstation-go/station"
)

// ---------- Scenario ----------

type step struct {
	forward, backward bool
	frame             *[5]byte
	busFaults         int
}

func frame(f [5]byte) *[5]byte { return &f }

var scenario = []step{
	{},
	{forward: true},
	{forward: true},
	{forward: true, frame: frame(sim.ValidFrame(60, 0, 30, 0))},
	{frame: frame([5]byte{60, 0, 30, 0, 0})},
	{frame: frame(sim.ValidFrame(60, 0, 30, 0))},
	{backward: true},
	{backward: true, busFaults: 2},
	{forward: true},
}

func main() {
	passes := flag.Int("passes", len(scenario), "number of loop passes to run")
	hum := flag.Uint("humidity", 45, "initial humidity (%RH)")
	temp := flag.Uint("temp", 23, "initial temperature (°C)")
	flag.Parse()

	clock := sim.NewClock()
	ctrl := sim.NewController()
	lcd := sim.NewLCD()
	ctrl.Attach(lcd1602.Address, lcd)
	line := sim.NewDHT(clock, 15, sim.ValidFrame(byte(*hum), 0, byte(*temp), 0))
	fwd := sim.NewButton(clock, 14)
	back := sim.NewButton(clock, 13)

	disp := lcd1602.New(twi.NewMaster(ctrl))
	disp.Configure(lcd1602.Config{Wait: clock.Wait})
	sensor := dht11.New(line)
	if err := sensor.Configure(dht11.Config{Wait: clock.Wait}); err != nil {
		fmt.Fprintln(os.Stderr, "sensor:", err)
		os.Exit(1)
	}
	st := station.New(&sensor, &disp, fwd, back, logx.New(os.Stdout), station.Config{Wait: clock.Wait})

	for i := 0; i < *passes; i++ {
		if i < len(scenario) {
			s := scenario[i]
			if s.forward {
				fwd.Tap()
			}
			if s.backward {
				back.Tap()
			}
			if s.frame != nil {
				line.SetFrame(*s.frame)
			}
			if s.busFaults > 0 {
				ctrl.FailNext(s.busFaults)
			}
		}
		st.Step()
		fmt.Printf("pass=%d t=%v view=%d lcd=%q\n", i+1, clock.Now(), st.View(), lcd.Text())
	}
}
