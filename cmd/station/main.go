// cmd/station/main.go
package main

import (
	"context"
	"time"

	"dhtstation-go/drivers/dht11"
	"dhtstation-go/drivers/lcd1602"
	"dhtstation-go/errcode"
	"dhtstation-go/hal/boards"
	"dhtstation-go/hal/platform"
	"dhtstation-go/internal/logx"
	"dhtstation-go/station"
)

func main() {
	// Allow USB CDC / the UART adapter to settle before we print.
	time.Sleep(time.Second)

	b := boards.Selected
	hw, err := platform.Open(b)
	if err != nil {
		println("platform open failed:", err.Error())
		halt()
	}
	log := logx.New(hw.Log)
	log.Log("boot", logx.Str("board", b.Name), logx.Uint("lcd_addr", uint64(b.LCDAddress)))

	disp := lcd1602.New(hw.I2C)
	disp.Configure(lcd1602.Config{Address: b.LCDAddress, Wait: hw.Wait})

	sensor := dht11.New(hw.DHT)
	if err := sensor.Configure(dht11.Config{Wait: hw.Wait}); err != nil {
		log.Log("config_error", logx.Str("code", string(errcode.Of(err))), logx.Str("err", err.Error()))
		halt()
	}

	st := station.New(&sensor, &disp, hw.Forward, hw.Backward, log, station.Config{Wait: hw.Wait})
	_ = st.Run(context.Background())
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
