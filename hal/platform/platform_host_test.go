//go:build !rp2040 && !rp2350

package platform

import (
	"bytes"
	"strings"
	"testing"

	"dhtstation-go/drivers/dht11"
	"dhtstation-go/drivers/lcd1602"
	"dhtstation-go/hal/boards"
	"dhtstation-go/internal/logx"
	"dhtstation-go/station"
)

func TestOpenSimRunsStation(t *testing.T) {
	var out bytes.Buffer
	hw, err := openSim(boards.PicoDefault, &out, false)
	if err != nil {
		t.Fatalf("openSim: %v", err)
	}
	disp := lcd1602.New(hw.I2C)
	disp.Configure(lcd1602.Config{Address: boards.PicoDefault.LCDAddress, Wait: hw.Wait})
	sensor := dht11.New(hw.DHT)
	if err := sensor.Configure(dht11.Config{Wait: hw.Wait}); err != nil {
		t.Fatalf("sensor Configure: %v", err)
	}
	st := station.New(&sensor, &disp, hw.Forward, hw.Backward, logx.New(hw.Log), station.Config{Wait: hw.Wait})
	st.Step()
	st.Step()

	if r, ok := st.Reading(); !ok || r.Celsius() != 23 || r.Humidity() != 45 {
		t.Fatalf("reading = %v ok=%v", r, ok)
	}
	if n := strings.Count(out.String(), "lcd text=Medicoes:\n"); n != 1 {
		t.Fatalf("lcd change logged %d times, want once; log %q", n, out.String())
	}
	if hw.DHT.Number() != boards.PicoDefault.DHTPin {
		t.Fatalf("dht pin = %d", hw.DHT.Number())
	}
}
