package dht11

import "testing"

func TestAssembleMSBFirst(t *testing.T) {
	var raw RawFrame
	copy(raw[:], []byte{
		1, 0, 1, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 1, 1, 0, 0,
	})
	r := Assemble(&raw)
	if r[0] != 0xA0 {
		t.Fatalf("byte 0 = 0x%02X, want 0xA0", r[0])
	}
	if r[1] != 0x2C {
		t.Fatalf("byte 1 = 0x%02X, want 0x2C", r[1])
	}
	if r[2] != 0 || r[3] != 0 || r[4] != 0 {
		t.Fatalf("trailing bytes = %v, want zero", r[2:])
	}
}

func TestAssembleRoundTripsBytes(t *testing.T) {
	want := Reading{45, 0, 23, 0, 68}
	var raw RawFrame
	for i, b := range want {
		for j := 0; j < 8; j++ {
			raw[8*i+j] = (b >> (7 - j)) & 1
		}
	}
	if got := Assemble(&raw); got != want {
		t.Fatalf("Assemble = %v, want %v", got, want)
	}
}

func TestChecksumLaw(t *testing.T) {
	// Sweep a spread of data bytes including values that overflow the sum.
	vals := []byte{0, 1, 23, 45, 99, 127, 128, 200, 255}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				for _, d := range vals {
					sum := a + b + c + d
					r := Reading{a, b, c, d, sum}
					if !r.Valid() {
						t.Fatalf("%v reported invalid", r)
					}
					r[4] = sum + 1
					if r.Valid() {
						t.Fatalf("%v reported valid", r)
					}
				}
			}
		}
	}
}

func TestAccessorsAndFahrenheit(t *testing.T) {
	r := Reading{45, 1, 23, 4, 73}
	if r.Humidity() != 45 || r.HumidityFrac() != 1 || r.Celsius() != 23 || r.CelsiusFrac() != 4 || r.Checksum() != 73 {
		t.Fatalf("accessors disagree with %v", r)
	}
	for _, c := range []struct {
		celsius byte
		want    uint32
	}{
		{25, 770},
		{0, 320},
		{23, 734},
		{50, 1220},
	} {
		if got := (Reading{2: c.celsius}).FahrenheitTenths(); got != c.want {
			t.Fatalf("FahrenheitTenths(%d) = %d, want %d", c.celsius, got, c.want)
		}
	}
}
