package dht11

// RawFrame holds one symbol (0 or 1) per sampled pulse in reception order.
type RawFrame [Bits]byte

// Reading is the decoded frame: humidity integer, humidity fraction,
// temperature integer, temperature fraction, checksum.
type Reading [5]byte

// Assemble packs 40 symbols into five bytes, most significant bit first.
func Assemble(raw *RawFrame) Reading {
	var r Reading
	for i := range r {
		var b byte
		for j := 0; j < 8; j++ {
			b |= (raw[8*i+j] & 1) << (7 - j)
		}
		r[i] = b
	}
	return r
}

func (r Reading) Humidity() uint8     { return r[0] }
func (r Reading) HumidityFrac() uint8 { return r[1] }
func (r Reading) Celsius() uint8      { return r[2] }
func (r Reading) CelsiusFrac() uint8  { return r[3] }
func (r Reading) Checksum() uint8     { return r[4] }

// Sum is the low byte of the four data bytes added together.
func (r Reading) Sum() uint8 { return r[0] + r[1] + r[2] + r[3] }

// Valid reports whether the checksum byte matches Sum.
func (r Reading) Valid() bool { return r.Sum() == r[4] }

// FahrenheitTenths converts the integer Celsius part to tenths of a degree
// Fahrenheit with integer arithmetic: c*18 + 320.
func (r Reading) FahrenheitTenths() uint32 {
	return uint32(r.Celsius())*18 + 320
}
