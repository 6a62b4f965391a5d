package station

import (
	"dhtstation-go/drivers/dht11"
	"dhtstation-go/x/conv"
	"dhtstation-go/x/mathx"
)

// View selects what the display shows.
type View uint8

const (
	ViewSummary View = iota
	ViewCelsius
	ViewHumidity
	ViewFahrenheit

	viewCount
)

// Fixed display strings.
const (
	textSummary  = "Medicoes:"
	textChecksum = "Checksum erro"
)

// Display is the part of the character display the views need.
type Display interface {
	Clear()
	Home()
	WriteString(s string)
}

// Views is the cyclic view selector driven by the forward/backward buttons.
type Views struct {
	disp     Display
	forward  Button
	backward Button

	index View
	buf   [20]byte
}

// NewViews starts at ViewSummary.
func NewViews(disp Display, forward, backward Button) Views {
	return Views{disp: disp, forward: forward, backward: backward}
}

func (v *Views) Index() View { return v.index }

// Next advances the index and clears the display.
func (v *Views) Next() {
	v.index = mathx.Next(v.index, viewCount)
	v.disp.Clear()
}

// Prev steps the index back, wrapping from the first view to the last, and
// clears the display.
func (v *Views) Prev() {
	v.index = mathx.Prev(v.index, viewCount)
	v.disp.Clear()
}

// Poll handles at most one button edge per call. Forward is checked first;
// backward is only looked at when forward is not pressed. A handled press is
// debounced, applied, then held until release so a held button does not
// repeat. It reports whether the index changed.
func (v *Views) Poll() bool {
	switch {
	case v.forward.Pressed():
		v.forward.Debounce()
		v.Next()
		v.forward.AwaitRelease()
	case v.backward.Pressed():
		v.backward.Debounce()
		v.Prev()
		v.backward.AwaitRelease()
	default:
		return false
	}
	return true
}

// Render moves to the first line origin and writes the active view. An
// invalid reading shows the checksum error instead of any view.
func (v *Views) Render(r dht11.Reading, valid bool) {
	v.disp.Home()
	v.disp.WriteString(string(v.appendText(v.buf[:0], r, valid)))
}

// Text returns what Render would write.
func (v *Views) Text(r dht11.Reading, valid bool) string {
	return string(v.appendText(v.buf[:0], r, valid))
}

func (v *Views) appendText(b []byte, r dht11.Reading, valid bool) []byte {
	if !valid {
		return append(b, textChecksum...)
	}
	switch v.index {
	case ViewCelsius:
		b = append(b, "Temp: "...)
		b = conv.AppendUint(b, uint64(r.Celsius()))
		return append(b, " C"...)
	case ViewHumidity:
		b = append(b, "Umid: "...)
		b = conv.AppendUint(b, uint64(r.Humidity()))
		return append(b, " %"...)
	case ViewFahrenheit:
		b = append(b, "Temp: "...)
		b = conv.AppendTenths(b, r.FahrenheitTenths())
		return append(b, 'F')
	default:
		return append(b, textSummary...)
	}
}
