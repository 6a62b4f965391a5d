package sim

// PCF8574 backpack bit assignment.
const (
	bitRS        = 0x01
	bitRW        = 0x02
	bitEnable    = 0x04
	bitBacklight = 0x08
)

const (
	ddramSize = 0x68
	cols      = 16
)

// LCD models an HD44780 behind a PCF8574 expander. The controller latches the
// upper four expander bits on the falling edge of enable. It powers up in
// 8-bit mode; a 0x2_ nibble in 8-bit mode switches it to 4-bit framing, after
// which nibbles pair up high-then-low.
type LCD struct {
	last byte

	fourBit   bool
	haveHigh  bool
	high      byte
	addr      int
	ddram     [ddramSize]byte
	displayOn bool
	lines2    bool

	// Writes counts raw expander bytes received.
	Writes int
	// Commands and Data record decoded instructions in arrival order.
	Commands []byte
	Data     []byte
	// OnCommand, if set, is called after every instruction. A cursor-home
	// is issued before each redraw, so this sees completed frames.
	OnCommand func(l *LCD)
}

func NewLCD() *LCD {
	l := &LCD{}
	l.clear()
	return l
}

// Receive implements Peripheral.
func (l *LCD) Receive(b byte) {
	l.Writes++
	prev := l.last
	l.last = b
	if prev&bitEnable != 0 && b&bitEnable == 0 && b&bitRW == 0 {
		l.latch(prev>>4, prev&bitRS != 0)
	}
}

func (l *LCD) latch(nibble byte, rs bool) {
	if !l.fourBit {
		// Only D4..D7 are wired; the low nibble reads as zero.
		l.exec(nibble<<4, rs)
		return
	}
	if !l.haveHigh {
		l.high = nibble
		l.haveHigh = true
		return
	}
	l.haveHigh = false
	l.exec(l.high<<4|nibble, rs)
}

func (l *LCD) exec(v byte, rs bool) {
	if rs {
		l.Data = append(l.Data, v)
		l.ddram[l.addr] = v
		l.addr = (l.addr + 1) % ddramSize
		return
	}
	l.Commands = append(l.Commands, v)
	if l.OnCommand != nil {
		defer l.OnCommand(l)
	}
	switch {
	case v&0x80 != 0:
		l.addr = int(v&0x7F) % ddramSize
	case v&0x20 != 0:
		if !l.fourBit && v&0x10 == 0 {
			l.fourBit = true
			l.haveHigh = false
		}
		l.lines2 = v&0x08 != 0
	case v&0x08 != 0:
		l.displayOn = v&0x04 != 0
	case v == 0x02 || v == 0x03:
		l.addr = 0
	case v == 0x01:
		l.clear()
	}
}

func (l *LCD) clear() {
	for i := range l.ddram {
		l.ddram[i] = ' '
	}
	l.addr = 0
}

// Line returns the 16 visible characters of row 0 or 1.
func (l *LCD) Line(row int) string {
	base := 0
	if row == 1 {
		base = 0x40
	}
	return string(l.ddram[base : base+cols])
}

// Text returns row 0 with trailing spaces trimmed.
func (l *LCD) Text() string {
	s := l.Line(0)
	i := len(s)
	for i > 0 && s[i-1] == ' ' {
		i--
	}
	return s[:i]
}

func (l *LCD) FourBit() bool   { return l.fourBit }
func (l *LCD) TwoLine() bool   { return l.lines2 }
func (l *LCD) DisplayOn() bool { return l.displayOn }

// Backlight reports the backlight bit of the last expander byte.
func (l *LCD) Backlight() bool { return l.last&bitBacklight != 0 }
