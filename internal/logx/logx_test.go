package logx

import (
	"bytes"
	"testing"
)

func TestLogLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Log("checksum_mismatch", Hex("raw", []byte{0x2d, 0x00, 0x17, 0x00, 0x45}), Int("pass", 3))
	l.Log("boot", Str("board", "pico_default"), Uint("lcd_addr", 0x27), Str("text", "Temp: 23 C"))

	want := "checksum_mismatch raw=2d00170045 pass=3\n" +
		"boot board=pico_default lcd_addr=39 text=\"Temp: 23 C\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("log output = %q, want %q", got, want)
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger
	l.Log("bus_nack", Uint("count", 1))
	New(nil).Log("bus_nack")
}

func TestQuoting(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Log("x", Str("empty", ""), Str("q", `a"b`))
	if got, want := buf.String(), `x empty="" q="a\"b"`+"\n"; got != want {
		t.Fatalf("quoted = %q, want %q", got, want)
	}
}
