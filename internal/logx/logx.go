// Package logx writes one-line structured events ("event k=v k=v") to an
// io.Writer. It formats through x/conv so MCU builds do not pull in fmt.
// A nil *Logger discards everything.
package logx

import (
	"io"

	"dhtstation-go/x/conv"
)

type kind uint8

const (
	kindStr kind = iota
	kindInt
	kindUint
	kindHex
)

// Field is one key=value pair.
type Field struct {
	key  string
	kind kind
	s    string
	i    int64
	u    uint64
	b    []byte
}

func Str(key, v string) Field       { return Field{key: key, kind: kindStr, s: v} }
func Int(key string, v int64) Field { return Field{key: key, kind: kindInt, i: v} }
func Uint(key string, v uint64) Field {
	return Field{key: key, kind: kindUint, u: v}
}
func Hex(key string, p []byte) Field { return Field{key: key, kind: kindHex, b: p} }

type Logger struct {
	w   io.Writer
	buf []byte
}

func New(w io.Writer) *Logger {
	return &Logger{w: w, buf: make([]byte, 0, 96)}
}

// Log writes event followed by its fields and a newline. Write errors are
// dropped; there is nowhere left to report them.
func (l *Logger) Log(event string, fields ...Field) {
	if l == nil || l.w == nil {
		return
	}
	b := append(l.buf[:0], event...)
	for _, f := range fields {
		b = append(b, ' ')
		b = append(b, f.key...)
		b = append(b, '=')
		switch f.kind {
		case kindInt:
			b = conv.AppendInt(b, f.i)
		case kindUint:
			b = conv.AppendUint(b, f.u)
		case kindHex:
			b = conv.AppendHex(b, f.b)
		default:
			b = appendValue(b, f.s)
		}
	}
	b = append(b, '\n')
	l.buf = b
	_, _ = l.w.Write(b)
}

// appendValue quotes s when it is empty or contains a space or '='.
func appendValue(b []byte, s string) []byte {
	quote := s == ""
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '=' || s[i] == '"' {
			quote = true
			break
		}
	}
	if !quote {
		return append(b, s...)
	}
	b = append(b, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b = append(b, '\\')
		}
		b = append(b, s[i])
	}
	return append(b, '"')
}
