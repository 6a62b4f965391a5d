// Package conv renders integers into caller-owned byte slices without fmt or
// strconv, keeping formatting cheap on MCU builds.
package conv

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendInt appends the base-10 representation of n to dst. Negative numbers
// are prefixed with '-'.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendTenths appends a fixed-point value held in tenths as "<t/10>.<t%10>".
// 734 => "73.4", 5 => "0.5".
func AppendTenths(dst []byte, t uint32) []byte {
	dst = AppendUint(dst, uint64(t/10))
	dst = append(dst, '.')
	return append(dst, byte('0'+t%10))
}

const hexDigits = "0123456789abcdef"

// AppendHex appends each byte of p as two lowercase hex digits, no separator.
func AppendHex(dst []byte, p []byte) []byte {
	for _, b := range p {
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0F])
	}
	return dst
}
