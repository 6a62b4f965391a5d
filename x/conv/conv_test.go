package conv

import "testing"

func TestAppendUintInt(t *testing.T) {
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{45, "45"},
		{255, "255"},
		{-12, "-12"},
		{1234567890, "1234567890"},
	} {
		if got := string(AppendInt(nil, c.n)); got != c.want {
			t.Fatalf("AppendInt(%d) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := string(AppendUint([]byte("n="), 18446744073709551615)); got != "n=18446744073709551615" {
		t.Fatalf("AppendUint(max) = %q", got)
	}
}

func TestAppendTenths(t *testing.T) {
	for _, c := range []struct {
		t    uint32
		want string
	}{
		{734, "73.4"},
		{770, "77.0"},
		{320, "32.0"},
		{5, "0.5"},
	} {
		if got := string(AppendTenths(nil, c.t)); got != c.want {
			t.Fatalf("AppendTenths(%d) = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestAppendHex(t *testing.T) {
	if got := string(AppendHex([]byte("raw="), []byte{0x2d, 0x00, 0x17, 0xff})); got != "raw=2d0017ff" {
		t.Fatalf("AppendHex = %q", got)
	}
}
