package timex

import (
	"testing"
	"time"
)

func TestBusyWaitElapses(t *testing.T) {
	start := time.Now()
	BusyWait(200 * time.Microsecond)
	if el := time.Since(start); el < 200*time.Microsecond {
		t.Fatalf("BusyWait returned after %v", el)
	}
	BusyWait(0)
	BusyWait(-time.Second)
}

func TestOrDefaults(t *testing.T) {
	var got time.Duration
	w := Or(func(d time.Duration) { got = d })
	w(3 * time.Millisecond)
	if got != 3*time.Millisecond {
		t.Fatalf("Or kept wrong wait, got %v", got)
	}
	if Or(nil) == nil {
		t.Fatalf("Or(nil) must fall back to Delay")
	}
}
