package twi

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"dhtstation-go/errcode"
)

// fakeCtrl models the flag sequence of a polled controller. Flags settle after
// a few polls so the wait loops are exercised.
type fakeCtrl struct {
	nack  bool
	ops   []string
	delay int

	txPolls, startPolls, stopPolls int
	starting, stopping             bool
}

func (f *fakeCtrl) log(s string) { f.ops = append(f.ops, s) }

func (f *fakeCtrl) SetTarget(addr uint8) {
	f.log("addr " + strconv.Itoa(int(addr)))
}

func (f *fakeCtrl) StartWrite() {
	f.log("start")
	f.starting = true
	f.startPolls = 0
}

func (f *fakeCtrl) TxReady() bool {
	f.txPolls++
	if f.txPolls < f.delay {
		return false
	}
	f.txPolls = 0
	f.log("txready")
	return true
}

func (f *fakeCtrl) Write(byte) { f.log("write") }

func (f *fakeCtrl) StartPending() bool {
	if !f.starting {
		return false
	}
	f.startPolls++
	if f.startPolls < f.delay {
		return true
	}
	f.starting = false
	return false
}

func (f *fakeCtrl) Nacked() bool { return f.nack }

func (f *fakeCtrl) Stop() {
	f.log("stop")
	f.stopping = true
	f.stopPolls = 0
}

func (f *fakeCtrl) StopPending() bool {
	if !f.stopping {
		return false
	}
	f.stopPolls++
	if f.stopPolls < f.delay {
		return true
	}
	f.stopping = false
	f.log("stopped")
	return false
}

func TestSendAck(t *testing.T) {
	c := &fakeCtrl{delay: 3}
	if err := Send(c, 0x27, 0x0C); err != nil {
		t.Fatalf("Send = %v, want nil", err)
	}
	if got, want := strings.Join(c.ops, ","), "addr 39,start,txready,write,txready,stop,stopped"; got != want {
		t.Fatalf("ops = %q, want %q", got, want)
	}
}

func TestSendNackStillStops(t *testing.T) {
	c := &fakeCtrl{delay: 2, nack: true}
	err := Send(c, 0x27, 0x0C)
	if !errors.Is(err, ErrNack) {
		t.Fatalf("Send = %v, want ErrNack", err)
	}
	if errcode.Of(err) != errcode.BusNack {
		t.Fatalf("code = %q, want %q", errcode.Of(err), errcode.BusNack)
	}
	// No second buffer wait once the target has NACKed.
	if got, want := strings.Join(c.ops, ","), "addr 39,start,txready,write,stop,stopped"; got != want {
		t.Fatalf("ops = %q, want %q", got, want)
	}
}

func TestMasterTx(t *testing.T) {
	c := &fakeCtrl{delay: 1}
	m := NewMaster(c)
	if err := m.Tx(0x27, []byte{1, 2, 3}, nil); err != nil {
		t.Fatalf("Tx = %v", err)
	}
	if n := strings.Count(strings.Join(c.ops, ","), "write"); n != 3 {
		t.Fatalf("writes = %d, want 3", n)
	}
	if err := m.Tx(0x27, nil, make([]byte, 1)); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("read Tx = %v, want ErrUnsupported", err)
	}

	c.nack = true
	c.ops = nil
	if err := m.Tx(0x27, []byte{1, 2}, nil); !errors.Is(err, ErrNack) {
		t.Fatalf("Tx = %v, want ErrNack", err)
	}
	if n := strings.Count(strings.Join(c.ops, ","), "write"); n != 1 {
		t.Fatalf("Tx continued after NACK: %v", c.ops)
	}
	if m.Nacks() != 1 {
		t.Fatalf("Nacks = %d, want 1", m.Nacks())
	}
}

func TestMasterTxRejectsTenBitAddress(t *testing.T) {
	c := &fakeCtrl{delay: 1}
	m := NewMaster(c)
	err := m.Tx(0x127, []byte{1}, nil)
	if !errors.Is(err, ErrAddress) {
		t.Fatalf("Tx = %v, want ErrAddress", err)
	}
	if errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("code = %q, want %q", errcode.Of(err), errcode.Unsupported)
	}
	if len(c.ops) != 0 {
		t.Fatalf("ops = %v, want none", c.ops)
	}
	if m.Nacks() != 0 {
		t.Fatalf("Nacks = %d, want 0", m.Nacks())
	}
}
