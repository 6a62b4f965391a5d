// Package twi performs addressed single-byte writes on a two-wire serial
// controller by polling its status flags, the way a register-level I²C
// master peripheral is driven without interrupts or DMA.
//
//	err := twi.Send(ctrl, 0x27, b) // ErrNack if the target did not ACK
//
// Every wait is a busy-poll with no timeout: a controller that never raises
// the expected flag hangs the caller. Each wait lives in its own function so a
// bounded variant can replace it without touching the transaction sequence.
//
// Master adapts a Controller to tinygo.org/x/drivers.I2C so drivers written
// for machine.I2C can run on it for write-only traffic.
package twi

import (
	"dhtstation-go/errcode"

	"tinygo.org/x/drivers"
)

// Controller is the register surface of a two-wire master peripheral.
type Controller interface {
	// SetTarget loads the 7-bit slave address.
	SetTarget(addr uint8)
	// StartWrite requests a start condition in transmit direction.
	StartWrite()
	// TxReady reports the transmit buffer can accept a byte.
	TxReady() bool
	// Write loads b into the transmit buffer.
	Write(b byte)
	// StartPending reports the start condition/address phase is in progress.
	StartPending() bool
	// Nacked reports the not-acknowledge flag.
	Nacked() bool
	// Stop requests a stop condition.
	Stop()
	// StopPending reports the stop condition has not completed yet.
	StopPending() bool
}

// Errors returned by the package.
var (
	ErrNack        = &errcode.E{C: errcode.BusNack, Op: "twi", Msg: "not acknowledged"}
	ErrUnsupported = &errcode.E{C: errcode.Unsupported, Op: "twi", Msg: "read transfers not supported"}
	ErrAddress     = &errcode.E{C: errcode.Unsupported, Op: "twi", Msg: "10-bit addresses not supported"}
)

// Send writes one byte to the 7-bit address addr. It returns ErrNack when the
// target did not acknowledge; the byte must then be assumed lost. A stop
// condition is issued on both paths before returning. No retries.
func Send(c Controller, addr uint8, b byte) error {
	c.SetTarget(addr & 0x7F)
	c.StartWrite()
	waitTxReady(c)
	c.Write(b)
	waitStartDone(c)

	if c.Nacked() {
		c.Stop()
		waitStopDone(c)
		return ErrNack
	}

	// Buffer empty again once the byte moved into the shift register.
	waitTxReady(c)
	c.Stop()
	waitStopDone(c)
	return nil
}

func waitTxReady(c Controller) {
	for !c.TxReady() {
	}
}

func waitStartDone(c Controller) {
	for c.StartPending() {
	}
}

func waitStopDone(c Controller) {
	for c.StopPending() {
	}
}

// ---- Master ----

// Master owns a Controller and counts NACKed transactions.
type Master struct {
	c     Controller
	nacks uint32
}

var _ drivers.I2C = (*Master)(nil)

func NewMaster(c Controller) *Master { return &Master{c: c} }

// Send is the package Send with NACK accounting.
func (m *Master) Send(addr uint8, b byte) error {
	err := Send(m.c, addr, b)
	if err != nil {
		m.nacks++
	}
	return err
}

// Tx implements drivers.I2C. Each byte of w goes out as its own transaction;
// the first NACK aborts the rest. Reads and addresses above 0x7F are not
// supported; nothing is sent for them.
func (m *Master) Tx(addr uint16, w, r []byte) error {
	if len(r) > 0 {
		return ErrUnsupported
	}
	if addr > 0x7F {
		return ErrAddress
	}
	for _, b := range w {
		if err := m.Send(uint8(addr), b); err != nil {
			return err
		}
	}
	return nil
}

// Nacks returns the number of NACKed transactions since creation.
func (m *Master) Nacks() uint32 { return m.nacks }
