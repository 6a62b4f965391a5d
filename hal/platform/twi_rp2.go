//go:build rp2040 || rp2350

package platform

import (
	"device/rp"
)

// rp2TWI drives an RP2 DW_apb_i2c block as a twi.Controller. machine.I2C
// Configure has already set pins, clocks and speed; this only touches the
// target, data and status registers.
//
// The block issues the start condition itself when the first data command
// lands in the FIFO, and the stop condition either from the STOP bit on
// that command or automatically after an abort. StartWrite and Stop therefore
// only arm the flags that the pending checks observe.
type rp2TWI struct {
	bus    *rp.I2C0_Type
	target uint8
	nacked bool
}

func newRP2TWI(bus *rp.I2C0_Type) *rp2TWI {
	c := &rp2TWI{bus: bus, target: 0xFF}
	c.bus.IC_ENABLE.Set(0)
	waitDisabled(c.bus)
	// TX_EMPTY only once the byte has left the shift register.
	c.bus.IC_CON.SetBits(rp.I2C0_IC_CON_TX_EMPTY_CTRL)
	c.bus.IC_ENABLE.Set(rp.I2C0_IC_ENABLE_ENABLE)
	return c
}

func (c *rp2TWI) SetTarget(addr uint8) {
	if addr == c.target {
		return
	}
	// IC_TAR is only writable with the block disabled.
	c.bus.IC_ENABLE.Set(0)
	waitDisabled(c.bus)
	c.bus.IC_TAR.Set(uint32(addr))
	c.bus.IC_ENABLE.Set(rp.I2C0_IC_ENABLE_ENABLE)
	c.target = addr
}

func (c *rp2TWI) StartWrite() {
	c.nacked = false
	// Reading a clear register acknowledges its interrupt.
	c.bus.IC_CLR_TX_ABRT.Get()
	c.bus.IC_CLR_STOP_DET.Get()
}

func (c *rp2TWI) TxReady() bool {
	return c.bus.IC_RAW_INTR_STAT.Get()&rp.I2C0_IC_RAW_INTR_STAT_TX_EMPTY != 0
}

// Write queues b with STOP set: every transaction carries exactly one byte.
func (c *rp2TWI) Write(b byte) {
	c.bus.IC_DATA_CMD.Set(uint32(b) | rp.I2C0_IC_DATA_CMD_STOP)
}

func (c *rp2TWI) StartPending() bool {
	raw := c.bus.IC_RAW_INTR_STAT.Get()
	return raw&(rp.I2C0_IC_RAW_INTR_STAT_TX_EMPTY|rp.I2C0_IC_RAW_INTR_STAT_TX_ABRT) == 0
}

// Nacked latches TX_ABRT. Address and data NOACK both abort the transfer;
// the abort is cleared here so the FIFO accepts the next command.
func (c *rp2TWI) Nacked() bool {
	if c.bus.IC_RAW_INTR_STAT.Get()&rp.I2C0_IC_RAW_INTR_STAT_TX_ABRT != 0 {
		c.nacked = true
		c.bus.IC_CLR_TX_ABRT.Get()
	}
	return c.nacked
}

func (c *rp2TWI) Stop() {}

func (c *rp2TWI) StopPending() bool {
	if c.bus.IC_RAW_INTR_STAT.Get()&rp.I2C0_IC_RAW_INTR_STAT_STOP_DET == 0 {
		return true
	}
	c.bus.IC_CLR_STOP_DET.Get()
	return false
}

func waitDisabled(bus *rp.I2C0_Type) {
	for bus.IC_ENABLE_STATUS.Get()&rp.I2C0_IC_ENABLE_STATUS_IC_EN != 0 {
	}
}
