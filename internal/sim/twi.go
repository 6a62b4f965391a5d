package sim

// Peripheral receives the bytes a two-wire target acknowledged.
type Peripheral interface {
	Receive(b byte)
}

// Controller models the status flags of a polled two-wire master. It
// satisfies twi.Controller. Each flag settles one poll after the action that
// raised it, so callers must actually poll.
type Controller struct {
	targets map[uint8]Peripheral

	target       uint8
	startPending bool
	stopPending  bool
	txReady      bool
	nack         bool
	pending      bool
	data         byte

	failNext int

	// Acks and Nacks count completed address phases by outcome.
	Acks, Nacks int
}

func NewController() *Controller {
	return &Controller{targets: make(map[uint8]Peripheral), txReady: true}
}

// Attach places p at the 7-bit address addr.
func (c *Controller) Attach(addr uint8, p Peripheral) { c.targets[addr] = p }

// FailNext makes the next n address phases NACK even if a target is present.
func (c *Controller) FailNext(n int) { c.failNext = n }

func (c *Controller) SetTarget(addr uint8) { c.target = addr }

func (c *Controller) StartWrite() {
	c.startPending = true
	c.nack = false
	c.txReady = true
}

func (c *Controller) TxReady() bool {
	if c.pending && !c.startPending {
		if p, ok := c.targets[c.target]; ok {
			p.Receive(c.data)
		}
		c.pending = false
		c.txReady = true
		c.Acks++
	}
	return c.txReady
}

func (c *Controller) Write(b byte) {
	c.data = b
	c.pending = true
	c.txReady = false
}

func (c *Controller) StartPending() bool {
	if !c.startPending {
		return false
	}
	c.startPending = false
	_, present := c.targets[c.target]
	if c.failNext > 0 {
		c.failNext--
		present = false
	}
	if !present {
		c.nack = true
		c.pending = false
		c.Nacks++
	}
	return true
}

func (c *Controller) Nacked() bool { return c.nack }

func (c *Controller) Stop() { c.stopPending = true }

func (c *Controller) StopPending() bool {
	if !c.stopPending {
		return false
	}
	c.stopPending = false
	c.txReady = true
	return true
}
