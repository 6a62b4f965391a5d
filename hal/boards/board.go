package boards

// Board describes how the station is wired: which GPIO carries the sensor
// line and the two buttons, where the display bus and log UART live.
// Pin numbers are plain GPIO numbers; mapping to machine.Pin happens in
// hal/platform.
type Board struct {
	Name string

	DHTPin      int
	ForwardPin  int
	BackwardPin int

	// I2C0 wiring for the display backpack.
	SDAPin, SCLPin int
	I2CHz          uint32
	LCDAddress     uint16

	// UART0 log sink.
	LogTX, LogRX int
	LogBaud      uint32
}
