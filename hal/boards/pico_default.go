package boards

// PicoDefault is the bench wiring on a Raspberry Pi Pico: sensor on GP15,
// buttons to ground on GP14/GP13, PCF8574 backpack on I2C0 default pins.
var PicoDefault = Board{
	Name:        "pico_default",
	DHTPin:      15,
	ForwardPin:  14,
	BackwardPin: 13,
	SDAPin:      4,
	SCLPin:      5,
	I2CHz:       100_000,
	LCDAddress:  0x27,
	LogTX:       0,
	LogRX:       1,
	LogBaud:     115200,
}

var Selected = PicoDefault
