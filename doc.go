// Package aqm0802 controls an AQM0802 character LCD via I²C.
//
// The AQM0802 is an 8 column by 2 row character display built around a
// Sitronix ST7032 controller. This driver writes text through the
// controller's built-in character ROM using the charmap package.
//
// # Display Characteristics
//
// - 8x2 characters, 5x8 dots each
// - Fixed I²C address 0x3E
// - Built-in ROM with ASCII, half-width katakana, Greek and accented Latin
// - Software contrast control (0-63)
// - Underline and blinking block cursors
//
// # Hardware Connection
//
// Connect the AQM0802 display to your system via I²C:
//
//	Display Pin → System Pin
//	VDD         → 3.3V
//	RESET       → 3.3V (or a GPIO held high)
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//	GND         → GND
//
// Most breakout boards include the pull-up resistors on SCL and SDA.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"github.com/flavioheleno/aqm0802"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device at the default address
//		dev, _ := aqm0802.NewI2C(bus, 0, nil)
//		defer dev.Halt()
//
//		dev.SetCursor(false)
//		dev.SetBlink(false)
//
//		dev.Print("23.4C")
//		dev.Move(0, 1)
//		dev.Print("ガス OK")
//	}
//
// # Writing Text
//
// Print converts text with the character table and writes one code per cell.
// Voiced katakana such as "ガ" are written as two codes (base kana and voiced
// mark) and use two cells.
//
// Text that runs past the last column continues on the second row once.
// Text that runs past the end of the second row is dropped:
//
//	dev.Print("ABCDEFGHIJKLMNOPQ") // Shows ABCDEFGH / IJKLMNOP, drops Q
//
// A character missing from the table fails the whole call before anything
// is written:
//
//	_, err := dev.Print("ｑ")
//	errors.Is(err, charmap.ErrUnsupportedCharacter) // true
//
// # Cursor Position
//
// Move clamps its arguments to the display, so Move(10, 3) places the cursor
// on the last cell. Clear and ReturnHome both blank the display and move the
// cursor to the top left cell.
//
// # Timing
//
// Every call blocks until the controller is ready for the next instruction:
// about 1ms per instruction or character. NewI2C takes about 260ms for the
// power-on sequence. A Dev must not be used from multiple goroutines at once.
//
// # Errors
//
// Bus errors are returned as is, without retry. The driver does not roll back
// its state on failure since the write may have reached the controller.
//
// # Datasheet
//
// For the instruction set and timing information, see the Sitronix ST7032i
// datasheet.
package aqm0802
