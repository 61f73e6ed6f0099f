// Package aqm0802 controls an AQM0802 8x2 character LCD via I²C.
//
// The AQM0802 is built around a Sitronix ST7032 controller. Text is converted
// to controller codes with the charmap package.
//
// See the examples for how to use this package.
package aqm0802

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/aqm0802/charmap"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Display geometry.
const (
	Cols = 8
	Rows = 2
)

// DefaultAddr is the fixed I²C address of the AQM0802.
const DefaultAddr uint16 = 0x3E

// DefaultContrast matches the factory recommended contrast setting.
const DefaultContrast byte = 0x1D

// Control bytes selecting the target register of a write.
const (
	regInstruction byte = 0x00
	regData        byte = 0x40
)

// Instructions.
const (
	cmdClear          byte = 0x01
	cmdDisplayControl byte = 0x08 // | display<<2 | cursor<<1 | blink
	cmdFunctionNormal byte = 0x38 // 8-bit bus, 2 lines, instruction table 0
	cmdFunctionExt    byte = 0x39 // 8-bit bus, 2 lines, instruction table 1
	cmdOscillator     byte = 0x14 // Internal OSC frequency, 1/5 bias
	cmdContrastLow    byte = 0x70 // | contrast[3:0]
	cmdPowerContrast  byte = 0x54 // Booster on | contrast[5:4]
	cmdFollower       byte = 0x6C // Follower circuit on, amplified ratio
	cmdSetDDRAM       byte = 0x80 // | address
	rowStride         byte = 0x40
)

// Delays.
const (
	powerOnDelay  = 50 * time.Millisecond
	settleDelay   = time.Millisecond
	followerDelay = 200 * time.Millisecond
)

// Opts is the configuration for the AQM0802 display.
type Opts struct {
	// Contrast (0-63). Zero selects DefaultContrast.
	Contrast byte

	// Character table (nil for charmap.Default).
	Table *charmap.Table
}

// State is the driver's view of the controller configuration.
type State struct {
	CursorVisible bool
	BlinkEnabled  bool
	DisplayOn     bool

	// Cursor position, X in [0, Cols-1] and Y in [0, Rows-1]. X stays at
	// Cols-1 once text has run past the last column of a row.
	X, Y int
}

// Dev is the device handle for the AQM0802 display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	c     conn.Conn
	table *charmap.Table
	sleep func(time.Duration)

	state  State
	halted bool
}

// NewI2C creates a new AQM0802 device connected via I²C and runs the
// controller power-on sequence.
//
// addr 0 selects DefaultAddr. opts can be nil to use defaults.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr == 0 {
		addr = DefaultAddr
	}
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, opts, time.Sleep)
}

func newDev(c conn.Conn, opts *Opts, sleep func(time.Duration)) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Contrast > 0x3F {
		return nil, errors.New("aqm0802: contrast must be between 0 and 63")
	}
	table := opts.Table
	if table == nil {
		table = charmap.Default()
	}
	d := &Dev{
		c:     c,
		table: table,
		sleep: sleep,
		state: State{
			CursorVisible: true,
			BlinkEnabled:  true,
			DisplayOn:     true,
		},
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	contrast := opts.Contrast
	if contrast == 0 {
		contrast = DefaultContrast
	}

	d.sleep(powerOnDelay)

	cmds := []byte{
		cmdFunctionNormal,
		cmdFunctionExt,
		cmdOscillator,
		cmdContrastLow | contrast&0x0F,
		cmdPowerContrast | (contrast>>4)&0x03,
	}
	for _, cmd := range cmds {
		if err := d.sendCommand(cmd); err != nil {
			return err
		}
	}

	// The follower circuit needs time for the voltage to stabilize.
	if err := d.c.Tx([]byte{regInstruction, cmdFollower}, nil); err != nil {
		return err
	}
	d.sleep(followerDelay)

	for _, cmd := range []byte{cmdFunctionNormal, d.modeByte(), cmdClear} {
		if err := d.sendCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

// sendCommand writes one instruction and waits for the controller.
func (d *Dev) sendCommand(cmd byte) error {
	if err := d.c.Tx([]byte{regInstruction, cmd}, nil); err != nil {
		return err
	}
	d.sleep(settleDelay)
	return nil
}

// sendData writes one character code at the controller cursor.
func (d *Dev) sendData(code byte) error {
	if err := d.c.Tx([]byte{regData, code}, nil); err != nil {
		return err
	}
	d.sleep(settleDelay)
	return nil
}

// modeByte encodes the display, cursor and blink flags.
func (d *Dev) modeByte() byte {
	b := cmdDisplayControl
	if d.state.DisplayOn {
		b |= 0x04
	}
	if d.state.CursorVisible {
		b |= 0x02
	}
	if d.state.BlinkEnabled {
		b |= 0x01
	}
	return b
}

// State returns a snapshot of the display state.
func (d *Dev) State() State {
	s := d.state
	s.X = min(s.X, Cols-1)
	return s
}

// Clear blanks the display. The controller moves its cursor to the top left
// cell, and so does the tracked position.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("aqm0802: halted")
	}
	d.state.X, d.state.Y = 0, 0
	return d.sendCommand(cmdClear)
}

// ReturnHome moves the cursor to the top left cell.
//
// The display is cleared as well; callers rely on this to blank the screen.
func (d *Dev) ReturnHome() error {
	if d.halted {
		return errors.New("aqm0802: halted")
	}
	d.state.X, d.state.Y = 0, 0
	return d.sendCommand(cmdClear)
}

// SetCursor shows or hides the underline cursor.
func (d *Dev) SetCursor(visible bool) error {
	if d.halted {
		return errors.New("aqm0802: halted")
	}
	d.state.CursorVisible = visible
	return d.sendCommand(d.modeByte())
}

// SetBlink enables or disables the blinking block cursor.
func (d *Dev) SetBlink(on bool) error {
	if d.halted {
		return errors.New("aqm0802: halted")
	}
	d.state.BlinkEnabled = on
	return d.sendCommand(d.modeByte())
}

// SetDisplay turns the display on or off. Display RAM is retained.
func (d *Dev) SetDisplay(on bool) error {
	if d.halted {
		return errors.New("aqm0802: halted")
	}
	d.state.DisplayOn = on
	return d.sendCommand(d.modeByte())
}

// SetContrast sets the display contrast (0-63).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("aqm0802: halted")
	}
	if contrast > 0x3F {
		return errors.New("aqm0802: contrast must be between 0 and 63")
	}
	// Contrast lives in instruction table 1.
	for _, cmd := range []byte{
		cmdFunctionExt,
		cmdContrastLow | contrast&0x0F,
		cmdPowerContrast | (contrast>>4)&0x03,
		cmdFunctionNormal,
	} {
		if err := d.sendCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Move sets the cursor position. Out of range coordinates are clamped to the
// nearest cell.
func (d *Dev) Move(col, row int) error {
	if d.halted {
		return errors.New("aqm0802: halted")
	}
	d.state.X = min(max(col, 0), Cols-1)
	d.state.Y = min(max(row, 0), Rows-1)
	return d.sendCommand(cmdSetDDRAM + byte(d.state.X) + byte(d.state.Y)*rowStride)
}

// Print writes text at the cursor position and returns the number of cells
// written.
//
// Text running past the last column continues once on the second row. Past
// the end of the second row the rest of the text is dropped. Every code
// takes one cell, so a voiced kana uses two.
//
// If text contains a character missing from the table, nothing is written and
// the error matches charmap.ErrUnsupportedCharacter.
func (d *Dev) Print(text string) (int, error) {
	if d.halted {
		return 0, errors.New("aqm0802: halted")
	}
	codes, err := d.table.Encode(text)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, code := range codes {
		if d.state.X >= Cols {
			if d.state.Y != 0 {
				break
			}
			if err := d.Move(0, 1); err != nil {
				return n, err
			}
		}
		if err := d.sendData(code); err != nil {
			return n, err
		}
		d.state.X++
		n++
	}
	return n, nil
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	d.state.DisplayOn = false
	return d.sendCommand(d.modeByte())
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("aqm0802.Dev{%s}", d.c)
}
