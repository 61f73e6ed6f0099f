package envmon

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Display is the part of *aqm0802.Dev used by the monitor.
type Display interface {
	Move(col, row int) error
	Print(text string) (int, error)
	ReturnHome() error
}

// Layout draws r on an 8x2 display:
//
//	23.4CDRY
//	56.1%042
func Layout(d Display, r Reading) error {
	fields := []struct {
		col, row int
		text     string
	}{
		{0, 0, fmt.Sprintf("%.1fC", r.Celsius())},
		{0, 1, fmt.Sprintf("%.1f%%", r.HumidityPercent())},
		{5, 0, r.Wetness()},
		{5, 1, fmt.Sprintf("%03d", r.MoisturePercent())},
	}
	for _, f := range fields {
		if err := d.Move(f.col, f.row); err != nil {
			return err
		}
		if _, err := d.Print(f.text); err != nil {
			return err
		}
	}
	return nil
}

// BacklightFreq is the PWM frequency driving the LCD backlight.
const BacklightFreq = 10 * physic.KiloHertz

// Backlight dims the LCD backlight connected to pin. level ranges from 0
// (off) to 1 (full brightness).
func Backlight(pin gpio.PinOut, level float64) error {
	if level < 0 || level > 1 {
		return fmt.Errorf("envmon: backlight level %g out of range [0, 1]", level)
	}
	duty := gpio.Duty(level * float64(gpio.DutyMax))
	if err := pin.PWM(duty, BacklightFreq); err != nil {
		return fmt.Errorf("envmon: backlight on %s: %w", pin, err)
	}
	return nil
}
