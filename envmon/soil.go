package envmon

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/analog"
)

// SEN0114 is a DFRobot SEN0114 soil moisture probe read through an ADC pin.
// The probe output rises with soil conductivity.
type SEN0114 struct {
	pin analog.PinADC
}

// NewSEN0114 returns a probe reading from pin.
func NewSEN0114(pin analog.PinADC) *SEN0114 {
	return &SEN0114{pin: pin}
}

// Moisture returns the probe output as a fraction of the ADC range.
func (s *SEN0114) Moisture() (float64, error) {
	sample, err := s.pin.Read()
	if err != nil {
		return 0, fmt.Errorf("envmon: read %s: %w", s.pin, err)
	}
	lo, hi := s.pin.Range()
	if hi.Raw <= lo.Raw {
		return 0, errors.New("envmon: ADC range is empty")
	}
	f := float64(sample.Raw-lo.Raw) / float64(hi.Raw-lo.Raw)
	return min(max(f, 0), 1), nil
}

func (s *SEN0114) String() string {
	return fmt.Sprintf("SEN0114{%s}", s.pin)
}
