// Package envmon reads a temperature/humidity sensor and a soil moisture
// probe, shows the readings on an AQM0802 display and optionally publishes
// them to an MQTT broker.
package envmon

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// WetThreshold is the moisture percentage above which the soil is reported
// as wet.
const WetThreshold = 50

// Reading is one sample of all sensors.
type Reading struct {
	Time        time.Time
	Temperature physic.Temperature
	Humidity    physic.RelativeHumidity
	// Moisture is the probe output as a fraction of the ADC range, 0 (dry)
	// to 1 (wet).
	Moisture float64
}

// Celsius returns the temperature in °C.
func (r Reading) Celsius() float64 {
	return float64(r.Temperature-physic.ZeroCelsius) / float64(physic.Celsius)
}

// HumidityPercent returns the relative humidity in %.
func (r Reading) HumidityPercent() float64 {
	return float64(r.Humidity) / float64(physic.PercentRH)
}

// MoisturePercent returns the moisture as a whole percentage.
func (r Reading) MoisturePercent() int {
	return int(r.Moisture * 100)
}

// Wetness returns "WET" or "DRY".
func (r Reading) Wetness() string {
	if r.MoisturePercent() > WetThreshold {
		return "WET"
	}
	return "DRY"
}

func (r Reading) String() string {
	return fmt.Sprintf("%.2fC %.2f%% moisture %03d (%s)", r.Celsius(), r.HumidityPercent(), r.MoisturePercent(), r.Wetness())
}
