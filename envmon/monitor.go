package envmon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/aqm0802/charmap"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
)

// EnvSensor measures temperature and humidity, like *aht20.Dev.
type EnvSensor interface {
	Sense(e *physic.Env) error
}

// MoistureSensor measures soil moisture as a fraction in [0, 1].
type MoistureSensor interface {
	Moisture() (float64, error)
}

// Opts configures a Monitor.
type Opts struct {
	// Interval between two polls (default: DefaultInterval).
	Interval time.Duration
	// Publisher is optional.
	Publisher Publisher
	// Clock defaults to the real clock.
	Clock clockwork.Clock
}

// DefaultInterval matches the sensor refresh used by the display.
const DefaultInterval = 5 * time.Second

// Monitor polls the sensors, updates the display and publishes readings.
type Monitor struct {
	env      EnvSensor
	soil     MoistureSensor
	lcd      Display
	pub      Publisher
	interval time.Duration
	clock    clockwork.Clock
}

// New returns a Monitor. opts can be nil to use defaults.
func New(env EnvSensor, soil MoistureSensor, lcd Display, opts *Opts) *Monitor {
	if opts == nil {
		opts = &Opts{}
	}
	m := &Monitor{
		env:      env,
		soil:     soil,
		lcd:      lcd,
		pub:      opts.Publisher,
		interval: opts.Interval,
		clock:    opts.Clock,
	}
	if m.interval <= 0 {
		m.interval = DefaultInterval
	}
	if m.clock == nil {
		m.clock = clockwork.NewRealClock()
	}
	return m
}

// Read samples all sensors.
func (m *Monitor) Read() (Reading, error) {
	var e physic.Env
	if err := m.env.Sense(&e); err != nil {
		return Reading{}, fmt.Errorf("envmon: read temperature/humidity: %w", err)
	}
	moisture, err := m.soil.Moisture()
	if err != nil {
		return Reading{}, err
	}
	return Reading{
		Time:        m.clock.Now(),
		Temperature: e.Temperature,
		Humidity:    e.Humidity,
		Moisture:    moisture,
	}, nil
}

// Step performs one poll. Publishing failures are logged and do not fail
// the step.
func (m *Monitor) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r, err := m.Read()
	if err != nil {
		return err
	}
	log.Info().
		Float64("temperature", r.Celsius()).
		Float64("humidity", r.HumidityPercent()).
		Int("moisture", r.MoisturePercent()).
		Str("wetness", r.Wetness()).
		Msg("reading")

	if err := Layout(m.lcd, r); err != nil {
		if !errors.Is(err, charmap.ErrUnsupportedCharacter) {
			return fmt.Errorf("envmon: update display: %w", err)
		}
		// Blank whatever was half written.
		log.Warn().Err(err).Msg("envmon: clearing display")
		if err := m.lcd.ReturnHome(); err != nil {
			return fmt.Errorf("envmon: clear display: %w", err)
		}
	}

	if m.pub != nil {
		if err := m.pub.Publish(r); err != nil {
			log.Error().Err(err).Msg("envmon: publish reading")
		}
	}
	return nil
}

// Run polls every interval until ctx is done. Failed polls are logged and
// retried on the next tick.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		if err := m.Step(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("envmon: poll failed")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.clock.After(m.interval):
		}
	}
}
