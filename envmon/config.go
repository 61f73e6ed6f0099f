package envmon

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config is the monitor configuration file.
type Config struct {
	LCD       LCDConfig       `toml:"lcd"`
	Sensors   SensorsConfig   `toml:"sensors"`
	Backlight BacklightConfig `toml:"backlight"`
	MQTT      MQTTConfig      `toml:"mqtt"`
	// Interval between polls, in time.ParseDuration syntax.
	Interval string `toml:"interval" validate:"required"`
}

// LCDConfig selects the display and its initial mode.
type LCDConfig struct {
	Bus      string `toml:"bus"`
	Address  uint16 `toml:"address" validate:"required"`
	Contrast byte   `toml:"contrast" validate:"lte=63"`
	Cursor   bool   `toml:"cursor"`
	Blink    bool   `toml:"blink"`
}

// SensorsConfig selects the sensors.
type SensorsConfig struct {
	// Bus is the I²C bus of the AHT20; empty for the first bus.
	Bus string `toml:"bus"`
	// MoisturePin names the ADC pin of the soil probe.
	MoisturePin string `toml:"moisture_pin" validate:"required"`
}

// BacklightConfig drives the LCD backlight. An empty pin leaves it alone.
type BacklightConfig struct {
	Pin   string  `toml:"pin"`
	Level float64 `toml:"level" validate:"gte=0,lte=1"`
}

// MQTTConfig enables publishing when Broker is set.
type MQTTConfig struct {
	Broker string `toml:"broker" validate:"omitempty,hostname_port"`
	Topic  string `toml:"topic" validate:"required_with=Broker"`
	QoS    byte   `toml:"qos" validate:"lte=2"`
}

// DefaultConfig returns the configuration of the reference build.
func DefaultConfig() Config {
	return Config{
		LCD: LCDConfig{
			Address: 0x3E,
		},
		Sensors: SensorsConfig{
			MoisturePin: "ADC0",
		},
		Backlight: BacklightConfig{
			Pin:   "GPIO10",
			Level: 0.3,
		},
		MQTT: MQTTConfig{
			Topic: "envmon/readings",
		},
		Interval: "5s",
	}
}

// PollInterval returns the parsed poll interval.
func (c *Config) PollInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("envmon: interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("envmon: interval must be positive, got %s", d)
	}
	return d, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("envmon: invalid config: %w", err)
	}
	_, err := c.PollInterval()
	return err
}

// ParseConfig decodes a TOML document on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("envmon: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the TOML file at path. A missing file yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("envmon: read config: %w", err)
	}
	return ParseConfig(data)
}
