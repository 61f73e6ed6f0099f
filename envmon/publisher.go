package envmon

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Publisher ships readings to a time-series store.
type Publisher interface {
	Publish(r Reading) error
}

// payload is the JSON document published for each reading.
type payload struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature_c"`
	Humidity    float64   `json:"humidity_pct"`
	Moisture    int       `json:"moisture_pct"`
	Wetness     string    `json:"wetness"`
}

func newPayload(r Reading) payload {
	return payload{
		Time:        r.Time.UTC(),
		Temperature: r.Celsius(),
		Humidity:    r.HumidityPercent(),
		Moisture:    r.MoisturePercent(),
		Wetness:     r.Wetness(),
	}
}

// MQTTPublisher publishes readings as JSON to an MQTT broker.
type MQTTPublisher struct {
	client    mqtt.Client
	newClient func(*mqtt.ClientOptions) mqtt.Client
	broker    string
	topic     string
	qos       byte
}

// NewMQTTPublisher creates a publisher for the given broker (host:port) and
// topic.
func NewMQTTPublisher(broker, topic string, qos byte) *MQTTPublisher {
	return &MQTTPublisher{
		broker:    broker,
		topic:     topic,
		qos:       qos,
		newClient: mqtt.NewClient,
	}
}

// Start connects to the broker.
func (p *MQTTPublisher) Start() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", p.broker))
	opts.SetClientID("envmon-" + uuid.New().String()[:8])
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	opts.OnConnect = func(_ mqtt.Client) {
		log.Info().Msgf("mqtt publisher: connected to %s", p.broker)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("mqtt publisher: connection lost")
	}

	p.client = p.newClient(opts)
	token := p.client.Connect()
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("envmon: connect to MQTT broker: %w", token.Error())
	}
	return nil
}

// Publish sends r to the configured topic.
func (p *MQTTPublisher) Publish(r Reading) error {
	if p.client == nil {
		return errors.New("envmon: mqtt publisher not started")
	}
	data, err := json.Marshal(newPayload(r))
	if err != nil {
		return fmt.Errorf("envmon: marshal reading: %w", err)
	}
	token := p.client.Publish(p.topic, p.qos, false, data)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("envmon: publish to %s: %w", p.topic, token.Error())
	}
	log.Debug().Msgf("mqtt publisher: published reading to %s", p.topic)
	return nil
}

// Stop disconnects from the broker.
func (p *MQTTPublisher) Stop() {
	if p.client != nil && p.client.IsConnected() {
		log.Debug().Msg("mqtt publisher: disconnecting")
		p.client.Disconnect(250)
	}
}
