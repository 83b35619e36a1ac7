package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/sensor"
)

// Maximum payload size for MQTT messages (1MB).
// This prevents resource exhaustion and aligns with typical broker limits.
const maxPayloadSize = 1 << 20 // 1MB

// Publish sends a message to the specified MQTT topic.
//
// Parameters:
//   - topic: The topic to publish to (e.g., "homesim/device/light_1/state")
//   - payload: The message payload (typically JSON, max 1MB)
//   - qos: Quality of Service level (0, 1, or 2)
//   - retained: Whether the broker should retain the message for new subscribers
//
// QoS Levels:
//   - 0: At most once (fire and forget)
//   - 1: At least once (guaranteed delivery, may duplicate)
//   - 2: Exactly once (guaranteed, no duplicates, higher overhead)
//
// Retained Messages:
//   - When true, broker stores the last message for each topic
//   - New subscribers immediately receive the retained message
//   - Use for state topics (device status, system status)
//
// Returns:
//   - error: nil on success, or wrapped error describing the failure
func (c *Client) Publish(topic string, payload []byte, qos byte, retained bool) error {
	// Validate inputs
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if len(payload) > maxPayloadSize {
		return fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrPublishFailed, len(payload), maxPayloadSize)
	}

	// Check connection state
	if !c.IsConnected() {
		return ErrNotConnected
	}

	// Publish with timeout
	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

// readingsMessage is the wire format for the per-tick sensor sample.
type readingsMessage struct {
	SiteID      string  `json:"site_id"`
	Elapsed     float64 `json:"elapsed_seconds"`
	Temperature float64 `json:"temperature"`
	LightLevel  int     `json:"light_level"`
	Motion      bool    `json:"motion"`
	Timestamp   string  `json:"timestamp"`
}

// PublishReadings publishes one tick's sensor sample to homesim/sensors/readings.
//
// Parameters:
//   - siteID: Site identifier from config (tags multi-instance setups)
//   - elapsed: Seconds since the loop started
//   - readings: The sampled sensor values
//
// Returns:
//   - error: nil on success, or wrapped error describing the failure
func (c *Client) PublishReadings(siteID string, elapsed float64, readings sensor.Readings) error {
	msg := readingsMessage{
		SiteID:      siteID,
		Elapsed:     elapsed,
		Temperature: readings.Temperature,
		LightLevel:  readings.LightLevel,
		Motion:      readings.Motion,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: marshalling readings: %w", ErrPublishFailed, err)
	}

	return c.Publish(Topics{}.SensorReadings(), payload, byte(c.cfg.QoS), false)
}

// PublishStateChange publishes a device state change to its state topic,
// retained so late subscribers see the device's last known state.
//
// Parameters:
//   - change: The state change emitted by a device
//
// Returns:
//   - error: nil on success, or wrapped error describing the failure
func (c *Client) PublishStateChange(change device.StateChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("%w: marshalling state change: %w", ErrPublishFailed, err)
	}

	return c.Publish(Topics{}.DeviceState(change.DeviceID), payload, byte(c.cfg.QoS), true)
}
