package mqtt

import "fmt"

// Topic prefixes for the simulator's telemetry stream.
//
// All topics use the flat scheme: homesim/{category}/...
const (
	// TopicPrefix is the base for all simulator topics.
	TopicPrefix = "homesim"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "homesim/system"
)

// Topics provides builders for simulator MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	stateTopic := topics.DeviceState("light_1")
//	// Returns: "homesim/device/light_1/state"
type Topics struct{}

// DeviceState returns the topic for a device's state changes.
//
// Example: homesim/device/light_1/state
func (Topics) DeviceState(deviceID string) string {
	return fmt.Sprintf("%s/device/%s/state", TopicPrefix, deviceID)
}

// SensorReadings returns the topic for the per-tick sensor sample.
//
// Example: homesim/sensors/readings
func (Topics) SensorReadings() string {
	return fmt.Sprintf("%s/sensors/readings", TopicPrefix)
}

// SystemStatus returns the system status topic (online/offline, LWT).
//
// Example: homesim/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllDeviceStates returns a pattern matching all device state topics.
// Exposed for external subscribers and tests; the simulator itself
// never subscribes.
//
// Pattern: homesim/device/+/state
func (Topics) AllDeviceStates() string {
	return fmt.Sprintf("%s/device/+/state", TopicPrefix)
}
