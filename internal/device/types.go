package device

import "time"

// Status represents a device's on/off state.
type Status string

// Status constants. The domain is closed: TurnOn and TurnOff can never
// produce any other value, so status transitions are always valid.
const (
	StatusOn  Status = "on"
	StatusOff Status = "off"
)

// Kind identifies the device variant.
type Kind string

// Kind constants.
const (
	KindLight      Kind = "light"
	KindThermostat Kind = "thermostat"
)

// Tunable domains. Requests outside these bounds are silently ignored
// by the Try* setters (the mutator reports the outcome, but callers in
// the rule engine deliberately do not check it).
const (
	// BrightnessMin and BrightnessMax bound a light's brightness (percent).
	BrightnessMin = 0
	BrightnessMax = 100

	// TargetTempMin and TargetTempMax bound a thermostat's setpoint (°C).
	TargetTempMin = 18.0
	TargetTempMax = 30.0
)

// StateChange describes one successful device mutation. Failed
// (out-of-domain) requests never produce a StateChange.
type StateChange struct {
	DeviceID string    `json:"device_id"`
	Name     string    `json:"name"`
	Kind     Kind      `json:"kind"`
	Field    string    `json:"field"` // "status", "brightness", "target_temperature"
	Value    any       `json:"value"`
	At       time.Time `json:"at"`
}

// Notifier receives StateChange events. Implementations must not block:
// they are invoked synchronously from the control loop's tick.
type Notifier func(StateChange)

// Device is the capability interface shared by the closed set of
// variants (Light, Thermostat). Variant-specific tunables are reached
// through the concrete types.
type Device interface {
	ID() string
	Name() string
	Kind() Kind
	Status() Status
	TurnOn()
	TurnOff()
}
