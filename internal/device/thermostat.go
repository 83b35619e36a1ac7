package device

import "time"

// Thermostat is a climate device with a target temperature setpoint.
//
// The on/off status models the unit actively heating or cooling; the
// rule engine does not distinguish the two modes (see rules package).
//
// Thread Safety: not synchronised. All mutation happens from the control
// loop's single goroutine; see the controller package.
type Thermostat struct {
	id     string
	name   string
	status Status

	// target is the setpoint in °C, always within
	// [TargetTempMin, TargetTempMax].
	target float64

	notify Notifier
}

// NewThermostat creates a Thermostat in the Off state.
//
// Parameters:
//   - id: Unique, immutable device identifier (e.g., "thermostat_1")
//   - name: Human-readable name
//   - target: Initial setpoint in °C; clamped into the valid domain
//
// Returns:
//   - *Thermostat: Ready for use; no notification is emitted for the initial state
func NewThermostat(id, name string, target float64) *Thermostat {
	if target < TargetTempMin {
		target = TargetTempMin
	}
	if target > TargetTempMax {
		target = TargetTempMax
	}
	return &Thermostat{
		id:     id,
		name:   name,
		status: StatusOff,
		target: target,
	}
}

// ID returns the immutable device identifier.
func (t *Thermostat) ID() string { return t.id }

// Name returns the human-readable device name.
func (t *Thermostat) Name() string { return t.name }

// Kind returns KindThermostat.
func (t *Thermostat) Kind() Kind { return KindThermostat }

// Status returns the current on/off state.
func (t *Thermostat) Status() Status { return t.status }

// TargetTemperature returns the current setpoint in °C.
func (t *Thermostat) TargetTemperature() float64 { return t.target }

// SetNotifier installs a callback for successful state changes.
// Pass nil to disable notifications.
func (t *Thermostat) SetNotifier(n Notifier) { t.notify = n }

// TurnOn sets the status to On. Always valid.
func (t *Thermostat) TurnOn() { t.setStatus(StatusOn) }

// TurnOff sets the status to Off. Always valid.
func (t *Thermostat) TurnOff() { t.setStatus(StatusOff) }

// TrySetTargetTemperature updates the setpoint if it is within the
// valid domain. Out-of-domain requests are silent no-ops.
//
// Parameters:
//   - temp: Requested setpoint in °C
//
// Returns:
//   - bool: true if the mutation took effect, false if it was ignored
func (t *Thermostat) TrySetTargetTemperature(temp float64) bool {
	if temp < TargetTempMin || temp > TargetTempMax {
		return false
	}
	t.target = temp
	t.emit("target_temperature", temp)
	return true
}

func (t *Thermostat) setStatus(s Status) {
	t.status = s
	t.emit("status", string(s))
}

func (t *Thermostat) emit(field string, value any) {
	if t.notify == nil {
		return
	}
	t.notify(StateChange{
		DeviceID: t.id,
		Name:     t.name,
		Kind:     KindThermostat,
		Field:    field,
		Value:    value,
		At:       time.Now().UTC(),
	})
}
