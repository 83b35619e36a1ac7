package device

import "time"

// Light is a dimmable smart light.
//
// Thread Safety: not synchronised. All mutation happens from the control
// loop's single goroutine; see the controller package.
type Light struct {
	id     string
	name   string
	status Status

	// brightness is the light's dim level in percent, always within
	// [BrightnessMin, BrightnessMax].
	brightness int

	notify Notifier
}

// NewLight creates a Light in the Off state.
//
// Parameters:
//   - id: Unique, immutable device identifier (e.g., "light_1")
//   - name: Human-readable name
//   - brightness: Initial dim level; clamped into the valid domain
//
// Returns:
//   - *Light: Ready for use; no notification is emitted for the initial state
func NewLight(id, name string, brightness int) *Light {
	if brightness < BrightnessMin {
		brightness = BrightnessMin
	}
	if brightness > BrightnessMax {
		brightness = BrightnessMax
	}
	return &Light{
		id:         id,
		name:       name,
		status:     StatusOff,
		brightness: brightness,
	}
}

// ID returns the immutable device identifier.
func (l *Light) ID() string { return l.id }

// Name returns the human-readable device name.
func (l *Light) Name() string { return l.name }

// Kind returns KindLight.
func (l *Light) Kind() Kind { return KindLight }

// Status returns the current on/off state.
func (l *Light) Status() Status { return l.status }

// Brightness returns the current dim level in percent.
func (l *Light) Brightness() int { return l.brightness }

// SetNotifier installs a callback for successful state changes.
// Pass nil to disable notifications.
func (l *Light) SetNotifier(n Notifier) { l.notify = n }

// TurnOn sets the status to On. Always valid.
func (l *Light) TurnOn() { l.setStatus(StatusOn) }

// TurnOff sets the status to Off. Always valid.
func (l *Light) TurnOff() { l.setStatus(StatusOff) }

// TrySetBrightness updates the dim level if it is within the valid
// domain. Out-of-domain requests are silent no-ops.
//
// Parameters:
//   - level: Requested brightness in percent
//
// Returns:
//   - bool: true if the mutation took effect, false if it was ignored
func (l *Light) TrySetBrightness(level int) bool {
	if level < BrightnessMin || level > BrightnessMax {
		return false
	}
	l.brightness = level
	l.emit("brightness", level)
	return true
}

func (l *Light) setStatus(s Status) {
	l.status = s
	l.emit("status", string(s))
}

func (l *Light) emit(field string, value any) {
	if l.notify == nil {
		return
	}
	l.notify(StateChange{
		DeviceID: l.id,
		Name:     l.name,
		Kind:     KindLight,
		Field:    field,
		Value:    value,
		At:       time.Now().UTC(),
	})
}
