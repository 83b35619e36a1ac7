package rules

import (
	"time"

	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/sensor"
)

// Rule constants.
const (
	// thermostatDeadband is the ±°C band around the setpoint in which
	// the thermostat is considered stable and switched off. Boundary
	// values (exactly ±1°C) fall inside the band.
	thermostatDeadband = 1.0

	// luxThreshold is the ambient light level below which motion turns
	// the light on.
	luxThreshold = 200

	// motionBrightness is the dim level applied when motion switches
	// the light on.
	motionBrightness = 70

	// DefaultMotionTimeout keeps the light on this long after the last
	// detected motion.
	DefaultMotionTimeout = 30 * time.Second
)

// Logger defines the logging interface for the engine.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}

// Engine applies the two decision rules, in fixed order, once per tick:
// the thermostat rule then the lighting rule. Both are deterministic
// functions of the current readings and device state; the only carried
// state is the last-motion timestamp that drives the lighting timeout.
//
// Thread Safety: not synchronised. The control loop is the only caller.
type Engine struct {
	motionTimeout time.Duration
	lastMotion    time.Time
	now           func() time.Time
	logger        Logger
}

// NewEngine creates a rule engine.
//
// The last-motion timestamp starts at the current time, so a run that
// never sees motion still waits a full timeout before the off-branch
// can fire.
//
// Parameters:
//   - motionTimeout: How long the light stays on after the last motion;
//     non-positive values fall back to DefaultMotionTimeout
//
// Returns:
//   - *Engine: Ready for use
func NewEngine(motionTimeout time.Duration) *Engine {
	if motionTimeout <= 0 {
		motionTimeout = DefaultMotionTimeout
	}
	return &Engine{
		motionTimeout: motionTimeout,
		lastMotion:    time.Now(),
		now:           time.Now,
		logger:        noopLogger{},
	}
}

// SetLogger sets the logger for rule decisions.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	e.logger = logger
}

// SetClock replaces the engine's time source and resets the last-motion
// timestamp to the new clock's current time. Intended for tests that
// need to step through the motion timeout deterministically.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
	e.lastMotion = now()
}

// LastMotion returns the timestamp of the most recent detected motion.
func (e *Engine) LastMotion() time.Time {
	return e.lastMotion
}

// Apply runs both rules against one tick's readings: the thermostat
// rule first, then the lighting rule.
func (e *Engine) Apply(r sensor.Readings, thermostat *device.Thermostat, light *device.Light) {
	e.ApplyThermostat(r.Temperature, thermostat)
	e.ApplyLighting(r.Motion, r.LightLevel, light)
}

// ApplyThermostat decides the thermostat's state from the current
// temperature.
//
// Outside the ±1°C deadband the unit turns on — the same On state for
// heating and cooling, as the device does not model a mode. Within the
// band (boundaries inclusive) it turns off.
//
// The rule is a pure function of (current, target): re-applying it with
// unchanged inputs never changes the outcome.
func (e *Engine) ApplyThermostat(current float64, thermostat *device.Thermostat) {
	target := thermostat.TargetTemperature()

	switch {
	case current > target+thermostatDeadband:
		e.logger.Info("cooling needed",
			"current_temp", current,
			"target_temp", target,
		)
		thermostat.TurnOn()
	case current < target-thermostatDeadband:
		e.logger.Info("heating needed",
			"current_temp", current,
			"target_temp", target,
		)
		thermostat.TurnOn()
	default:
		e.logger.Debug("temperature stable",
			"current_temp", current,
			"target_temp", target,
		)
		thermostat.TurnOff()
	}
}

// ApplyLighting decides the light's state from the motion and ambient
// light readings.
//
// Motion always refreshes the last-motion timestamp before anything
// else; the off-branch is only reachable on motionless ticks, so the
// two can never race within a tick. A dark room (below luxThreshold)
// with motion turns an off light on at motionBrightness. Without
// motion, a light that has been on past the timeout turns off.
func (e *Engine) ApplyLighting(motion bool, lux int, light *device.Light) {
	if motion {
		e.lastMotion = e.now()
		if lux < luxThreshold && light.Status() == device.StatusOff {
			e.logger.Info("motion in dark room, turning light on",
				"lux", lux,
				"brightness", motionBrightness,
			)
			light.TurnOn()
			light.TrySetBrightness(motionBrightness)
		}
		return
	}

	if light.Status() == device.StatusOn && e.now().Sub(e.lastMotion) > e.motionTimeout {
		e.logger.Info("no motion within timeout, turning light off",
			"timeout", e.motionTimeout,
		)
		light.TurnOff()
	}
}
