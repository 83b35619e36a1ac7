// Package rules implements the decision logic that maps sensor readings
// to device commands.
//
// Two rules run once per tick, in fixed order:
//
//  1. Thermostat: more than 1°C above the setpoint → on (cooling);
//     more than 1°C below → on (heating); within the band → off.
//     Heating and cooling share the same On state — the simulated
//     device has no mode, and the rule deliberately preserves that.
//
//  2. Lighting: motion refreshes the last-motion timestamp, and in a
//     dark room (< 200 lux) switches an off light on at 70% brightness.
//     On motionless ticks, a light on for longer than the motion
//     timeout (default 30s) since the last motion switches off.
//
// Both rules are deterministic given the readings and device state; the
// engine's only carried state is the last-motion timestamp. The clock
// is injectable so tests can walk through the timeout.
package rules
