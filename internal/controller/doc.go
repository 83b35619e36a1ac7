// Package controller runs the simulator's control loop.
//
// Each tick samples the temperature, light, and motion sensors from a
// single source, appends one row to the recorder, applies the rule
// engine to the two devices, and feeds any telemetry sinks. Ticks
// repeat on a fixed interval until Stop is called; the stop request is
// observed at the sleep boundary, so an in-flight tick always
// completes and the recorded series is final once Done() closes.
package controller
