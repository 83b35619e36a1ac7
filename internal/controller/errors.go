package controller

import "errors"

// Sentinel errors for loop construction and lifecycle.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrAlreadyRunning is returned by Start on a loop that is running.
	ErrAlreadyRunning = errors.New("controller: loop already running")

	// ErrLoopFinished is returned by Start on a loop that has already
	// run and stopped. Loops are one-shot; create a new one.
	ErrLoopFinished = errors.New("controller: loop already finished")

	// ErrMissingSource is returned by New when no sensor source is provided.
	ErrMissingSource = errors.New("controller: sensor source is required")

	// ErrMissingSensor is returned by New when a sensor is missing.
	ErrMissingSensor = errors.New("controller: all three sensors are required")

	// ErrMissingDevice is returned by New when a device is missing.
	ErrMissingDevice = errors.New("controller: light and thermostat are required")

	// ErrMissingEngine is returned by New when no rule engine is provided.
	ErrMissingEngine = errors.New("controller: rule engine is required")

	// ErrMissingRecorder is returned by New when no recorder is provided.
	ErrMissingRecorder = errors.New("controller: recorder is required")
)
