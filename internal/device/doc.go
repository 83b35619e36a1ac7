// Package device defines the simulated devices: a dimmable Light and a
// Thermostat with a temperature setpoint.
//
// The variants form a closed set dispatched through the Device
// capability interface rather than inheritance. On/off transitions are
// always valid; tunable updates (brightness, target temperature) go
// through result-returning Try* mutators that silently ignore requests
// outside the variant's domain:
//
//	Light brightness:             [0, 100] percent
//	Thermostat target temperature: [18, 30] °C
//
// Every successful mutation emits a StateChange through the optional
// Notifier, which downstream code fans out to logging, MQTT telemetry,
// and the SQLite state-change history. Rejected requests emit nothing.
//
// Devices are created once at startup and mutated only by the rule
// engine from the control loop's single goroutine, so no locking is
// carried here.
package device
