// Package mqtt provides the simulator's optional broker telemetry.
//
// The stream is publish-only: per-tick sensor readings go to
// homesim/sensors/readings and device state changes to
// homesim/device/{id}/state (retained). The control loop never
// subscribes and never blocks on the broker; when mqtt is disabled in
// config the package is simply not constructed.
//
// Connection management follows the usual paho pattern: auto-reconnect
// with exponential backoff, a retained online/offline status message on
// homesim/system/status, and an LWT so dashboards can tell a crash from
// a graceful shutdown.
package mqtt
