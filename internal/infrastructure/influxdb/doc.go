// Package influxdb mirrors the simulator's time series into an
// InfluxDB v2 bucket.
//
// The mirror is optional and strictly best-effort: the in-memory
// recorder is the source of truth, and a missing or failing InfluxDB
// never affects the control loop. Writes are batched and asynchronous;
// the lifecycle coordinator flushes once at shutdown.
package influxdb
