// Package recorder stores the per-tick time series: elapsed seconds,
// temperature, light level, and a 0/1 motion flag.
//
// The store is append-only and in-memory; nothing survives the process,
// by design. At shutdown the lifecycle coordinator exports the series
// once and hands it to the chart renderer.
package recorder
