// Package chart renders the recorded time series as a PNG line chart.
//
// Rendering happens exactly once, after the control loop has joined,
// so the chart always reflects the complete series. A render failure
// is reported but never fatal; the run's data still exists in the
// recorder export and any enabled mirrors.
package chart
