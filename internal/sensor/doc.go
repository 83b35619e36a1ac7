// Package sensor defines the simulated sensors (temperature, light,
// motion) and the pluggable value source they sample from.
//
// Each sensor caches its last reading; the value is undefined until the
// first Read and is overwritten unconditionally on every subsequent
// Read. Variants form a closed set behind the Sensor interface:
//
//	Temperature  float, [20.0, 30.0] °C, 2 decimal places
//	Light        int,   [100, 600] lux
//	Motion       bool
//
// The Source interface isolates value generation from the core: the
// shipped RandomSource draws from seeded uniform distributions, and
// tests substitute scripted sources for deterministic runs.
package sensor
