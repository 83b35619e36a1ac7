package sensor

import (
	"math"
	"math/rand"
	"time"
)

// Nominal distribution bounds for the simulated environment.
const (
	temperatureMin = 20.0
	temperatureMax = 30.0

	lightLevelMin = 100
	lightLevelMax = 600
)

// Source produces one sample per call, per variant-specific
// distribution. In production this would be hardware; in simulation it
// is a seeded random generator. The error returns give an unreadable
// sensor a defensible failure kind, but RandomSource never fails.
type Source interface {
	// Temperature returns a sample in [20.0, 30.0] °C, 2 decimal places.
	Temperature() (float64, error)

	// LightLevel returns a sample in [100, 600] lux.
	LightLevel() (int, error)

	// Motion returns a presence flag.
	Motion() (bool, error)
}

// RandomSource generates samples from uniform distributions using a
// single seeded math/rand generator.
//
// Thread Safety: not synchronised; the control loop is the only caller.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource.
//
// Parameters:
//   - seed: RNG seed; 0 seeds from the clock for a different run each time
//
// Returns:
//   - *RandomSource: Ready for use
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Temperature returns a uniform sample in [20.0, 30.0] °C rounded to
// 2 decimal places.
func (s *RandomSource) Temperature() (float64, error) {
	v := temperatureMin + s.rng.Float64()*(temperatureMax-temperatureMin)
	return math.Round(v*100) / 100, nil
}

// LightLevel returns a uniform sample in [100, 600] lux.
func (s *RandomSource) LightLevel() (int, error) {
	return lightLevelMin + s.rng.Intn(lightLevelMax-lightLevelMin+1), nil
}

// Motion returns true or false with equal probability.
func (s *RandomSource) Motion() (bool, error) {
	return s.rng.Intn(2) == 1, nil
}
