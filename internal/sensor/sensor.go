package sensor

// Kind identifies the sensor variant.
type Kind string

// Kind constants.
const (
	KindTemperature Kind = "temperature"
	KindLight       Kind = "light"
	KindMotion      Kind = "motion"
)

// Sensor is the capability interface shared by the closed set of
// variants. Read pulls a fresh sample from the source and overwrites
// the cached value unconditionally; typed accessors live on the
// concrete types.
type Sensor interface {
	ID() string
	Name() string
	Kind() Kind

	// Read samples the source and caches the result. It returns an
	// error only if the source does (ErrUnavailable); the shipped
	// random source never fails.
	Read(src Source) error

	// HasReading reports whether Read has succeeded at least once.
	// Before that the cached value is undefined.
	HasReading() bool
}

// TemperatureSensor samples ambient temperature in °C.
type TemperatureSensor struct {
	id, name string
	value    float64
	read     bool
}

// NewTemperatureSensor creates a temperature sensor with no reading.
func NewTemperatureSensor(id, name string) *TemperatureSensor {
	return &TemperatureSensor{id: id, name: name}
}

// ID returns the immutable sensor identifier.
func (s *TemperatureSensor) ID() string { return s.id }

// Name returns the human-readable sensor name.
func (s *TemperatureSensor) Name() string { return s.name }

// Kind returns KindTemperature.
func (s *TemperatureSensor) Kind() Kind { return KindTemperature }

// Read samples the source, overwriting the cached value.
func (s *TemperatureSensor) Read(src Source) error {
	v, err := src.Temperature()
	if err != nil {
		return err
	}
	s.value = v
	s.read = true
	return nil
}

// HasReading reports whether a value has been read.
func (s *TemperatureSensor) HasReading() bool { return s.read }

// Value returns the last temperature reading in °C.
// Undefined before the first successful Read.
func (s *TemperatureSensor) Value() float64 { return s.value }

// LightSensor samples ambient light intensity in lux.
type LightSensor struct {
	id, name string
	value    int
	read     bool
}

// NewLightSensor creates a light sensor with no reading.
func NewLightSensor(id, name string) *LightSensor {
	return &LightSensor{id: id, name: name}
}

// ID returns the immutable sensor identifier.
func (s *LightSensor) ID() string { return s.id }

// Name returns the human-readable sensor name.
func (s *LightSensor) Name() string { return s.name }

// Kind returns KindLight.
func (s *LightSensor) Kind() Kind { return KindLight }

// Read samples the source, overwriting the cached value.
func (s *LightSensor) Read(src Source) error {
	v, err := src.LightLevel()
	if err != nil {
		return err
	}
	s.value = v
	s.read = true
	return nil
}

// HasReading reports whether a value has been read.
func (s *LightSensor) HasReading() bool { return s.read }

// Value returns the last light reading in lux.
// Undefined before the first successful Read.
func (s *LightSensor) Value() int { return s.value }

// MotionSensor samples a presence flag.
type MotionSensor struct {
	id, name string
	value    bool
	read     bool
}

// NewMotionSensor creates a motion sensor with no reading.
func NewMotionSensor(id, name string) *MotionSensor {
	return &MotionSensor{id: id, name: name}
}

// ID returns the immutable sensor identifier.
func (s *MotionSensor) ID() string { return s.id }

// Name returns the human-readable sensor name.
func (s *MotionSensor) Name() string { return s.name }

// Kind returns KindMotion.
func (s *MotionSensor) Kind() Kind { return KindMotion }

// Read samples the source, overwriting the cached value.
func (s *MotionSensor) Read(src Source) error {
	v, err := src.Motion()
	if err != nil {
		return err
	}
	s.value = v
	s.read = true
	return nil
}

// HasReading reports whether a value has been read.
func (s *MotionSensor) HasReading() bool { return s.read }

// Value returns the last motion reading.
// Undefined before the first successful Read.
func (s *MotionSensor) Value() bool { return s.value }

// Readings is one tick's worth of sensor values, handed to the rule
// engine and telemetry sinks together.
type Readings struct {
	Temperature float64 `json:"temperature"`
	LightLevel  int     `json:"light_level"`
	Motion      bool    `json:"motion"`
}
