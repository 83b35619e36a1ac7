package controller

import (
	"sync"
	"time"

	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/recorder"
	"github.com/nerrad567/homesim-core/internal/rules"
	"github.com/nerrad567/homesim-core/internal/sensor"
)

// DefaultInterval is the poll cadence used when Options.Interval is
// not positive.
const DefaultInterval = 5 * time.Second

// Logger defines the logging interface for the loop.
// Compatible with logging.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}

// Sink receives each recorded tick after the rules have run.
// Sinks are invoked synchronously from the loop goroutine and must
// not block; telemetry implementations buffer internally.
type Sink func(elapsed float64, readings sensor.Readings)

// Options configures a Loop. Source, the three sensors, both devices,
// Engine, and Recorder are required; everything else has a usable
// zero value.
type Options struct {
	// Interval is the poll cadence. Non-positive falls back to
	// DefaultInterval.
	Interval time.Duration

	// Source provides raw sensor values each tick.
	Source sensor.Source

	Temperature *sensor.TemperatureSensor
	LightLevel  *sensor.LightSensor
	Motion      *sensor.MotionSensor

	Light      *device.Light
	Thermostat *device.Thermostat

	// Engine applies the decision rules once per tick.
	Engine *rules.Engine

	// Recorder receives one row per successful tick.
	Recorder *recorder.Recorder

	// Sinks receive each recorded tick (MQTT, InfluxDB). Optional.
	Sinks []Sink

	// Logger for loop events. Optional.
	Logger Logger
}

// Loop is the simulator's control loop: sample the three sensors,
// record the row, apply the rules, repeat every interval until told
// to stop.
//
// The loop owns its goroutine. Stop is cooperative: a tick already in
// progress completes, and the request is observed at the next sleep
// boundary. After Done() is closed no further rows are appended, so
// the exported series is final.
//
// A Loop is one-shot: once stopped it cannot be restarted, because the
// recorded series is final. Create a new Loop for a new run.
type Loop struct {
	interval time.Duration
	source   sensor.Source

	temperature *sensor.TemperatureSensor
	lightLevel  *sensor.LightSensor
	motion      *sensor.MotionSensor

	light      *device.Light
	thermostat *device.Thermostat

	engine   *rules.Engine
	recorder *recorder.Recorder
	sinks    []Sink
	logger   Logger

	start time.Time

	mu       sync.Mutex
	started  bool
	running  bool
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a Loop from options.
//
// Returns:
//   - *Loop: Ready to Start
//   - error: If a required dependency is missing
func New(opts Options) (*Loop, error) {
	switch {
	case opts.Source == nil:
		return nil, ErrMissingSource
	case opts.Temperature == nil || opts.LightLevel == nil || opts.Motion == nil:
		return nil, ErrMissingSensor
	case opts.Light == nil || opts.Thermostat == nil:
		return nil, ErrMissingDevice
	case opts.Engine == nil:
		return nil, ErrMissingEngine
	case opts.Recorder == nil:
		return nil, ErrMissingRecorder
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	return &Loop{
		interval:    interval,
		source:      opts.Source,
		temperature: opts.Temperature,
		lightLevel:  opts.LightLevel,
		motion:      opts.Motion,
		light:       opts.Light,
		thermostat:  opts.Thermostat,
		engine:      opts.Engine,
		recorder:    opts.Recorder,
		sinks:       opts.Sinks,
		logger:      logger,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}, nil
}

// Start launches the loop goroutine. The first tick runs immediately;
// subsequent ticks follow every interval.
//
// Returns:
//   - error: ErrAlreadyRunning if the loop is running,
//     ErrLoopFinished if it has already run and stopped
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return ErrAlreadyRunning
	}
	if l.started {
		return ErrLoopFinished
	}
	l.started = true
	l.running = true
	l.start = time.Now()

	l.logger.Info("control loop starting", "interval", l.interval)

	go l.run()

	return nil
}

// run is the loop goroutine: tick, sleep, check for stop, repeat.
func (l *Loop) run() {
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		close(l.done)
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		l.tick()

		select {
		case <-l.stop:
			l.logger.Info("control loop stopped", "rows", l.recorder.Len())
			return
		case <-ticker.C:
			// A stop that raced the ticker wins: never start a new
			// sample after a stop request.
			select {
			case <-l.stop:
				l.logger.Info("control loop stopped", "rows", l.recorder.Len())
				return
			default:
			}
		}
	}
}

// tick performs one iteration: sample all three sensors, record the
// row, apply the rules, feed the sinks.
//
// If any sensor read fails the entire tick is skipped: no row is
// recorded and no rules run, so a row always represents one complete,
// consistent sample.
func (l *Loop) tick() {
	if err := l.temperature.Read(l.source); err != nil {
		l.logger.Warn("temperature read failed, skipping tick", "error", err)
		return
	}
	if err := l.lightLevel.Read(l.source); err != nil {
		l.logger.Warn("light level read failed, skipping tick", "error", err)
		return
	}
	if err := l.motion.Read(l.source); err != nil {
		l.logger.Warn("motion read failed, skipping tick", "error", err)
		return
	}

	readings := sensor.Readings{
		Temperature: l.temperature.Value(),
		LightLevel:  l.lightLevel.Value(),
		Motion:      l.motion.Value(),
	}
	elapsed := time.Since(l.start).Seconds()

	motionFlag := 0
	if readings.Motion {
		motionFlag = 1
	}
	l.recorder.Append(recorder.Record{
		Elapsed:     elapsed,
		Temperature: readings.Temperature,
		LightLevel:  readings.LightLevel,
		Motion:      motionFlag,
	})

	l.engine.Apply(readings, l.thermostat, l.light)

	for _, sink := range l.sinks {
		sink(elapsed, readings)
	}

	l.logger.Debug("tick complete",
		"elapsed_seconds", elapsed,
		"temperature", readings.Temperature,
		"light_level", readings.LightLevel,
		"motion", readings.Motion,
	)
}

// Stop requests a cooperative shutdown. Safe to call multiple times
// and from any goroutine; only the first call has effect. Stop does
// not wait — receive from Done() to join.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Done returns a channel closed when the loop goroutine has exited.
// After it is closed no further rows are appended to the recorder.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}
