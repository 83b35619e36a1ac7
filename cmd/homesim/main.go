// Homesim - Smart Home Simulator
//
// This is the main entry point for the homesim application: a
// single-process simulation of a small smart home. A control loop
// samples three virtual sensors on a fixed interval, drives a
// thermostat and a light through simple decision rules, and records
// every tick. On shutdown the recorded series is rendered as a chart.
//
// Optional backends (MQTT telemetry, InfluxDB mirror, SQLite state
// history) are wired in when enabled in config and never affect the
// loop when absent.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/nerrad567/homesim-core/internal/chart"
	"github.com/nerrad567/homesim-core/internal/controller"
	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/history"
	"github.com/nerrad567/homesim-core/internal/infrastructure/config"
	"github.com/nerrad567/homesim-core/internal/infrastructure/database"
	"github.com/nerrad567/homesim-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/homesim-core/internal/infrastructure/logging"
	"github.com/nerrad567/homesim-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/homesim-core/internal/recorder"
	"github.com/nerrad567/homesim-core/internal/rules"
	"github.com/nerrad567/homesim-core/internal/sensor"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting homesim",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// One identifier per process; tags everything this run emits.
	runID := uuid.NewString()
	log = log.With("run_id", runID)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Build the simulated home
	light := device.NewLight(cfg.Devices.Light.ID, cfg.Devices.Light.Name, cfg.Devices.Light.Brightness)
	thermostat := device.NewThermostat(cfg.Devices.Thermostat.ID, cfg.Devices.Thermostat.Name, cfg.Devices.Thermostat.TargetTemperature)

	source := sensor.NewRandomSource(cfg.Sensors.Seed)
	temperature := sensor.NewTemperatureSensor("temp_1", "Temperature Sensor")
	lightLevel := sensor.NewLightSensor("light_sensor_1", "Light Sensor")
	motion := sensor.NewMotionSensor("motion_1", "Motion Sensor")

	engine := rules.NewEngine(cfg.MotionTimeout())
	engine.SetLogger(log.With("component", "rules"))

	rec := recorder.New()

	// Connect to MQTT broker (optional)
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetLogger(log)
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB (optional)
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
	} else {
		log.Info("InfluxDB disabled")
	}

	// Open state-change history (optional)
	var historyStore *history.Store
	if cfg.History.Enabled {
		historyStore, err = history.Open(database.Config{
			Path:        cfg.History.Path,
			WALMode:     cfg.History.WALMode,
			BusyTimeout: cfg.History.BusyTimeout,
		}, runID)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer func() {
			log.Info("closing history store")
			if closeErr := historyStore.Close(); closeErr != nil {
				log.Error("error closing history", "error", closeErr)
			}
		}()
		log.Info("history store opened", "path", cfg.History.Path)
	} else {
		log.Info("history disabled")
	}

	// Fan device state changes out to the log and enabled backends.
	notifier := buildNotifier(cfg, log, mqttClient, influxClient, historyStore, runID)
	light.SetNotifier(notifier)
	thermostat.SetNotifier(notifier)

	// Per-tick telemetry sinks
	var sinks []controller.Sink
	if mqttClient != nil {
		sinks = append(sinks, func(elapsed float64, readings sensor.Readings) {
			if pubErr := mqttClient.PublishReadings(cfg.Site.ID, elapsed, readings); pubErr != nil {
				log.Warn("publishing readings failed", "error", pubErr)
			}
		})
	}
	if influxClient != nil {
		sinks = append(sinks, func(elapsed float64, readings sensor.Readings) {
			influxClient.WriteReading(cfg.Site.ID, runID, elapsed, readings)
		})
	}

	loop, err := controller.New(controller.Options{
		Interval:    cfg.Interval(),
		Source:      source,
		Temperature: temperature,
		LightLevel:  lightLevel,
		Motion:      motion,
		Light:       light,
		Thermostat:  thermostat,
		Engine:      engine,
		Recorder:    rec,
		Sinks:       sinks,
		Logger:      log.With("component", "controller"),
	})
	if err != nil {
		return fmt.Errorf("creating control loop: %w", err)
	}

	if err := loop.Start(); err != nil {
		return fmt.Errorf("starting control loop: %w", err)
	}
	log.Info("simulation running", "interval", cfg.Interval())

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info("shutdown signal received, stopping loop")

	// Cooperative stop: the in-flight tick completes, then the loop
	// exits at the sleep boundary. Join before touching the series.
	loop.Stop()
	<-loop.Done()

	rows := rec.Export()
	log.Info("simulation stopped", "ticks", len(rows))

	if influxClient != nil {
		influxClient.Flush()
	}

	// Render the chart exactly once, from the final series.
	if cfg.Chart.Enabled {
		if renderErr := chart.Render(rows, cfg.Chart.Path); renderErr != nil {
			log.Error("chart render failed", "error", renderErr)
		} else {
			log.Info("chart rendered", "path", cfg.Chart.Path, "rows", len(rows))
		}
	}

	log.Info("homesim stopped")
	return nil
}

// buildNotifier fans a device state change out to the log and every
// enabled backend. Devices invoke it synchronously from the loop's
// tick, so each branch is quick or internally buffered.
func buildNotifier(cfg *config.Config, log *logging.Logger, mqttClient *mqtt.Client, influxClient *influxdb.Client, historyStore *history.Store, runID string) device.Notifier {
	return func(change device.StateChange) {
		log.Info("device state changed",
			"device_id", change.DeviceID,
			"field", change.Field,
			"value", change.Value,
		)

		if mqttClient != nil {
			if err := mqttClient.PublishStateChange(change); err != nil {
				log.Warn("publishing state change failed", "error", err)
			}
		}
		if influxClient != nil {
			influxClient.WriteStateChange(cfg.Site.ID, runID, change)
		}
		if historyStore != nil {
			// Background context: the shutdown signal cancels the run
			// context, but ticks in flight still record their changes.
			if err := historyStore.Record(context.Background(), change); err != nil {
				log.Warn("recording state change failed", "error", err)
			}
		}
	}
}

// getConfigPath returns the configuration file path.
// Uses HOMESIM_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("HOMESIM_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
