package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Domain limits for device tunables. Mirrored by the device package;
// validated here so an out-of-range initial value fails at startup
// instead of being silently ignored by the first setter call.
const (
	brightnessMin = 0
	brightnessMax = 100
	targetTempMin = 18.0
	targetTempMax = 30.0
)

// Config is the root configuration structure for the simulator.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Loop     LoopConfig     `yaml:"loop"`
	Devices  DevicesConfig  `yaml:"devices"`
	Sensors  SensorsConfig  `yaml:"sensors"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	History  HistoryConfig  `yaml:"history"`
	Chart    ChartConfig    `yaml:"chart"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SiteConfig identifies the simulated home. The ID tags telemetry so
// multiple simulator instances can share a broker or bucket.
type SiteConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// LoopConfig contains control loop timing settings.
type LoopConfig struct {
	// IntervalSeconds is the poll cadence of the control loop.
	// Default: 5
	IntervalSeconds int `yaml:"interval_seconds"`

	// MotionTimeoutSeconds is how long the light stays on after the
	// last detected motion. Default: 30
	MotionTimeoutSeconds int `yaml:"motion_timeout_seconds"`
}

// DevicesConfig declares the two simulated devices and their initial tunables.
type DevicesConfig struct {
	Light      LightConfig      `yaml:"light"`
	Thermostat ThermostatConfig `yaml:"thermostat"`
}

// LightConfig contains the simulated light's identity and initial brightness.
type LightConfig struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Brightness int    `yaml:"brightness"`
}

// ThermostatConfig contains the simulated thermostat's identity and setpoint.
type ThermostatConfig struct {
	ID                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	TargetTemperature float64 `yaml:"target_temperature"`
}

// SensorsConfig contains settings for the simulated value source.
type SensorsConfig struct {
	// Seed initialises the random value source. 0 seeds from the clock,
	// giving a different run each time; any other value is reproducible.
	Seed int64 `yaml:"seed"`
}

// MQTTConfig contains MQTT broker connection settings.
// The broker is optional: the loop runs identically without it.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings (seconds).
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
	MaxAttempts  int `yaml:"max_attempts"`
}

// InfluxDBConfig contains settings for mirroring the recorded series.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// HistoryConfig contains settings for the SQLite state-change log.
type HistoryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// ChartConfig contains settings for the shutdown chart render.
type ChartConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: HOMESIM_SECTION_KEY
// For example: HOMESIM_MQTT_HOST, HOMESIM_HISTORY_PATH
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults. All optional backends
// (MQTT, InfluxDB, history) are disabled; the chart render is enabled.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			ID:   "home-001",
			Name: "Simulated Home",
		},
		Loop: LoopConfig{
			IntervalSeconds:      5,
			MotionTimeoutSeconds: 30,
		},
		Devices: DevicesConfig{
			Light: LightConfig{
				ID:         "light_1",
				Name:       "Living Room Light",
				Brightness: 50,
			},
			Thermostat: ThermostatConfig{
				ID:                "thermostat_1",
				Name:              "Main Thermostat",
				TargetTemperature: 24,
			},
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "homesim-core",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
				MaxAttempts:  0,
			},
		},
		History: HistoryConfig{
			Path:        "./data/homesim.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Chart: ChartConfig{
			Enabled: true,
			Path:    "./data/readings.png",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: HOMESIM_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Loop
	if v := os.Getenv("HOMESIM_LOOP_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Loop.IntervalSeconds = n
		}
	}

	// MQTT
	if v := os.Getenv("HOMESIM_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("HOMESIM_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("HOMESIM_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// InfluxDB
	if v := os.Getenv("HOMESIM_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}

	// History
	if v := os.Getenv("HOMESIM_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}

	// Chart
	if v := os.Getenv("HOMESIM_CHART_PATH"); v != "" {
		cfg.Chart.Path = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Site validation
	if c.Site.ID == "" {
		errs = append(errs, "site.id is required")
	}

	// Loop validation
	if c.Loop.IntervalSeconds <= 0 {
		errs = append(errs, "loop.interval_seconds must be positive")
	}
	if c.Loop.MotionTimeoutSeconds <= 0 {
		errs = append(errs, "loop.motion_timeout_seconds must be positive")
	}

	// Device validation: reject out-of-domain initial tunables at startup
	// rather than letting the first setter call silently ignore them.
	if c.Devices.Light.ID == "" {
		errs = append(errs, "devices.light.id is required")
	}
	if c.Devices.Light.Brightness < brightnessMin || c.Devices.Light.Brightness > brightnessMax {
		errs = append(errs, fmt.Sprintf("devices.light.brightness must be between %d and %d", brightnessMin, brightnessMax))
	}
	if c.Devices.Thermostat.ID == "" {
		errs = append(errs, "devices.thermostat.id is required")
	}
	if c.Devices.Thermostat.TargetTemperature < targetTempMin || c.Devices.Thermostat.TargetTemperature > targetTempMax {
		errs = append(errs, fmt.Sprintf("devices.thermostat.target_temperature must be between %g and %g", targetTempMin, targetTempMax))
	}

	// MQTT validation
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}

	// History validation
	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, "history.path is required when history is enabled")
	}

	// Chart validation
	if c.Chart.Enabled && c.Chart.Path == "" {
		errs = append(errs, "chart.path is required when chart is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Interval returns the control loop poll cadence as a Duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Loop.IntervalSeconds) * time.Second
}

// MotionTimeout returns the lighting rule's motion timeout as a Duration.
func (c *Config) MotionTimeout() time.Duration {
	return time.Duration(c.Loop.MotionTimeoutSeconds) * time.Second
}
