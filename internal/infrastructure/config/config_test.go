package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
site:
  id: "test-home"
loop:
  interval_seconds: 2
  motion_timeout_seconds: 10
devices:
  light:
    id: "light_1"
    name: "Living Room Light"
    brightness: 50
  thermostat:
    id: "thermostat_1"
    name: "Main Thermostat"
    target_temperature: 22.5
sensors:
  seed: 42
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Site.ID != "test-home" {
		t.Errorf("Site.ID = %q, want %q", cfg.Site.ID, "test-home")
	}
	if cfg.Loop.IntervalSeconds != 2 {
		t.Errorf("Loop.IntervalSeconds = %d, want 2", cfg.Loop.IntervalSeconds)
	}
	if cfg.Devices.Thermostat.TargetTemperature != 22.5 {
		t.Errorf("Thermostat.TargetTemperature = %g, want 22.5", cfg.Devices.Thermostat.TargetTemperature)
	}
	if cfg.Sensors.Seed != 42 {
		t.Errorf("Sensors.Seed = %d, want 42", cfg.Sensors.Seed)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_Defaults(t *testing.T) {
	// A minimal file inherits all defaults.
	cfg, err := Load(writeConfig(t, `site: {id: "d"}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Loop.IntervalSeconds != 5 {
		t.Errorf("default interval = %d, want 5", cfg.Loop.IntervalSeconds)
	}
	if cfg.Loop.MotionTimeoutSeconds != 30 {
		t.Errorf("default motion timeout = %d, want 30", cfg.Loop.MotionTimeoutSeconds)
	}
	if cfg.Devices.Light.ID != "light_1" {
		t.Errorf("default light id = %q, want light_1", cfg.Devices.Light.ID)
	}
	if cfg.Devices.Thermostat.TargetTemperature != 24 {
		t.Errorf("default target = %g, want 24", cfg.Devices.Thermostat.TargetTemperature)
	}
	if cfg.MQTT.Enabled || cfg.InfluxDB.Enabled || cfg.History.Enabled {
		t.Error("optional backends should default to disabled")
	}
	if !cfg.Chart.Enabled {
		t.Error("chart should default to enabled")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOMESIM_MQTT_HOST", "broker.example")
	t.Setenv("HOMESIM_LOOP_INTERVAL", "7")

	cfg, err := Load(writeConfig(t, `site: {id: "env-test"}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "broker.example" {
		t.Errorf("MQTT.Broker.Host = %q, want broker.example", cfg.MQTT.Broker.Host)
	}
	if cfg.Loop.IntervalSeconds != 7 {
		t.Errorf("Loop.IntervalSeconds = %d, want 7", cfg.Loop.IntervalSeconds)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return Default() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing site id",
			mutate:  func(c *Config) { c.Site.ID = "" },
			wantErr: true,
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Loop.IntervalSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "negative motion timeout",
			mutate:  func(c *Config) { c.Loop.MotionTimeoutSeconds = -1 },
			wantErr: true,
		},
		{
			name:    "brightness above domain",
			mutate:  func(c *Config) { c.Devices.Light.Brightness = 101 },
			wantErr: true,
		},
		{
			name:    "target temperature below domain",
			mutate:  func(c *Config) { c.Devices.Thermostat.TargetTemperature = 17.9 },
			wantErr: true,
		},
		{
			name:    "target temperature at upper bound",
			mutate:  func(c *Config) { c.Devices.Thermostat.TargetTemperature = 30 },
			wantErr: false,
		},
		{
			name:    "invalid qos",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: true,
		},
		{
			name: "history enabled without path",
			mutate: func(c *Config) {
				c.History.Enabled = true
				c.History.Path = ""
			},
			wantErr: true,
		},
		{
			name: "chart enabled without path",
			mutate: func(c *Config) {
				c.Chart.Path = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := Default()
	if cfg.Interval() != 5*time.Second {
		t.Errorf("Interval() = %v, want 5s", cfg.Interval())
	}
	if cfg.MotionTimeout() != 30*time.Second {
		t.Errorf("MotionTimeout() = %v, want 30s", cfg.MotionTimeout())
	}
}
