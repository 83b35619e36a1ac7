package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestRun_InvalidConfig verifies run fails with an invalid config path.
func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("HOMESIM_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

// TestRun_ShortSimulation runs a full simulate-and-render cycle with
// all optional backends disabled and a short cancellation window.
func TestRun_ShortSimulation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	chartPath := filepath.Join(tmpDir, "readings.png")

	configContent := `
site:
  id: test-home
  name: Test Home

loop:
  interval_seconds: 1
  motion_timeout_seconds: 30

devices:
  light:
    id: light_1
    name: Living Room Light
    brightness: 50
  thermostat:
    id: thermostat_1
    name: Main Thermostat
    target_temperature: 24

sensors:
  seed: 42

mqtt:
  enabled: false

influxdb:
  enabled: false

history:
  enabled: false

chart:
  enabled: true
  path: ` + chartPath + `

logging:
  level: error
  format: text
  output: stderr
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("HOMESIM_CONFIG", configPath)

	// Cancel after a little over one tick; run should stop the loop,
	// join it, and render the chart before returning.
	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	if err := run(ctx); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	info, err := os.Stat(chartPath)
	if err != nil {
		t.Fatalf("chart not rendered: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

// TestRun_HistoryEnabled verifies the SQLite history backend wires in.
func TestRun_HistoryEnabled(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	historyPath := filepath.Join(tmpDir, "homesim.db")

	configContent := `
site:
  id: test-home

loop:
  interval_seconds: 1

sensors:
  seed: 7

history:
  enabled: true
  path: ` + historyPath + `
  wal_mode: true
  busy_timeout: 5

chart:
  enabled: false

logging:
  level: error
  format: text
  output: stderr
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("HOMESIM_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	if err := run(ctx); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(historyPath); err != nil {
		t.Errorf("history database not created: %v", err)
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("HOMESIM_CONFIG", "")
	if got := getConfigPath(); got != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", got, defaultConfigPath)
	}

	t.Setenv("HOMESIM_CONFIG", "/etc/homesim/config.yaml")
	if got := getConfigPath(); got != "/etc/homesim/config.yaml" {
		t.Errorf("getConfigPath() = %q", got)
	}
}
