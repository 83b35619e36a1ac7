package influxdb

import (
	"errors"
	"testing"

	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/infrastructure/config"
	"github.com/nerrad567/homesim-core/internal/sensor"
)

func TestConnect_Disabled(t *testing.T) {
	cfg := config.InfluxDBConfig{Enabled: false}

	_, err := Connect(cfg)
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Connect() with disabled config: got %v, want ErrDisabled", err)
	}
}

func TestWriteReading_Disconnected(t *testing.T) {
	// A disconnected client drops points silently; the recorder holds
	// the authoritative series.
	c := &Client{}

	c.WriteReading("home-001", "run-1", 5, sensor.Readings{Temperature: 24, LightLevel: 300})
	c.WriteStateChange("home-001", "run-1", device.StateChange{DeviceID: "light_1", Field: "status", Value: "on"})
}

func TestFlush_Disconnected(t *testing.T) {
	c := &Client{}
	c.Flush() // must not panic with nil writeAPI
}

func TestIsConnected_Default(t *testing.T) {
	c := &Client{}
	if c.IsConnected() {
		t.Error("zero-value client should not report connected")
	}
}
