package influxdb

import (
	"fmt"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/sensor"
)

// WriteReading mirrors one tick's sensor sample into the bucket.
//
// The write is non-blocking; data is batched and sent asynchronously.
// If the client is disconnected the point is silently dropped: the
// recorder still holds the authoritative series.
//
// Parameters:
//   - siteID: Site identifier tag from config
//   - runID: Run identifier tag (one UUID per process)
//   - elapsed: Seconds since the loop started
//   - readings: The sampled sensor values
func (c *Client) WriteReading(siteID, runID string, elapsed float64, readings sensor.Readings) {
	if !c.IsConnected() {
		return
	}

	motion := 0
	if readings.Motion {
		motion = 1
	}

	point := write.NewPoint(
		"sensor_readings",
		map[string]string{
			"site_id": siteID,
			"run_id":  runID,
		},
		map[string]interface{}{
			"elapsed_seconds": elapsed,
			"temperature":     readings.Temperature,
			"light_level":     readings.LightLevel,
			"motion":          motion,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteStateChange mirrors one device state change into the bucket.
//
// Parameters:
//   - siteID: Site identifier tag from config
//   - runID: Run identifier tag
//   - change: The state change emitted by a device
func (c *Client) WriteStateChange(siteID, runID string, change device.StateChange) {
	if !c.IsConnected() {
		return
	}

	at := change.At
	if at.IsZero() {
		at = time.Now()
	}

	point := write.NewPoint(
		"state_changes",
		map[string]string{
			"site_id":   siteID,
			"run_id":    runID,
			"device_id": change.DeviceID,
			"kind":      string(change.Kind),
			"field":     change.Field,
		},
		map[string]interface{}{
			"value": fmt.Sprint(change.Value),
		},
		at,
	)

	c.writeAPI.WritePoint(point)
}
