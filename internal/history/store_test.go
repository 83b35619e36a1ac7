package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/infrastructure/database"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := database.Config{
		Path:        filepath.Join(t.TempDir(), "history.db"),
		WALMode:     true,
		BusyTimeout: 5,
	}

	store, err := Open(cfg, "run-test")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	changes := []device.StateChange{
		{DeviceID: "light_1", Name: "Living Room Light", Kind: device.KindLight, Field: "status", Value: "on", At: base},
		{DeviceID: "light_1", Name: "Living Room Light", Kind: device.KindLight, Field: "brightness", Value: 70, At: base.Add(time.Second)},
		{DeviceID: "light_1", Name: "Living Room Light", Kind: device.KindLight, Field: "status", Value: "off", At: base.Add(40 * time.Second)},
	}
	for _, change := range changes {
		if err := store.Record(ctx, change); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	entries, err := store.Recent(ctx, "light_1", 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != len(changes) {
		t.Fatalf("Recent() returned %d entries, want %d", len(entries), len(changes))
	}

	// Newest first.
	if entries[0].Field != "status" || entries[0].Value != "off" {
		t.Errorf("entries[0] = %s/%s, want status/off", entries[0].Field, entries[0].Value)
	}
	if entries[1].Value != "70" {
		t.Errorf("entries[1].Value = %q, want \"70\"", entries[1].Value)
	}
	if entries[0].RunID != "run-test" {
		t.Errorf("RunID = %q, want run-test", entries[0].RunID)
	}
}

func TestStore_RecordRequiresDeviceID(t *testing.T) {
	store := openTestStore(t)

	err := store.Record(context.Background(), device.StateChange{Field: "status", Value: "on"})
	if err == nil {
		t.Error("Record() with empty device id should fail")
	}
}

func TestStore_RecentFiltersByDevice(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	now := time.Now()
	store.Record(ctx, device.StateChange{DeviceID: "light_1", Name: "L", Kind: device.KindLight, Field: "status", Value: "on", At: now})
	store.Record(ctx, device.StateChange{DeviceID: "thermostat_1", Name: "T", Kind: device.KindThermostat, Field: "status", Value: "on", At: now})

	entries, err := store.Recent(ctx, "thermostat_1", 0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Recent() returned %d entries, want 1", len(entries))
	}
	if entries[0].Kind != string(device.KindThermostat) {
		t.Errorf("Kind = %q, want thermostat", entries[0].Kind)
	}
}

func TestStore_RecentLimitClamped(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 5; i++ {
		store.Record(ctx, device.StateChange{
			DeviceID: "light_1", Name: "L", Kind: device.KindLight,
			Field: "brightness", Value: i, At: now.Add(time.Duration(i) * time.Second),
		})
	}

	entries, err := store.Recent(ctx, "light_1", 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Recent(limit=2) returned %d entries", len(entries))
	}
}
