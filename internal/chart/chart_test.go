package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nerrad567/homesim-core/internal/recorder"
)

func TestRender(t *testing.T) {
	rows := []recorder.Record{
		{Elapsed: 0, Temperature: 26, LightLevel: 180, Motion: 1},
		{Elapsed: 5, Temperature: 24.5, LightLevel: 300, Motion: 0},
		{Elapsed: 10, Temperature: 23.8, LightLevel: 420, Motion: 0},
		{Elapsed: 15, Temperature: 24.1, LightLevel: 150, Motion: 1},
	}
	path := filepath.Join(t.TempDir(), "readings.png")

	if err := Render(rows, path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestRender_EmptySeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	if err := Render(nil, path); err != nil {
		t.Fatalf("Render() with empty series error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}

func TestRender_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "readings.png")

	if err := Render(nil, path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}
