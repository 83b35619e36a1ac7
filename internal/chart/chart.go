package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nerrad567/homesim-core/internal/recorder"
)

// Render dimensions.
const (
	widthInches  = 10
	heightInches = 6

	dirPermissions = 0750
)

// Series colours, matching the conventional reading palette:
// temperature red, light level orange, motion blue.
var (
	temperatureColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	lightLevelColor  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	motionColor      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// Render draws the recorded series as a line chart and writes it as a
// PNG to path. All three series share the elapsed-seconds X axis;
// motion plots as a 0/1 trace along the bottom.
//
// Parameters:
//   - rows: The exported time series (may be empty; an empty chart is
//     still rendered)
//   - path: Output file path; the directory is created if needed
//
// Returns:
//   - error: If the plot cannot be built or the file cannot be written
func Render(rows []recorder.Record, path string) error {
	p := plot.New()
	p.Title.Text = "Smart Home Sensor Readings Over Time"
	p.X.Label.Text = "Elapsed Time (seconds)"
	p.Y.Label.Text = "Reading"
	p.Add(plotter.NewGrid())

	temperature := make(plotter.XYs, len(rows))
	lightLevel := make(plotter.XYs, len(rows))
	motion := make(plotter.XYs, len(rows))
	for i, row := range rows {
		temperature[i].X = row.Elapsed
		temperature[i].Y = row.Temperature
		lightLevel[i].X = row.Elapsed
		lightLevel[i].Y = float64(row.LightLevel)
		motion[i].X = row.Elapsed
		motion[i].Y = float64(row.Motion)
	}

	for _, series := range []struct {
		name  string
		xys   plotter.XYs
		color color.RGBA
	}{
		{name: "Temperature (°C)", xys: temperature, color: temperatureColor},
		{name: "Light Level (lux)", xys: lightLevel, color: lightLevelColor},
		{name: "Motion (0/1)", xys: motion, color: motionColor},
	} {
		line, err := plotter.NewLine(series.xys)
		if err != nil {
			return fmt.Errorf("chart: building %s line: %w", series.name, err)
		}
		line.Color = series.color
		p.Add(line)
		p.Legend.Add(series.name, line)
	}
	p.Legend.Top = true

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("chart: creating output directory: %w", err)
	}

	if err := p.Save(widthInches*vg.Inch, heightInches*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: saving %s: %w", path, err)
	}

	return nil
}
