package recorder

import "testing"

func TestRecorder_AppendAndExport(t *testing.T) {
	r := New()

	rows := []Record{
		{Elapsed: 0, Temperature: 26, LightLevel: 180, Motion: 1},
		{Elapsed: 5, Temperature: 24.5, LightLevel: 300, Motion: 0},
		{Elapsed: 10, Temperature: 24.5, LightLevel: 300, Motion: 0},
	}
	for _, row := range rows {
		r.Append(row)
	}

	if r.Len() != len(rows) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(rows))
	}

	exported := r.Export()
	if len(exported) != len(rows) {
		t.Fatalf("Export() length = %d, want %d", len(exported), len(rows))
	}
	for i, row := range exported {
		if row != rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, row, rows[i])
		}
	}
}

func TestRecorder_ElapsedNonDecreasing(t *testing.T) {
	r := New()
	for i := 0; i < 20; i++ {
		r.Append(Record{Elapsed: float64(i) * 2.5})
	}

	exported := r.Export()
	for i := 1; i < len(exported); i++ {
		if exported[i].Elapsed < exported[i-1].Elapsed {
			t.Fatalf("elapsed decreased at row %d: %g < %g",
				i, exported[i].Elapsed, exported[i-1].Elapsed)
		}
	}
}

func TestRecorder_ExportIsSnapshot(t *testing.T) {
	r := New()
	r.Append(Record{Elapsed: 0, Temperature: 25})

	exported := r.Export()
	exported[0].Temperature = 99

	if again := r.Export(); again[0].Temperature != 25 {
		t.Errorf("mutating the export affected the recorder: %g", again[0].Temperature)
	}
}

func TestRecorder_EmptyExport(t *testing.T) {
	r := New()
	if got := r.Export(); len(got) != 0 {
		t.Errorf("Export() on empty recorder = %d rows, want 0", len(got))
	}
}
