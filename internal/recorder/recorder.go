package recorder

import "sync"

// Record is one row of the time series: the readings captured on a
// single tick, keyed by elapsed seconds since the loop started.
type Record struct {
	// Elapsed is seconds since loop start, monotonically non-decreasing
	// across the series (the control loop guarantees it).
	Elapsed float64 `json:"elapsed_seconds"`

	Temperature float64 `json:"temperature"`
	LightLevel  int     `json:"light_level"`

	// Motion is 1 for detected motion, 0 otherwise. Stored numerically
	// so the series plots directly.
	Motion int `json:"motion"`
}

// Recorder is the append-only in-memory time series store. Rows are
// never mutated after append; insertion order is tick order.
//
// Thread Safety: all methods are safe for concurrent use. The loop is
// the only writer, but Export may be called from the foreground
// goroutine after shutdown.
type Recorder struct {
	mu   sync.Mutex
	rows []Record
}

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Append adds one row to the series. Never fails.
func (r *Recorder) Append(row Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
}

// Export returns an ordered copy of the full series. Mutating the
// returned slice does not affect the recorder.
func (r *Recorder) Export() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.rows))
	copy(out, r.rows)
	return out
}

// Len returns the number of recorded rows.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
