package sensor

import "errors"

// ErrUnavailable is returned by a Source that cannot produce a sample.
// The control loop treats it as fatal for the affected tick only: the
// tick's rules and row are skipped and the next tick retries naturally.
// The shipped RandomSource never returns it.
var ErrUnavailable = errors.New("sensor: value source unavailable")
