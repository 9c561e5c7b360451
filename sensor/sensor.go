// Package sensor provides Source implementations feeding the interpreter's
// HandFrame input. None of this package is part of the interpreter's contract
// — it exists so the library is runnable end to end without a production
// hand-tracking model, which this build does not attempt to provide.
package sensor

import "github.com/wavepunk/palmctl"

// Source produces one HandFrame per call. now is the caller's monotonic
// millisecond clock, matching the frame.TMs the interpreter expects.
type Source interface {
	Frame(nowMs int64) (palmctl.HandFrame, bool)
}
