//go:build !linux

package sink

import (
	"fmt"
	"io"
)

// New constructs the Sink backend named by kind. Only "logging" is available
// on this platform — uinput and the Wayland virtual-pointer protocol are
// Linux-specific.
func New(kind string, w io.Writer) (Sink, error) {
	switch kind {
	case "", "logging":
		return NewLogging(w), nil
	default:
		return nil, fmt.Errorf("sink: backend %q is only available on linux", kind)
	}
}
