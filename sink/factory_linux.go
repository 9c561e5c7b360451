//go:build linux

package sink

import (
	"context"
	"fmt"
	"io"
)

// New constructs the Sink backend named by kind: "logging" (writes a
// human-readable trace to w), "uinput" (a virtual /dev/uinput mouse) or
// "wayland" (a Wayland virtual-pointer protocol client).
func New(kind string, w io.Writer) (Sink, error) {
	switch kind {
	case "", "logging":
		return NewLogging(w), nil
	case "uinput":
		return NewUinput("palmctl")
	case "wayland":
		return NewWaylandPointer(context.Background())
	default:
		return nil, fmt.Errorf("sink: unknown backend %q", kind)
	}
}
