//go:build linux

package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/libwldevices-go/virtual_pointer"
)

// WaylandPointer drives a wlr-virtual-pointer-unstable-v1 device, for
// compositors that expose it instead of (or alongside) /dev/uinput.
type WaylandPointer struct {
	manager *virtual_pointer.VirtualPointerManager
	pointer *virtual_pointer.VirtualPointer
}

// NewWaylandPointer connects to the compositor and creates one virtual
// pointer device.
func NewWaylandPointer(ctx context.Context) (*WaylandPointer, error) {
	manager, err := virtual_pointer.NewVirtualPointerManager(ctx)
	if err != nil {
		return nil, fmt.Errorf("sink: creating virtual pointer manager: %w", err)
	}
	pointer, err := manager.CreatePointer()
	if err != nil {
		manager.Close()
		return nil, fmt.Errorf("sink: creating virtual pointer: %w", err)
	}
	return &WaylandPointer{manager: manager, pointer: pointer}, nil
}

func (w *WaylandPointer) Move(dx, dy int) error {
	return w.pointer.MoveRelative(float64(dx), float64(dy))
}

func (w *WaylandPointer) Scroll(dx, dy int) error {
	if dy != 0 {
		if err := w.pointer.Axis(time.Now(), virtual_pointer.AXIS_VERTICAL_SCROLL, float64(dy)); err != nil {
			return fmt.Errorf("sink: wayland vertical axis: %w", err)
		}
		if err := w.pointer.Frame(); err != nil {
			return fmt.Errorf("sink: wayland frame: %w", err)
		}
	}
	if dx != 0 {
		if err := w.pointer.Axis(time.Now(), virtual_pointer.AXIS_HORIZONTAL_SCROLL, float64(dx)); err != nil {
			return fmt.Errorf("sink: wayland horizontal axis: %w", err)
		}
		if err := w.pointer.Frame(); err != nil {
			return fmt.Errorf("sink: wayland frame: %w", err)
		}
	}
	return nil
}

func (w *WaylandPointer) ButtonLeft(down bool) error {
	return w.button(virtual_pointer.BTN_LEFT, down)
}

func (w *WaylandPointer) ButtonRight(down bool) error {
	return w.button(virtual_pointer.BTN_RIGHT, down)
}

func (w *WaylandPointer) button(code uint32, down bool) error {
	state := virtual_pointer.ButtonStateReleased
	if down {
		state = virtual_pointer.ButtonStatePressed
	}
	if err := w.pointer.Button(time.Now(), code, state); err != nil {
		return fmt.Errorf("sink: wayland button: %w", err)
	}
	return w.pointer.Frame()
}

// Close tears down the pointer device and the manager connection.
func (w *WaylandPointer) Close() error {
	perr := w.pointer.Close()
	merr := w.manager.Close()
	if perr != nil {
		return perr
	}
	return merr
}
