//go:build linux

package sink

import (
	"fmt"

	"github.com/bendahl/uinput"
)

// Uinput drives a real virtual mouse through the kernel's /dev/uinput device.
// It is the primary Linux backend for X11 and most compositors that don't
// speak the Wayland virtual-pointer protocol directly.
type Uinput struct {
	mouse uinput.Mouse
}

// NewUinput creates and registers a virtual mouse device named name.
func NewUinput(name string) (*Uinput, error) {
	mouse, err := uinput.CreateMouse("/dev/uinput", []byte(name))
	if err != nil {
		return nil, fmt.Errorf("sink: creating uinput mouse: %w", err)
	}
	return &Uinput{mouse: mouse}, nil
}

func (u *Uinput) Move(dx, dy int) error {
	if dx > 0 {
		if err := u.mouse.MoveRight(int32(dx)); err != nil {
			return fmt.Errorf("sink: uinput move right: %w", err)
		}
	} else if dx < 0 {
		if err := u.mouse.MoveLeft(int32(-dx)); err != nil {
			return fmt.Errorf("sink: uinput move left: %w", err)
		}
	}
	if dy > 0 {
		if err := u.mouse.MoveDown(int32(dy)); err != nil {
			return fmt.Errorf("sink: uinput move down: %w", err)
		}
	} else if dy < 0 {
		if err := u.mouse.MoveUp(int32(-dy)); err != nil {
			return fmt.Errorf("sink: uinput move up: %w", err)
		}
	}
	return nil
}

func (u *Uinput) Scroll(dx, dy int) error {
	if dy != 0 {
		if err := u.mouse.Wheel(false, int32(dy)); err != nil {
			return fmt.Errorf("sink: uinput vertical wheel: %w", err)
		}
	}
	if dx != 0 {
		if err := u.mouse.Wheel(true, int32(dx)); err != nil {
			return fmt.Errorf("sink: uinput horizontal wheel: %w", err)
		}
	}
	return nil
}

func (u *Uinput) ButtonLeft(down bool) error {
	if down {
		return u.mouse.LeftPress()
	}
	return u.mouse.LeftRelease()
}

func (u *Uinput) ButtonRight(down bool) error {
	if down {
		return u.mouse.RightPress()
	}
	return u.mouse.RightRelease()
}

// Close releases the underlying uinput device.
func (u *Uinput) Close() error {
	return u.mouse.Close()
}
