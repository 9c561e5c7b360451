package sink

import (
	"fmt"
	"io"

	"github.com/wavepunk/palmctl/utils"
)

// Logging is a Sink that prints each action as a decorated status line instead
// of driving a real device. It is the default backend for demos and tests.
type Logging struct {
	w io.Writer
}

// NewLogging constructs a Logging sink writing to w.
func NewLogging(w io.Writer) *Logging {
	return &Logging{w: w}
}

func (l *Logging) Move(dx, dy int) error {
	fmt.Fprintln(l.w, utils.DecorateText(fmt.Sprintf("move  dx=%d dy=%d", dx, dy), utils.DefaultMessage))
	return nil
}

func (l *Logging) Scroll(dx, dy int) error {
	fmt.Fprintln(l.w, utils.DecorateText(fmt.Sprintf("scroll dx=%d dy=%d", dx, dy), utils.StatusMessage))
	return nil
}

func (l *Logging) ButtonLeft(down bool) error {
	fmt.Fprintln(l.w, utils.DecorateText(fmt.Sprintf("left   down=%v", down), utils.SuccessMessage))
	return nil
}

func (l *Logging) ButtonRight(down bool) error {
	fmt.Fprintln(l.w, utils.DecorateText(fmt.Sprintf("right  down=%v", down), utils.SuccessMessage))
	return nil
}
