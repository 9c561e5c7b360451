// Package overlay provides an optional Gio debug window showing the live
// interpreter mode, cursor position and pinch strengths, adapted from the
// preview window this project's Gio plumbing was lifted from — with the
// seam/mask HUD controls cut and replaced by a plain status readout.
package overlay

import (
	"fmt"
	"image/color"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/wavepunk/palmctl"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Snapshot is the state the overlay renders each frame. Callers push a new
// Snapshot whenever the interpreter produces one (typically once per camera
// frame); the overlay goroutine only ever reads the latest value.
type Snapshot struct {
	Mode      palmctl.Mode
	CursorX   int
	CursorY   int
	Index     float64
	Middle    float64
	Ring      float64
	Confident bool
}

// Overlay owns the window state and the latest Snapshot, guarded by a mutex
// since Push is called from the interpreter's loop goroutine while Run owns
// the Gio window event loop on a goroutine of its own.
type Overlay struct {
	mu       sync.Mutex
	snapshot Snapshot

	width, height int
	theme         *material.Theme
}

// New constructs an Overlay sized to width x height.
func New(width, height int) *Overlay {
	return &Overlay{
		width:  width,
		height: height,
		theme:  material.NewTheme(),
	}
}

// Push updates the snapshot the next frame will render. Safe to call from
// any goroutine.
func (o *Overlay) Push(s Snapshot) {
	o.mu.Lock()
	o.snapshot = s
	o.mu.Unlock()
}

func (o *Overlay) current() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot
}

// Run opens the debug window and blocks until it is closed or Escape is
// pressed. Call it from its own goroutine while app.Main holds the main OS
// thread, as cmd/palmctl does.
func (o *Overlay) Run() error {
	o.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	w := new(app.Window)
	w.Option(
		app.Title("palmctl overlay"),
		app.Size(unit.Dp(o.width), unit.Dp(o.height)),
	)
	w.Perform(system.ActionCenter)

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
				if !ok {
					break
				}
				if ke, ok := event.(key.Event); ok && ke.Name == key.NameEscape {
					w.Perform(system.ActionClose)
				}
			}

			o.layout(gtx)
			e.Frame(gtx.Ops)
			w.Invalidate()
		case app.DestroyEvent:
			return e.Err
		}
	}
}

func (o *Overlay) layout(gtx C) D {
	paint.Fill(gtx.Ops, color.NRGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xff})

	snap := o.current()
	lines := []string{
		fmt.Sprintf("mode:   %s", snap.Mode),
		fmt.Sprintf("cursor: %d, %d", snap.CursorX, snap.CursorY),
		fmt.Sprintf("pinch:  index=%.2f middle=%.2f ring=%.2f", snap.Index, snap.Middle, snap.Ring),
	}
	if !snap.Confident {
		lines = append(lines, "(low confidence)")
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		flexChildren(o.theme, lines)...,
	)
}

func flexChildren(th *material.Theme, lines []string) []layout.FlexChild {
	children := make([]layout.FlexChild, 0, len(lines))
	for _, line := range lines {
		line := line
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				lbl := material.Body1(th, line)
				lbl.Color = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe6, A: 0xff}
				return lbl.Layout(gtx)
			})
		}))
	}
	return children
}
