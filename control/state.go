// Package control holds the enable-flag plane: the shared boolean a host
// application flips (via a hotkey, tray icon, or any other transport) to pause
// and resume gesture control, plus the guard step that feeds that boolean into
// an Interpreter safely.
package control

import "sync/atomic"

// State is a cross-goroutine enable flag. Earlier iterations of this logic used
// a mutex-guarded bool; this build follows the redesign guidance to use
// sync/atomic instead, since the flag is a single word read far more often
// than it is written (every frame vs. an occasional toggle).
type State struct {
	enabled atomic.Bool
}

// NewState constructs a State, initially enabled unless startEnabled is false.
func NewState(startEnabled bool) *State {
	s := &State{}
	s.enabled.Store(startEnabled)
	return s
}

// IsEnabled reports the current flag value.
func (s *State) IsEnabled() bool {
	return s.enabled.Load()
}

// SetEnabled sets the flag value.
func (s *State) SetEnabled(v bool) {
	s.enabled.Store(v)
}

// Toggle flips the flag and returns the new value.
func (s *State) Toggle() bool {
	for {
		old := s.enabled.Load()
		if s.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
