package view

import "github.com/gogpu/gg"

// Event is one backend-neutral input to the driver loop. Backends translate
// their native events into this union and feed them to [Loop.Dispatch];
// application code injects [AppEvent] values through the [Emitter].
//
// The set is sealed: all variants live in this package.
type Event interface {
	isEvent()
}

// InitEvent is delivered once, before any other event, when the backend's
// pump starts.
type InitEvent struct{}

// TimerEvent is delivered when a previously armed wake deadline expires.
// DT is the time elapsed since the previous timer wake, in seconds.
type TimerEvent struct {
	DT float32
}

// RepaintEvent asks the loop to present a frame. Backends deliver it in
// response to [Backend.RequestRepaint] (native frame callback,
// requestAnimationFrame on the web).
type RepaintEvent struct{}

// AppEvent carries an application-defined payload injected through the
// [Emitter]. The core never inspects the payload.
type AppEvent struct {
	Payload any
}

// IdleEvent is delivered when the pump has drained all pending events.
type IdleEvent struct{}

// ResizeEvent reports a new logical (DPI-independent) window size.
type ResizeEvent struct {
	Size gg.Point
}

// FocusEvent reports a window focus change.
type FocusEvent struct {
	Focused bool
}

// ScaleFactorEvent reports a device pixel density change, for example after
// dragging the window to a monitor with a different DPI. Size is the new
// logical window size.
type ScaleFactorEvent struct {
	Factor float64
	Size   gg.Point
}

// KeyboardEvent wraps a key transition. The KeyEvent is shared with the
// backend so cancellation is visible to it (preventDefault on the web).
type KeyboardEvent struct {
	Event *KeyEvent
}

// CharEvent reports a typed character after keyboard layout translation.
type CharEvent struct {
	Char rune
}

// TextEvent reports committed text, for example from an IME.
type TextEvent struct {
	Text string
}

// CursorEvent reports the pointer position in logical window coordinates.
type CursorEvent struct {
	Pos gg.Point
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ButtonEvent reports a pointer button transition at the current cursor
// position.
type ButtonEvent struct {
	Button    MouseButton
	Pressed   bool
	Modifiers Modifiers
}

// WheelEvent reports scroll input. Lines distinguishes line-based wheel
// deltas from pixel-precise trackpad deltas; the loop resolves either
// through the session's scroll-factor configuration.
type WheelEvent struct {
	Delta     gg.Point
	Lines     bool
	Modifiers Modifiers
}

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct{}

func (InitEvent) isEvent()        {}
func (TimerEvent) isEvent()       {}
func (RepaintEvent) isEvent()     {}
func (AppEvent) isEvent()         {}
func (IdleEvent) isEvent()        {}
func (ResizeEvent) isEvent()      {}
func (FocusEvent) isEvent()       {}
func (ScaleFactorEvent) isEvent() {}
func (KeyboardEvent) isEvent()    {}
func (CharEvent) isEvent()        {}
func (TextEvent) isEvent()        {}
func (CursorEvent) isEvent()      {}
func (ButtonEvent) isEvent()      {}
func (WheelEvent) isEvent()       {}
func (CloseEvent) isEvent()       {}
