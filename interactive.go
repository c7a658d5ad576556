package view

import "github.com/gogpu/gg"

// Interactive is the producer contract a viewer application implements.
// Supplying scenes is the only mandatory capability; everything else is an
// optional interface the driver probes with a type assertion at dispatch
// time, so a producer implements exactly the callbacks it cares about.
type Interactive interface {
	// Scene returns the vector scene for the session's current page.
	// It is called lazily, only when the displayed scene went stale,
	// never on every frame.
	Scene(ctx *ViewState) Scene
}

// KeyHandler receives keyboard transitions. Producers that do not
// implement it get the default bindings (see DefaultKeyBindings); a
// producer that does implement it replaces them, and may chain to
// DefaultKeyBindings explicitly.
type KeyHandler interface {
	KeyboardInput(ctx *ViewState, event *KeyEvent)
}

// CharHandler receives typed characters.
type CharHandler interface {
	CharInput(ctx *ViewState, ch rune)
}

// TextHandler receives committed text. Producers without it have text
// decomposed into repeated CharInput calls.
type TextHandler interface {
	TextInput(ctx *ViewState, text string)
}

// MouseHandler receives button transitions that did not start or end a pan
// drag. The position is in scene coordinates, mapped through the inverse
// view transform; page is the page the position refers to.
type MouseHandler interface {
	MouseInput(ctx *ViewState, page int, pos gg.Point, pressed bool)
}

// CursorHandler receives pointer movement in scene coordinates.
type CursorHandler interface {
	CursorMoved(ctx *ViewState, pos gg.Point)
}

// IdleHandler runs after the pump drained all pending events.
type IdleHandler interface {
	Idle(ctx *ViewState)
}

// Initializer runs once before the first event. The emitter may be kept
// and used from other goroutines to inject application events.
type Initializer interface {
	Init(ctx *ViewState, emitter Emitter)
}

// Exiter runs exactly once when the pump stops, regardless of which path
// triggered the stop.
type Exiter interface {
	Exit(ctx *ViewState)
}

// EventHandler receives application events injected through the emitter.
type EventHandler interface {
	Event(ctx *ViewState, payload any)
}

// Titled supplies the window title.
type Titled interface {
	Title() string
}

// SizeHinter suggests an initial logical window size.
type SizeHinter interface {
	WindowSizeHint() (gg.Point, bool)
}

// TitleOf returns the producer's window title, or a default.
func TitleOf(item Interactive) string {
	if t, ok := item.(Titled); ok {
		return t.Title()
	}
	return "pathfinder view"
}

// zoomStep is the log2 zoom increment of the default key bindings.
const zoomStep = 0.5

// DefaultKeyBindings is the binding table used for producers that do not
// implement KeyHandler:
//
//   - PageDown / PageUp with no modifier held navigate pages;
//   - primary-modifier '+' / '-' / '0' zoom in, out, and reset.
//
// A handled binding cancels the event so it is not forwarded elsewhere.
func DefaultKeyBindings(ctx *ViewState, event *KeyEvent) {
	if !event.Pressed {
		return
	}
	switch {
	case event.Modifiers.None():
		switch event.Key {
		case KeyPageDown:
			ctx.NextPage()
			event.Cancel()
		case KeyPageUp:
			ctx.PrevPage()
			event.Cancel()
		}
	case event.Modifiers.Primary():
		if !ctx.config.Zoom {
			return
		}
		switch event.Key {
		case KeyEquals, KeyNumpadAdd:
			ctx.ZoomBy(zoomStep)
			event.Cancel()
		case KeyMinus, KeyNumpadSubtract:
			ctx.ZoomBy(-zoomStep)
			event.Cancel()
		case Key0, KeyNumpad0:
			ctx.SetZoom(DefaultScale)
			event.Cancel()
		}
	}
}
