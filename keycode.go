package view

// Key is a semantic key symbol, decoupled from any platform scan-code
// table. Backends translate their native key codes into these symbols;
// the translation tables themselves live with the backends.
type Key int

const (
	KeyUnknown Key = iota

	// The digit row above the letters.
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyEscape

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp

	KeyLeft
	KeyUp
	KeyRight
	KeyDown

	KeyBackspace
	KeyReturn
	KeySpace
	KeyTab

	KeyMinus
	KeyEquals
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyLeftBracket
	KeyRightBracket

	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadEnter
	KeyNumpadDecimal
)

// Modifiers is the set of modifier keys held during an input event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// None reports whether no modifier is held.
func (m Modifiers) None() bool {
	return !m.Shift && !m.Ctrl && !m.Alt && !m.Meta
}

// Primary reports whether the platform's primary command modifier is held:
// Control on most platforms, Command (meta) on macOS keyboards.
func (m Modifiers) Primary() bool {
	return m.Ctrl || m.Meta
}

// KeyEvent describes one keyboard transition delivered to the producer.
// A handler that consumed the event calls Cancel so the driver and the
// backend do not forward it elsewhere (text input, browser defaults).
type KeyEvent struct {
	// Pressed is true for a key press and false for a release.
	Pressed   bool
	Key       Key
	Modifiers Modifiers

	cancelled bool
}

// Cancel marks the event as consumed.
func (e *KeyEvent) Cancel() { e.cancelled = true }

// Cancelled reports whether a handler consumed the event.
func (e *KeyEvent) Cancelled() bool { return e.cancelled }
