//go:build js && wasm

package web

import view "github.com/s3bk/pathfinder-view"

// keyFromCode maps a KeyboardEvent.code value to its semantic key symbol.
// Codes without a mapping (modifiers, media keys) are dropped; modifiers
// travel on the event's Modifiers field instead.
func keyFromCode(code string) (view.Key, bool) {
	key, ok := domCodes[code]
	return key, ok
}

var domCodes = map[string]view.Key{
	"Digit0": view.Key0,
	"Digit1": view.Key1,
	"Digit2": view.Key2,
	"Digit3": view.Key3,
	"Digit4": view.Key4,
	"Digit5": view.Key5,
	"Digit6": view.Key6,
	"Digit7": view.Key7,
	"Digit8": view.Key8,
	"Digit9": view.Key9,

	"KeyA": view.KeyA,
	"KeyB": view.KeyB,
	"KeyC": view.KeyC,
	"KeyD": view.KeyD,
	"KeyE": view.KeyE,
	"KeyF": view.KeyF,
	"KeyG": view.KeyG,
	"KeyH": view.KeyH,
	"KeyI": view.KeyI,
	"KeyJ": view.KeyJ,
	"KeyK": view.KeyK,
	"KeyL": view.KeyL,
	"KeyM": view.KeyM,
	"KeyN": view.KeyN,
	"KeyO": view.KeyO,
	"KeyP": view.KeyP,
	"KeyQ": view.KeyQ,
	"KeyR": view.KeyR,
	"KeyS": view.KeyS,
	"KeyT": view.KeyT,
	"KeyU": view.KeyU,
	"KeyV": view.KeyV,
	"KeyW": view.KeyW,
	"KeyX": view.KeyX,
	"KeyY": view.KeyY,
	"KeyZ": view.KeyZ,

	"Escape": view.KeyEscape,

	"F1":  view.KeyF1,
	"F2":  view.KeyF2,
	"F3":  view.KeyF3,
	"F4":  view.KeyF4,
	"F5":  view.KeyF5,
	"F6":  view.KeyF6,
	"F7":  view.KeyF7,
	"F8":  view.KeyF8,
	"F9":  view.KeyF9,
	"F10": view.KeyF10,
	"F11": view.KeyF11,
	"F12": view.KeyF12,

	"Insert":   view.KeyInsert,
	"Home":     view.KeyHome,
	"Delete":   view.KeyDelete,
	"End":      view.KeyEnd,
	"PageDown": view.KeyPageDown,
	"PageUp":   view.KeyPageUp,

	"ArrowLeft":  view.KeyLeft,
	"ArrowUp":    view.KeyUp,
	"ArrowRight": view.KeyRight,
	"ArrowDown":  view.KeyDown,

	"Backspace": view.KeyBackspace,
	"Enter":     view.KeyReturn,
	"Space":     view.KeySpace,
	"Tab":       view.KeyTab,

	"Minus":        view.KeyMinus,
	"Equal":        view.KeyEquals,
	"Comma":        view.KeyComma,
	"Period":       view.KeyPeriod,
	"Slash":        view.KeySlash,
	"Backslash":    view.KeyBackslash,
	"Semicolon":    view.KeySemicolon,
	"Quote":        view.KeyApostrophe,
	"Backquote":    view.KeyGrave,
	"BracketLeft":  view.KeyLeftBracket,
	"BracketRight": view.KeyRightBracket,

	"Numpad0":        view.KeyNumpad0,
	"Numpad1":        view.KeyNumpad1,
	"Numpad2":        view.KeyNumpad2,
	"Numpad3":        view.KeyNumpad3,
	"Numpad4":        view.KeyNumpad4,
	"Numpad5":        view.KeyNumpad5,
	"Numpad6":        view.KeyNumpad6,
	"Numpad7":        view.KeyNumpad7,
	"Numpad8":        view.KeyNumpad8,
	"Numpad9":        view.KeyNumpad9,
	"NumpadAdd":      view.KeyNumpadAdd,
	"NumpadSubtract": view.KeyNumpadSubtract,
	"NumpadMultiply": view.KeyNumpadMultiply,
	"NumpadDivide":   view.KeyNumpadDivide,
	"NumpadEnter":    view.KeyNumpadEnter,
	"NumpadDecimal":  view.KeyNumpadDecimal,
}
