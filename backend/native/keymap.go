package native

import (
	"github.com/hajimehoshi/ebiten/v2"

	view "github.com/s3bk/pathfinder-view"
)

// keyFromEbiten maps an ebiten key code to its semantic key symbol.
// Keys without a mapping (modifiers, media keys) are dropped; modifiers
// travel on the event's Modifiers field instead.
func keyFromEbiten(k ebiten.Key) (view.Key, bool) {
	key, ok := ebitenKeys[k]
	return key, ok
}

var ebitenKeys = map[ebiten.Key]view.Key{
	ebiten.KeyDigit0: view.Key0,
	ebiten.KeyDigit1: view.Key1,
	ebiten.KeyDigit2: view.Key2,
	ebiten.KeyDigit3: view.Key3,
	ebiten.KeyDigit4: view.Key4,
	ebiten.KeyDigit5: view.Key5,
	ebiten.KeyDigit6: view.Key6,
	ebiten.KeyDigit7: view.Key7,
	ebiten.KeyDigit8: view.Key8,
	ebiten.KeyDigit9: view.Key9,

	ebiten.KeyA: view.KeyA,
	ebiten.KeyB: view.KeyB,
	ebiten.KeyC: view.KeyC,
	ebiten.KeyD: view.KeyD,
	ebiten.KeyE: view.KeyE,
	ebiten.KeyF: view.KeyF,
	ebiten.KeyG: view.KeyG,
	ebiten.KeyH: view.KeyH,
	ebiten.KeyI: view.KeyI,
	ebiten.KeyJ: view.KeyJ,
	ebiten.KeyK: view.KeyK,
	ebiten.KeyL: view.KeyL,
	ebiten.KeyM: view.KeyM,
	ebiten.KeyN: view.KeyN,
	ebiten.KeyO: view.KeyO,
	ebiten.KeyP: view.KeyP,
	ebiten.KeyQ: view.KeyQ,
	ebiten.KeyR: view.KeyR,
	ebiten.KeyS: view.KeyS,
	ebiten.KeyT: view.KeyT,
	ebiten.KeyU: view.KeyU,
	ebiten.KeyV: view.KeyV,
	ebiten.KeyW: view.KeyW,
	ebiten.KeyX: view.KeyX,
	ebiten.KeyY: view.KeyY,
	ebiten.KeyZ: view.KeyZ,

	ebiten.KeyEscape: view.KeyEscape,

	ebiten.KeyF1:  view.KeyF1,
	ebiten.KeyF2:  view.KeyF2,
	ebiten.KeyF3:  view.KeyF3,
	ebiten.KeyF4:  view.KeyF4,
	ebiten.KeyF5:  view.KeyF5,
	ebiten.KeyF6:  view.KeyF6,
	ebiten.KeyF7:  view.KeyF7,
	ebiten.KeyF8:  view.KeyF8,
	ebiten.KeyF9:  view.KeyF9,
	ebiten.KeyF10: view.KeyF10,
	ebiten.KeyF11: view.KeyF11,
	ebiten.KeyF12: view.KeyF12,

	ebiten.KeyInsert:   view.KeyInsert,
	ebiten.KeyHome:     view.KeyHome,
	ebiten.KeyDelete:   view.KeyDelete,
	ebiten.KeyEnd:      view.KeyEnd,
	ebiten.KeyPageDown: view.KeyPageDown,
	ebiten.KeyPageUp:   view.KeyPageUp,

	ebiten.KeyArrowLeft:  view.KeyLeft,
	ebiten.KeyArrowUp:    view.KeyUp,
	ebiten.KeyArrowRight: view.KeyRight,
	ebiten.KeyArrowDown:  view.KeyDown,

	ebiten.KeyBackspace: view.KeyBackspace,
	ebiten.KeyEnter:     view.KeyReturn,
	ebiten.KeySpace:     view.KeySpace,
	ebiten.KeyTab:       view.KeyTab,

	ebiten.KeyMinus:        view.KeyMinus,
	ebiten.KeyEqual:        view.KeyEquals,
	ebiten.KeyComma:        view.KeyComma,
	ebiten.KeyPeriod:       view.KeyPeriod,
	ebiten.KeySlash:        view.KeySlash,
	ebiten.KeyBackslash:    view.KeyBackslash,
	ebiten.KeySemicolon:    view.KeySemicolon,
	ebiten.KeyQuote:        view.KeyApostrophe,
	ebiten.KeyBackquote:    view.KeyGrave,
	ebiten.KeyBracketLeft:  view.KeyLeftBracket,
	ebiten.KeyBracketRight: view.KeyRightBracket,

	ebiten.KeyNumpad0:        view.KeyNumpad0,
	ebiten.KeyNumpad1:        view.KeyNumpad1,
	ebiten.KeyNumpad2:        view.KeyNumpad2,
	ebiten.KeyNumpad3:        view.KeyNumpad3,
	ebiten.KeyNumpad4:        view.KeyNumpad4,
	ebiten.KeyNumpad5:        view.KeyNumpad5,
	ebiten.KeyNumpad6:        view.KeyNumpad6,
	ebiten.KeyNumpad7:        view.KeyNumpad7,
	ebiten.KeyNumpad8:        view.KeyNumpad8,
	ebiten.KeyNumpad9:        view.KeyNumpad9,
	ebiten.KeyNumpadAdd:      view.KeyNumpadAdd,
	ebiten.KeyNumpadSubtract: view.KeyNumpadSubtract,
	ebiten.KeyNumpadMultiply: view.KeyNumpadMultiply,
	ebiten.KeyNumpadDivide:   view.KeyNumpadDivide,
	ebiten.KeyNumpadEnter:    view.KeyNumpadEnter,
	ebiten.KeyNumpadDecimal:  view.KeyNumpadDecimal,
}
