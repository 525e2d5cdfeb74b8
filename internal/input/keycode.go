// Package input defines the key, modifier and mouse button codes carried
// by input events.
package input

import (
	"fmt"
	"unicode"
)

// Key is a keyboard key code. Printable keys use the code of their
// upper-case ASCII character; special keys start at 256 so the two ranges
// never overlap. The numbering matches GLFW, which lets handlers written
// against desktop key tables work unchanged on terminal input.
type Key int

// KeyUnknown is reported for keys with no code in this table.
const KeyUnknown Key = -1

// Printable keys.
const (
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96
)

// Special keys.
const (
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269
	KeyF1        Key = 290
	KeyF2        Key = 291
	KeyF3        Key = 292
	KeyF4        Key = 293
	KeyF5        Key = 294
	KeyF6        Key = 295
	KeyF7        Key = 296
	KeyF8        Key = 297
	KeyF9        Key = 298
	KeyF10       Key = 299
	KeyF11       Key = 300
	KeyF12       Key = 301
)

var specialKeyNames = map[Key]string{
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyDown:      "Down",
	KeyUp:        "Up",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyHome:      "Home",
	KeyEnd:       "End",
}

// KeyFromRune returns the key code for a printable character.
// ASCII letters fold to their upper-case code and other Latin-1 runes keep
// their code point. Runes above Latin-1 would collide with the special
// keys and return KeyUnknown.
func KeyFromRune(r rune) Key {
	if r == ' ' {
		return KeySpace
	}
	if r < ' ' || r >= rune(KeyEscape) {
		return KeyUnknown
	}
	if r < 0x80 && unicode.IsLower(r) {
		r = unicode.ToUpper(r)
	}
	return Key(r)
}

// IsPrintable reports whether the key code stands for a character.
func (k Key) IsPrintable() bool {
	return k >= KeySpace && k < KeyEscape
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	switch {
	case k == KeySpace:
		return "Space"
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	case k.IsPrintable():
		return string(rune(k))
	default:
		return "Unknown"
	}
}
