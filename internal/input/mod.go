package input

import "strings"

// Mod is a bitmask of keyboard modifiers held while a key was pressed.
type Mod uint8

const (
	// ModNone indicates no modifiers.
	ModNone Mod = 0

	// ModShift indicates the Shift key.
	ModShift Mod = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains any of the bits in mod.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Mod) With(mod Mod) Mod {
	return m | mod
}

// String returns the modifiers joined with "+", e.g. "Ctrl+Shift".
func (m Mod) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}
