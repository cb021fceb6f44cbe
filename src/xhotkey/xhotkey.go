// Package xhotkey translates canonical chords into the registration values
// used by golang.design/x/hotkey. It performs no registration itself.
package xhotkey

import (
	"fmt"
	"strings"

	"golang.design/x/hotkey"

	"keychord/src/keychord"
)

// Parse splits a canonical chord into the modifier and key values expected by
// hotkey.New. Unlike the canonicalization entry points this layer is strict:
// registration values have to be real, so unknown modifier or key tokens are
// errors. The modifier mapping is platform-specific (keymap_*.go).
func Parse(c keychord.Chord) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(string(c), "+")
	keyToken := parts[len(parts)-1]

	var mods []hotkey.Modifier
	for _, name := range parts[:len(parts)-1] {
		m, ok := modMap[name]
		if !ok {
			return nil, 0, fmt.Errorf("unknown modifier: %q (available: Control, Alt, Meta, Shift)", name)
		}
		mods = append(mods, m)
	}

	k, ok := keyMap[strings.ToLower(keyToken)]
	if !ok {
		return nil, 0, fmt.Errorf("unknown key: %q", keyToken)
	}
	return mods, k, nil
}

// keyMap maps lowercased key tokens to hotkey.Key values.
var keyMap = map[string]hotkey.Key{
	// Letters
	"a": hotkey.KeyA,
	"b": hotkey.KeyB,
	"c": hotkey.KeyC,
	"d": hotkey.KeyD,
	"e": hotkey.KeyE,
	"f": hotkey.KeyF,
	"g": hotkey.KeyG,
	"h": hotkey.KeyH,
	"i": hotkey.KeyI,
	"j": hotkey.KeyJ,
	"k": hotkey.KeyK,
	"l": hotkey.KeyL,
	"m": hotkey.KeyM,
	"n": hotkey.KeyN,
	"o": hotkey.KeyO,
	"p": hotkey.KeyP,
	"q": hotkey.KeyQ,
	"r": hotkey.KeyR,
	"s": hotkey.KeyS,
	"t": hotkey.KeyT,
	"u": hotkey.KeyU,
	"v": hotkey.KeyV,
	"w": hotkey.KeyW,
	"x": hotkey.KeyX,
	"y": hotkey.KeyY,
	"z": hotkey.KeyZ,

	// Numbers
	"0": hotkey.Key0,
	"1": hotkey.Key1,
	"2": hotkey.Key2,
	"3": hotkey.Key3,
	"4": hotkey.Key4,
	"5": hotkey.Key5,
	"6": hotkey.Key6,
	"7": hotkey.Key7,
	"8": hotkey.Key8,
	"9": hotkey.Key9,

	// Function keys
	"f1":  hotkey.KeyF1,
	"f2":  hotkey.KeyF2,
	"f3":  hotkey.KeyF3,
	"f4":  hotkey.KeyF4,
	"f5":  hotkey.KeyF5,
	"f6":  hotkey.KeyF6,
	"f7":  hotkey.KeyF7,
	"f8":  hotkey.KeyF8,
	"f9":  hotkey.KeyF9,
	"f10": hotkey.KeyF10,
	"f11": hotkey.KeyF11,
	"f12": hotkey.KeyF12,

	// Special keys
	" ":          hotkey.KeySpace,
	"space":      hotkey.KeySpace,
	"tab":        hotkey.KeyTab,
	"enter":      hotkey.KeyReturn,
	"return":     hotkey.KeyReturn,
	"escape":     hotkey.KeyEscape,
	"arrowup":    hotkey.KeyUp,
	"arrowdown":  hotkey.KeyDown,
	"arrowleft":  hotkey.KeyLeft,
	"arrowright": hotkey.KeyRight,
	"up":         hotkey.KeyUp,
	"down":       hotkey.KeyDown,
	"left":       hotkey.KeyLeft,
	"right":      hotkey.KeyRight,
}
