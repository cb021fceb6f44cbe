// Package symbols ships the default symbol plane table for Apple platforms.
//
// macOS reports the Option-layer glyph as the logical key label while Alt is
// held: Alt+D arrives with the label "∂", Alt+V with "√". The table maps those
// glyphs back to the base key name so encoded chords read "Alt+d" instead of
// "Alt+∂" and compare equal to the hotkey strings users actually write.
package symbols

import "keychord/src/platform"

// optionLayer is the US keyboard Option layer. The e, i, n and u positions
// are dead keys on macOS and never surface as a key label, so they have no
// entries.
var optionLayer = map[string]string{
	"å": "a",
	"∫": "b",
	"ç": "c",
	"∂": "d",
	"ƒ": "f",
	"©": "g",
	"˙": "h",
	"∆": "j",
	"˚": "k",
	"¬": "l",
	"µ": "m",
	"ø": "o",
	"π": "p",
	"œ": "q",
	"®": "r",
	"ß": "s",
	"†": "t",
	"√": "v",
	"∑": "w",
	"≈": "x",
	"¥": "y",
	"Ω": "z",
	"¡": "1",
	"™": "2",
	"£": "3",
	"¢": "4",
	"∞": "5",
	"§": "6",
	"¶": "7",
	"•": "8",
	"ª": "9",
	"º": "0",
}

// Table returns the default macOS Option-layer table. The map is shared
// package state; copy it before mutating.
func Table() map[string]string {
	return optionLayer
}

// ForPlatform returns the default table for Apple-like platforms and nil for
// everything else. A nil table disables substitution entirely.
func ForPlatform(p platform.Platform) map[string]string {
	if platform.IsApple(p) {
		return optionLayer
	}
	return nil
}
