//go:build linux

package xhotkey

import (
	"golang.design/x/hotkey"

	"keychord/src/keychord"
)

// modMap maps canonical modifier tokens to X11 modifiers. Mod1 is Alt and
// Mod4 is Super on stock layouts.
var modMap = map[string]hotkey.Modifier{
	keychord.ModControl: hotkey.ModCtrl,
	keychord.ModAlt:     hotkey.Mod1,
	keychord.ModMeta:    hotkey.Mod4,
	keychord.ModShift:   hotkey.ModShift,
}
