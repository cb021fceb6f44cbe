//go:build windows

package xhotkey

import (
	"golang.design/x/hotkey"

	"keychord/src/keychord"
)

// modMap maps canonical modifier tokens to Windows modifiers. Meta is the
// Windows key.
var modMap = map[string]hotkey.Modifier{
	keychord.ModControl: hotkey.ModCtrl,
	keychord.ModAlt:     hotkey.ModAlt,
	keychord.ModMeta:    hotkey.ModWin,
	keychord.ModShift:   hotkey.ModShift,
}
