//go:build darwin

package xhotkey

import (
	"golang.design/x/hotkey"

	"keychord/src/keychord"
)

// modMap maps canonical modifier tokens to macOS modifiers. Alt is the
// Option key, Meta is Command.
var modMap = map[string]hotkey.Modifier{
	keychord.ModControl: hotkey.ModCtrl,
	keychord.ModAlt:     hotkey.ModOption,
	keychord.ModMeta:    hotkey.ModCmd,
	keychord.ModShift:   hotkey.ModShift,
}
