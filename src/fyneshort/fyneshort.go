// Package fyneshort translates canonical chords into fyne desktop shortcuts,
// so a chord stored in configuration can be attached to a fyne canvas with
// AddShortcut.
package fyneshort

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"keychord/src/keychord"
)

var modMask = map[string]fyne.KeyModifier{
	keychord.ModControl: fyne.KeyModifierControl,
	keychord.ModAlt:     fyne.KeyModifierAlt,
	keychord.ModMeta:    fyne.KeyModifierSuper,
	keychord.ModShift:   fyne.KeyModifierShift,
}

// Shortcut converts a canonical chord into a desktop.CustomShortcut. Like the
// xhotkey translation this layer is strict: tokens with no fyne equivalent
// are errors.
func Shortcut(c keychord.Chord) (*desktop.CustomShortcut, error) {
	parts := strings.Split(string(c), "+")
	keyToken := parts[len(parts)-1]

	var mask fyne.KeyModifier
	for _, name := range parts[:len(parts)-1] {
		m, ok := modMask[name]
		if !ok {
			return nil, fmt.Errorf("unknown modifier: %q (available: Control, Alt, Meta, Shift)", name)
		}
		mask |= m
	}

	name, err := keyName(keyToken)
	if err != nil {
		return nil, err
	}
	return &desktop.CustomShortcut{KeyName: name, Modifier: mask}, nil
}

func keyName(token string) (fyne.KeyName, error) {
	if n, ok := keyNames[strings.ToLower(token)]; ok {
		return n, nil
	}
	if len(token) == 1 {
		c := token[0]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			return fyne.KeyName(strings.ToUpper(token)), nil
		case c >= '0' && c <= '9':
			return fyne.KeyName(token), nil
		}
	}
	return "", fmt.Errorf("unknown key: %q", token)
}

var keyNames = map[string]fyne.KeyName{
	" ":          fyne.KeySpace,
	"space":      fyne.KeySpace,
	"tab":        fyne.KeyTab,
	"enter":      fyne.KeyReturn,
	"return":     fyne.KeyReturn,
	"escape":     fyne.KeyEscape,
	"backspace":  fyne.KeyBackspace,
	"delete":     fyne.KeyDelete,
	"insert":     fyne.KeyInsert,
	"home":       fyne.KeyHome,
	"end":        fyne.KeyEnd,
	"pageup":     fyne.KeyPageUp,
	"pagedown":   fyne.KeyPageDown,
	"arrowup":    fyne.KeyUp,
	"arrowdown":  fyne.KeyDown,
	"arrowleft":  fyne.KeyLeft,
	"arrowright": fyne.KeyRight,
	"f1":         fyne.KeyF1,
	"f2":         fyne.KeyF2,
	"f3":         fyne.KeyF3,
	"f4":         fyne.KeyF4,
	"f5":         fyne.KeyF5,
	"f6":         fyne.KeyF6,
	"f7":         fyne.KeyF7,
	"f8":         fyne.KeyF8,
	"f9":         fyne.KeyF9,
	"f10":        fyne.KeyF10,
	"f11":        fyne.KeyF11,
	"f12":        fyne.KeyF12,
	";":          fyne.KeySemicolon,
	"=":          fyne.KeyEqual,
	",":          fyne.KeyComma,
	"-":          fyne.KeyMinus,
	".":          fyne.KeyPeriod,
	"/":          fyne.KeySlash,
	"`":          fyne.KeyBackTick,
	"[":          fyne.KeyLeftBracket,
	`\`:          fyne.KeyBackslash,
	"]":          fyne.KeyRightBracket,
	"'":          fyne.KeyApostrophe,
}
