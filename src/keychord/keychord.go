// Package keychord canonicalizes keyboard input into hotkey strings.
//
// A live keyboard event and a user-authored hotkey string are both reduced to
// the same canonical Chord form so the two can be compared for equality.
// Modifiers always appear in Control, Alt, Meta, Shift order with the key
// token last, joined by "+".
package keychord

import (
	"strings"

	"keychord/src/platform"
	"keychord/src/symbols"
)

// Chord is a canonical hotkey string. Only EncodeEvent, EncodeEventSymbols
// and Normalize produce Chord values; comparing a Chord against a raw string
// bypasses canonicalization and is almost always a bug.
type Chord string

func (c Chord) String() string { return string(c) }

// Event is a raw keyboard input event as reported by the host input system.
// Code is the physical key code ("KeyA", "Digit1"); Key is the logical key
// label it produced ("a", "A", "!", "Enter").
type Event struct {
	Control bool
	Alt     bool
	Meta    bool
	Shift   bool
	Code    string
	Key     string
}

// Modifier tokens, named as they appear in chords.
const (
	ModControl = "Control"
	ModAlt     = "Alt"
	ModMeta    = "Meta"
	ModShift   = "Shift"
)

// modifierOrder is the single ordering rule shared by EncodeEvent and
// Normalize.
var modifierOrder = [...]string{ModControl, ModAlt, ModMeta, ModShift}

func isModifierName(s string) bool {
	switch s {
	case ModControl, ModAlt, ModMeta, ModShift:
		return true
	}
	return false
}

// Physical codes for letter keys are "Key" + the letter ("KeyA".."KeyZ").
const letterCodePrefix = "Key"

// EncodeEvent converts a keyboard event into its canonical chord, using the
// default symbol plane table on Apple-like platforms.
func EncodeEvent(ev Event, p platform.Platform) Chord {
	return EncodeEventSymbols(ev, p, symbols.ForPlatform(p))
}

// EncodeEventSymbols is EncodeEvent with an explicit symbol plane table. The
// table is consulted only on Apple-like platforms; a key label present in it
// is replaced by its mapped value, everything else passes through unchanged.
func EncodeEventSymbols(ev Event, p platform.Platform, syms map[string]string) Chord {
	keys := make([]string, 0, 5)
	if ev.Control {
		keys = append(keys, ModControl)
	}
	if ev.Alt {
		keys = append(keys, ModAlt)
	}
	if ev.Meta {
		keys = append(keys, ModMeta)
	}
	if showShift(ev) {
		keys = append(keys, ModShift)
	}
	// A bare modifier keypress reports the modifier itself as the key label;
	// the modifier token appended above already covers it.
	if !isModifierName(ev.Key) {
		key := ev.Key
		if platform.IsApple(p) {
			if alt, ok := syms[key]; ok {
				key = alt
			}
		}
		keys = append(keys, key)
	}
	return Chord(strings.Join(keys, "+"))
}

// showShift suppresses the Shift token when the key label already conveys the
// capitalization: Shift+A on a letter key reports the label "A", so emitting
// "Shift+A" would be redundant. Shift over a non-letter code keeps the token
// ("Shift+!" for Shift+Digit1), as does a letter code whose label is not its
// own uppercase form.
func showShift(ev Event) bool {
	return ev.Shift && !(strings.HasPrefix(ev.Code, letterCodePrefix) && strings.ToUpper(ev.Key) == ev.Key)
}

// Normalize canonicalizes a user-authored hotkey string so that it compares
// equal to EncodeEvent output for the same combination on the same platform.
// The placeholder modifier "Mod" resolves to Meta on Apple-like platforms and
// Control elsewhere; only the first occurrence is replaced, a hotkey is
// expected to contain "Mod" at most once.
//
// Input is trusted: the last "+"-separated segment is taken as the key token
// and modifier presence is detected by substring match, so a key token that
// itself contains a modifier name is folded into the modifier list. Malformed
// strings produce a best-effort chord rather than an error.
func Normalize(hotkey string, p platform.Platform) Chord {
	localized := localizeMod(hotkey, p)
	parts := strings.Split(localized, "+")
	key := parts[len(parts)-1]
	keys := make([]string, 0, 5)
	for _, mod := range modifierOrder {
		if strings.Contains(localized, mod) {
			keys = append(keys, mod)
		}
	}
	keys = append(keys, key)
	return Chord(strings.Join(keys, "+"))
}

// localizeMod replaces the first "Mod" with the platform's primary modifier.
func localizeMod(hotkey string, p platform.Platform) string {
	mod := ModControl
	if platform.IsApple(p) {
		mod = ModMeta
	}
	return strings.Replace(hotkey, "Mod", mod, 1)
}
