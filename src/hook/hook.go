// Package hook adapts github.com/robotn/gohook keyboard events into keychord
// events.
//
// gohook reports raw key transitions with no modifier flags, so callers feed
// every event through a Tracker, which maintains which modifiers are down and
// builds the encodable event for each key-down. The package never starts a
// hook itself; the caller owns gohook.Start() and its channel.
package hook

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	gohook "github.com/robotn/gohook"

	"keychord/src/keychord"
)

// Windows virtual-key rawcodes for the modifier keys, left and right variants.
const (
	vkLeftShift    = 160
	vkRightShift   = 161
	vkLeftControl  = 162
	vkRightControl = 163
	vkLeftAlt      = 164
	vkRightAlt     = 165
	vkLeftMeta     = 91
	vkRightMeta    = 92
)

// Tracker accumulates modifier state from a stream of gohook events. It is
// not safe for concurrent use; feed it from a single event channel.
type Tracker struct {
	down map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{down: make(map[string]bool)}
}

// Apply records modifier transitions. Every event from the hook channel
// should pass through here, key-ups included; non-modifier and non-key events
// are ignored.
func (t *Tracker) Apply(ev gohook.Event) {
	if ev.Kind != gohook.KeyDown && ev.Kind != gohook.KeyHold && ev.Kind != gohook.KeyUp {
		return
	}
	name := modifierForRawcode(ev.Rawcode)
	if name == "" {
		return
	}
	t.down[name] = ev.Kind != gohook.KeyUp
}

// Event translates a key-down (or key-hold) into the raw keyboard event the
// encoder consumes: current modifier flags, the physical code for the
// rawcode, and the logical key label. It reports false for events it cannot
// translate. Call Apply first so a bare modifier press is reflected in its
// own event.
func (t *Tracker) Event(ev gohook.Event) (keychord.Event, bool) {
	if ev.Kind != gohook.KeyDown && ev.Kind != gohook.KeyHold {
		return keychord.Event{}, false
	}
	code, ok := codeForRawcode(ev.Rawcode)
	if !ok {
		log.Printf("hook: no key code mapping for rawcode %d", ev.Rawcode)
		return keychord.Event{}, false
	}
	return keychord.Event{
		Control: t.down[keychord.ModControl],
		Alt:     t.down[keychord.ModAlt],
		Meta:    t.down[keychord.ModMeta],
		Shift:   t.down[keychord.ModShift],
		Code:    code,
		Key:     keyLabel(ev, code, t.down[keychord.ModShift]),
	}, true
}

// Reset clears all modifier state, e.g. after the hook channel is reopened.
func (t *Tracker) Reset() {
	t.down = make(map[string]bool)
}

func modifierForRawcode(rawcode uint16) string {
	switch rawcode {
	case vkLeftControl, vkRightControl:
		return keychord.ModControl
	case vkLeftAlt, vkRightAlt:
		return keychord.ModAlt
	case vkLeftShift, vkRightShift:
		return keychord.ModShift
	case vkLeftMeta, vkRightMeta:
		return keychord.ModMeta
	}
	return ""
}

// codeForRawcode maps a Windows virtual-key rawcode to the physical key code
// name ("KeyA", "Digit1", "F5", "Enter").
func codeForRawcode(rawcode uint16) (string, bool) {
	switch {
	case rawcode >= 'A' && rawcode <= 'Z':
		return "Key" + string(rune(rawcode)), true
	case rawcode >= '0' && rawcode <= '9':
		return "Digit" + string(rune(rawcode)), true
	case rawcode >= 112 && rawcode <= 135: // VK_F1..VK_F24
		return fmt.Sprintf("F%d", rawcode-111), true
	}

	switch rawcode {
	case vkLeftControl:
		return "ControlLeft", true
	case vkRightControl:
		return "ControlRight", true
	case vkLeftAlt:
		return "AltLeft", true
	case vkRightAlt:
		return "AltRight", true
	case vkLeftShift:
		return "ShiftLeft", true
	case vkRightShift:
		return "ShiftRight", true
	case vkLeftMeta:
		return "MetaLeft", true
	case vkRightMeta:
		return "MetaRight", true
	case 32:
		return "Space", true
	case 13:
		return "Enter", true
	case 27:
		return "Escape", true
	case 9:
		return "Tab", true
	case 8:
		return "Backspace", true
	case 46:
		return "Delete", true
	case 45:
		return "Insert", true
	case 36:
		return "Home", true
	case 35:
		return "End", true
	case 33:
		return "PageUp", true
	case 34:
		return "PageDown", true
	case 37:
		return "ArrowLeft", true
	case 38:
		return "ArrowUp", true
	case 39:
		return "ArrowRight", true
	case 40:
		return "ArrowDown", true
	case 186: // VK_OEM_1..VK_OEM_7 punctuation block
		return "Semicolon", true
	case 187:
		return "Equal", true
	case 188:
		return "Comma", true
	case 189:
		return "Minus", true
	case 190:
		return "Period", true
	case 191:
		return "Slash", true
	case 192:
		return "Backquote", true
	case 219:
		return "BracketLeft", true
	case 220:
		return "Backslash", true
	case 221:
		return "BracketRight", true
	case 222:
		return "Quote", true
	}
	return "", false
}

// punctLabels gives the unshifted character for the OEM punctuation codes,
// used when the hook reports no keychar for the event.
var punctLabels = map[string]string{
	"Semicolon":    ";",
	"Equal":        "=",
	"Comma":        ",",
	"Minus":        "-",
	"Period":       ".",
	"Slash":        "/",
	"Backquote":    "`",
	"BracketLeft":  "[",
	"Backslash":    `\`,
	"BracketRight": "]",
	"Quote":        "'",
}

// keyLabel derives the logical key label. Modifier keys report their own
// name, printable characters come from the event's keychar (cased by the
// Shift state for letter keys), everything else falls back to the code name.
func keyLabel(ev gohook.Event, code string, shift bool) string {
	if name := modifierForRawcode(ev.Rawcode); name != "" {
		return name
	}
	if code == "Space" {
		return " "
	}
	if r := ev.Keychar; r > 0 && unicode.IsPrint(r) && r != ' ' {
		if strings.HasPrefix(code, "Key") {
			if shift {
				return strings.ToUpper(string(r))
			}
			return strings.ToLower(string(r))
		}
		return string(r)
	}
	if label, ok := punctLabels[code]; ok {
		return label
	}
	return code
}
