package fyneshort

import (
	"testing"

	"fyne.io/fyne/v2"

	"keychord/src/keychord"
)

func TestShortcut(t *testing.T) {
	tests := []struct {
		chord    keychord.Chord
		key      fyne.KeyName
		modifier fyne.KeyModifier
	}{
		{"Control+Shift+S", fyne.KeyS, fyne.KeyModifierControl | fyne.KeyModifierShift},
		{"Meta+ArrowLeft", fyne.KeyLeft, fyne.KeyModifierSuper},
		{"Control+1", fyne.Key1, fyne.KeyModifierControl},
		{"Alt+F4", fyne.KeyF4, fyne.KeyModifierAlt},
		{"Escape", fyne.KeyEscape, 0},
		{"Control+ ", fyne.KeySpace, fyne.KeyModifierControl},
		{"Control+,", fyne.KeyComma, fyne.KeyModifierControl},
		{"Meta+/", fyne.KeySlash, fyne.KeyModifierSuper},
	}

	for _, tt := range tests {
		t.Run(string(tt.chord), func(t *testing.T) {
			sc, err := Shortcut(tt.chord)
			if err != nil {
				t.Fatalf("Shortcut(%q) failed: %v", tt.chord, err)
			}
			if sc.KeyName != tt.key {
				t.Errorf("KeyName = %q, expected %q", sc.KeyName, tt.key)
			}
			if sc.Modifier != tt.modifier {
				t.Errorf("Modifier = %v, expected %v", sc.Modifier, tt.modifier)
			}
		})
	}
}

func TestShortcutErrors(t *testing.T) {
	tests := []struct {
		name  string
		chord keychord.Chord
	}{
		{"unknown modifier", "Hyper+X"},
		{"unknown key", "Control+!"},
		{"multi-rune key", "Control+💥"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Shortcut(tt.chord); err == nil {
				t.Errorf("Shortcut(%q) succeeded, expected an error", tt.chord)
			}
		})
	}
}
