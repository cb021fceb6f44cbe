package config

import (
	"io"
	"log"
	"os"
	"testing"

	"keychord/src/keychord"
)

// chdir switches the working directory for the duration of the test,
// mirroring t.Chdir, which is unavailable on the Go toolchain in use.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad(t *testing.T) {
	// Load configures logging as a side effect; keep the log file in a
	// temporary directory and restore the default writer afterwards.
	chdir(t, t.TempDir())
	defer log.SetOutput(os.Stderr)

	// Set test environment variables
	os.Setenv("HOTKEY", "Mod+S")
	os.Setenv("HOTKEYS", "Mod+1, Control+Alt+Delete")
	os.Setenv("PLATFORM", "MacIntel")
	os.Setenv("ENABLE_FILE_LOGGING", "true")

	defer func() {
		// Clean up environment variables
		os.Unsetenv("HOTKEY")
		os.Unsetenv("HOTKEYS")
		os.Unsetenv("PLATFORM")
		os.Unsetenv("ENABLE_FILE_LOGGING")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Hotkey != "Mod+S" {
		t.Errorf("Expected Hotkey to be 'Mod+S', got '%s'", cfg.Hotkey)
	}
	if cfg.Chord != keychord.Chord("Meta+S") {
		t.Errorf("Expected Chord to be 'Meta+S', got '%s'", cfg.Chord)
	}
	if len(cfg.Extra) != 2 {
		t.Fatalf("Expected 2 extra chords, got %d", len(cfg.Extra))
	}
	if cfg.Extra[0] != keychord.Chord("Meta+1") {
		t.Errorf("Expected Extra[0] to be 'Meta+1', got '%s'", cfg.Extra[0])
	}
	if cfg.Extra[1] != keychord.Chord("Control+Alt+Delete") {
		t.Errorf("Expected Extra[1] to be 'Control+Alt+Delete', got '%s'", cfg.Extra[1])
	}
	if cfg.Platform != "MacIntel" {
		t.Errorf("Expected Platform to be 'MacIntel', got '%s'", cfg.Platform)
	}
	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be true, got %v", cfg.EnableFileLogging)
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("PLATFORM", "Win32")
	defer os.Unsetenv("PLATFORM")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Hotkey != DefaultHotkey {
		t.Errorf("Expected default hotkey '%s', got '%s'", DefaultHotkey, cfg.Hotkey)
	}
	if cfg.Chord != keychord.Chord("Control+Q") {
		t.Errorf("Expected Chord to be 'Control+Q', got '%s'", cfg.Chord)
	}
	if len(cfg.Extra) != 0 {
		t.Errorf("Expected no extra chords, got %d", len(cfg.Extra))
	}
	if cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to default to false")
	}
}

func TestLoadConfiguresLogging(t *testing.T) {
	chdir(t, t.TempDir())
	defer log.SetOutput(os.Stderr)

	os.Setenv("ENABLE_FILE_LOGGING", "true")
	defer os.Unsetenv("ENABLE_FILE_LOGGING")

	if _, err := Load(); err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if log.Writer() == io.Discard {
		t.Error("Expected a file-backed log writer when file logging is enabled")
	}
	if _, err := os.Stat("keychord_debug.log"); err != nil {
		t.Errorf("Expected the debug log file to be created: %v", err)
	}

	os.Setenv("ENABLE_FILE_LOGGING", "false")
	if _, err := Load(); err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if log.Writer() != io.Discard {
		t.Error("Expected log output to be discarded when file logging is disabled")
	}
}

func TestLoadWithOptions(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{
		PlatformOverride: "iPad",
		HotkeyOverride:   "Mod+K",
	})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Platform != "iPad" {
		t.Errorf("Expected Platform to be 'iPad', got '%s'", cfg.Platform)
	}
	if cfg.Chord != keychord.Chord("Meta+K") {
		t.Errorf("Expected Chord to be 'Meta+K', got '%s'", cfg.Chord)
	}
}
