package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"keychord/src/keychord"
	"keychord/src/logutil"
	"keychord/src/platform"
)

const (
	// DefaultHotkey uses the platform-agnostic "Mod" placeholder so one
	// default works everywhere.
	DefaultHotkey = "Mod+Q"
	EnvPathEnvVar = "KEYCHORD_ENV"
)

type LoadOptions struct {
	PlatformOverride string
	HotkeyOverride   string
}

type Config struct {
	Hotkey            string           // primary binding as authored
	Chord             keychord.Chord   // canonical form of Hotkey
	Extra             []keychord.Chord // canonical forms of the HOTKEYS list
	Platform          platform.Platform
	EnableFileLogging bool
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use KEYCHORD_ENV env var as a path to a config file
	// Plain environment variables always win over .env values.
	envPath := resolveEnvPath()
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	plat := resolvePlatform(opts)
	hotkey := resolveHotkey(opts)

	// Parse additional bindings from a comma-separated list, each normalized
	// against the resolved platform.
	var extra []keychord.Chord
	if hotkeysStr := os.Getenv("HOTKEYS"); hotkeysStr != "" {
		for _, hk := range strings.Split(hotkeysStr, ",") {
			if trimmed := strings.TrimSpace(hk); trimmed != "" {
				extra = append(extra, keychord.Normalize(trimmed, plat))
			}
		}
	}

	cfg := &Config{
		Hotkey:            hotkey,
		Chord:             keychord.Normalize(hotkey, plat),
		Extra:             extra,
		Platform:          plat,
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
	}

	logutil.Setup(cfg.EnableFileLogging)

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

// resolvePlatform prefers the explicit override, then the PLATFORM variable,
// then the running program's platform. The resolved value is stored on the
// Config so every later normalization uses the same platform.
func resolvePlatform(opts LoadOptions) platform.Platform {
	if override := strings.TrimSpace(opts.PlatformOverride); override != "" {
		return platform.Platform(override)
	}
	if v := strings.TrimSpace(os.Getenv("PLATFORM")); v != "" {
		return platform.Platform(v)
	}
	return platform.Current()
}

func resolveHotkey(opts LoadOptions) string {
	if override := strings.TrimSpace(opts.HotkeyOverride); override != "" {
		return override
	}
	return getEnvWithDefault("HOTKEY", DefaultHotkey)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
