// Package platform classifies platform identifier strings.
package platform

import (
	"regexp"
	"runtime"
)

// Platform is a free-form operating system / user agent identifier, such as
// "MacIntel", "iPhone", "Win32", or a plain GOOS value.
type Platform string

// matchApple matches the identifiers Apple platforms report about themselves.
var matchApple = regexp.MustCompile(`(?i)mac|ipod|iphone|ipad`)

// IsApple reports whether p names an Apple-like platform. Event encoding and
// string normalization both route through this predicate so the two can never
// disagree about a platform.
func IsApple(p Platform) bool {
	return matchApple.MatchString(string(p))
}

// Current derives a Platform from the running program's GOOS. darwin and ios
// map to identifiers IsApple recognizes; every other GOOS passes through
// verbatim. Callers that need determinism (tests, normalizing config that was
// authored on another machine) should pass a literal Platform instead of
// calling Current inside their hot path.
func Current() Platform {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "ios":
		return "iPhone"
	default:
		return Platform(runtime.GOOS)
	}
}
