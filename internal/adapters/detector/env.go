// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/zerr"
)

// LogFormat represents how log records are rendered.
type LogFormat int

const (
	// FormatAuto picks a format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored single-line records for humans.
	FormatPretty
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// DetectEnvironment returns the recommended log format.
// CI gets JSON records. Everywhere else, including redirected stderr, a failure
// stays a single human-readable line; the pretty output drops colors itself
// when it is not writing to a terminal.
func DetectEnvironment() LogFormat {
	if isCI() {
		return FormatJSON
	}
	return FormatPretty
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveLogFormat applies the --log-format flag to the auto-detected format.
// userFlag should be one of "auto", "pretty", "json", or empty.
func ResolveLogFormat(autoDetected LogFormat, userFlag string) (LogFormat, error) {
	switch userFlag {
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "auto", "":
		return autoDetected, nil
	default:
		return FormatAuto, zerr.With(domain.ErrInvalidLogFormat, "log_format", userFlag)
	}
}
