// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for CLI output.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeStyled renders colored, icon-decorated output.
	ModeStyled
	// ModePlain renders unstyled output for CI and pipes.
	ModePlain
)

// DetectEnvironment returns the recommended output mode based on the
// environment. It checks whether stdout is a TTY and whether CI environment
// variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeStyled
}

// ResolveMode applies a user override flag to auto-detection.
// userFlag should be one of: "auto", "styled", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "styled":
		return ModeStyled
	case "plain":
		return ModePlain
	default:
		return autoDetected
	}
}
