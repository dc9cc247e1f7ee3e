package albumart

import (
	"os"
	"strings"
)

// Detect returns the best available ImageProtocol for the current terminal,
// or nil if no image protocol is supported.
//
// The RIPPLE_IMAGE_PROTOCOL environment variable can override detection:
//   - "kitty": force Kitty protocol
//   - "sixel": force Sixel protocol
//   - "none": disable image display
func Detect() ImageProtocol {
	switch os.Getenv("RIPPLE_IMAGE_PROTOCOL") {
	case "kitty":
		return KittyProtocol{}
	case "sixel":
		return NewSixelProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return KittyProtocol{}
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour leaks parent terminal variables but has no Kitty support.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; Kitty graphics landed in 22.04.
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")

	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if term == "foot" || term == "foot-extra" || os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	// xterm only has sixel when built with it; treat TERM=xterm* as a hint.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
