package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Podium: medal colors for ranks 1-3
	colorGold   = color.New(color.FgYellow, color.Bold)
	colorSilver = color.New(color.FgWhite, color.Bold)
	colorBronze = color.New(color.FgRed)

	// Trends
	colorUp   = color.New(color.FgGreen)
	colorDown = color.New(color.FgRed)

	// Server status
	colorOnline  = color.New(color.FgGreen, color.Bold)
	colorOffline = color.New(color.FgRed, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// medalColor returns the color for podium ranks, or nil below the podium.
func medalColor(rank int) *color.Color {
	switch rank {
	case 1:
		return colorGold
	case 2:
		return colorSilver
	case 3:
		return colorBronze
	default:
		return nil
	}
}

// formatServer formats the server status badge.
func formatServer(online bool) string {
	if online {
		return colorOnline.Sprint("● online")
	}
	return colorOffline.Sprint("● offline")
}
