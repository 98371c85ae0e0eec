package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers. Every color is an AdaptiveColor so both light and
// dark terminals stay readable; faint styling is reserved for dark
// backgrounds, where it does not wash out.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Common semantic colors used across the TUI.
var (
	colorMuted  lipgloss.TerminalColor = ac("240", "243")
	colorAccent lipgloss.TerminalColor = ac("27", "62") // blue

	// Selection highlight; matches the Alabaster highlight, which reads well
	// across terminals.
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	// Completed rows and other "done" chrome.
	colorDone lipgloss.TerminalColor = ac("245", "242")

	colorError lipgloss.TerminalColor = ac("160", "196")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg)
}

func styleDone() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorDone).Strikethrough(true))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

// applyColorProfilePreference pins the color profile before the program
// starts. NO_COLOR disables styling entirely; otherwise the terminal's
// detected capabilities are taken as-is. CLICOLOR/CLICOLOR_FORCE are a
// piped-output convention and do not apply to the interactive screen.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// applyThemePreference picks the AdaptiveColor variant for terminals that
// misreport their background. TASKPLANE_TUI_THEME=light|dark overrides
// everything; failing that, COLORFGBG ("fg;bg", low bg numbers mean a
// dark background) is consulted. Any other value keeps the detector's
// answer.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKPLANE_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	v := strings.TrimSpace(os.Getenv("COLORFGBG"))
	if v == "" {
		return
	}
	parts := strings.Split(v, ";")
	if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
		lipgloss.SetHasDarkBackground(bg < 7)
	}
}
