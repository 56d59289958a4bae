package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1B7F3B", Dark: "#5FD787"})
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#FFD75F"})
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#FF5F5F"}).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"})
	HeaderStyle  = lipgloss.NewStyle().Bold(true)
	CurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0550AE", Dark: "#79C0FF"}).Bold(true)
)

// Initialize pins the background lipgloss assumes when picking adaptive
// colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// InitializeFromEnv applies KC_THEME ("dark" or "light") when set and leaves
// terminal detection alone otherwise.
func InitializeFromEnv() {
	switch os.Getenv("KC_THEME") {
	case "dark":
		Initialize(true)
	case "light":
		Initialize(false)
	}
}

func Success(s string) string { return SuccessStyle.Render(s) }
func Warning(s string) string { return WarningStyle.Render(s) }
func Error(s string) string { return ErrorStyle.Render(s) }
func Muted(s string) string { return MutedStyle.Render(s) }
