package colors

import "github.com/charmbracelet/lipgloss"

// === Color Palette ===
var (
	NeonPurple = lipgloss.AdaptiveColor{Light: "#5d40c9", Dark: "#bd93f9"}
	NeonPink   = lipgloss.AdaptiveColor{Light: "#d10074", Dark: "#ff79c6"}
	NeonCyan   = lipgloss.AdaptiveColor{Light: "#0073a8", Dark: "#8be9fd"}
	DarkGray   = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#282a36"} // Background
	Gray       = lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#44475a"} // Borders
	LightGray  = lipgloss.AdaptiveColor{
		Light: "#4a4a4a",
		Dark:  "#a9b1d6",
	} // Secondary text
	White = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#f8f8f2"}
)

// === Slider Colors ===
var (
	Track       = Gray
	HandleStart = NeonCyan
	HandleEnd   = NeonPink
	Active      = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#50fa7b"} // handle being dragged
	Warning     = lipgloss.AdaptiveColor{Light: "#f57c00", Dark: "#ffb86c"}
)

// === Fill Gradient ===
var (
	FillStart = lipgloss.AdaptiveColor{Light: "#0073a8", Dark: "#8be9fd"} // Cyan
	FillEnd   = lipgloss.AdaptiveColor{Light: "#d10074", Dark: "#ff79c6"} // Pink
)

// Resolve picks the light or dark variant for the current background.
func Resolve(c lipgloss.AdaptiveColor) string {
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}
