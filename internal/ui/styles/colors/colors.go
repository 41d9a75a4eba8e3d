package colors

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI Color Codes - Tokyo Night Theme
const (
	Reset = "\033[0m"
	Red   = "\033[38;2;247;118;142m" // #f7768e
	Green = "\033[38;2;158;206;106m" // #9ece6a
	Blue  = "\033[38;2;122;162;247m" // #7aa2f7
	Cyan  = "\033[38;2;125;207;255m" // #7dcfff
	Gray  = "\033[38;2;86;95;137m"   // #565f89
	Amber = "\033[38;2;224;175;104m" // #e0af68
	Dim   = "\033[2m"
)

// Lipgloss Color Names - Tokyo Night Theme Hex Values
const (
	LipglossRed     = "#f7768e"
	LipglossGreen   = "#9ece6a"
	LipglossBlue    = "#7aa2f7"
	LipglossCyan    = "#7dcfff"
	LipglossMagenta = "#bb9af7"
	LipglossWhite   = "#a9b1d6"
	LipglossGray    = "#565f89"
	LipglossAmber   = "#e0af68"
)

// Color represents a color that can be used in both ANSI and Lipgloss contexts
type Color struct {
	ANSI     string
	Lipgloss string
}

// Predefined colors for consistent theming - Tokyo Night Theme
var (
	ErrorColor   = Color{ANSI: Red, Lipgloss: LipglossRed}
	SuccessColor = Color{ANSI: Green, Lipgloss: LipglossGreen}
	AccentColor  = Color{ANSI: Blue, Lipgloss: LipglossBlue}
	ScopeColor   = Color{ANSI: Cyan, Lipgloss: LipglossCyan}
	DimColor     = Color{ANSI: Gray, Lipgloss: LipglossGray}
	BorderColor  = Color{ANSI: Gray, Lipgloss: LipglossGray}
	HeaderColor  = Color{ANSI: Blue, Lipgloss: LipglossBlue}
	PendingColor = Color{ANSI: Amber, Lipgloss: LipglossAmber} // chord waiting for its next step
	WarningColor = Color{ANSI: Amber, Lipgloss: LipglossAmber}
)

// GetLipglossColor returns a lipgloss color for the given Color
func (c Color) GetLipglossColor() lipgloss.Color {
	return lipgloss.Color(c.Lipgloss)
}

// CreateSeparator creates a separator line with the given width and character
func CreateSeparator(width int, char string) string {
	return DimColor.ANSI + strings.Repeat(char, width) + Reset
}

// CreateColoredText creates colored text with automatic reset
func CreateColoredText(text string, color Color) string {
	return color.ANSI + text + Reset
}

// CreateDimText creates text with dim/faint styling
func CreateDimText(text string) string {
	return Dim + text + Reset
}
