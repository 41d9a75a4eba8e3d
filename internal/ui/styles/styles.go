package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inference-gateway/keychord/internal/ui/styles/colors"
)

// CommonStyles contains reusable lipgloss styles
type CommonStyles struct {
	Header          lipgloss.Style
	Border          lipgloss.Style
	Separator       lipgloss.Style
	Scope           lipgloss.Style
	Combo           lipgloss.Style
	Action          lipgloss.Style
	Pending         lipgloss.Style
	HelpBar         lipgloss.Style
	PlaceholderText lipgloss.Style
}

// NewCommonStyles creates a new set of common styles with consistent theming
func NewCommonStyles() *CommonStyles {
	return &CommonStyles{
		Header: lipgloss.NewStyle().
			Foreground(colors.HeaderColor.GetLipglossColor()).
			Bold(true).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.BorderColor.GetLipglossColor()).
			Padding(0, 1),
		Separator: lipgloss.NewStyle().
			Foreground(colors.DimColor.GetLipglossColor()),
		Scope: lipgloss.NewStyle().
			Foreground(colors.ScopeColor.GetLipglossColor()).
			Bold(true),
		Combo: lipgloss.NewStyle().
			Foreground(colors.AccentColor.GetLipglossColor()),
		Action: lipgloss.NewStyle().
			Foreground(colors.SuccessColor.GetLipglossColor()),
		Pending: lipgloss.NewStyle().
			Foreground(colors.PendingColor.GetLipglossColor()).
			Italic(true),
		HelpBar: lipgloss.NewStyle().
			Foreground(colors.DimColor.GetLipglossColor()).
			Bold(true),
		PlaceholderText: lipgloss.NewStyle().
			Foreground(colors.DimColor.GetLipglossColor()),
	}
}
