package icons

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inference-gateway/keychord/internal/ui/styles/colors"
)

// Status icons
const (
	CheckMark = "✓"
	CrossMark = "✗"
	Pending   = "…"
)

// Icon styles
var (
	CheckMarkStyle = lipgloss.NewStyle().Foreground(colors.SuccessColor.GetLipglossColor()).Bold(true)
	CrossMarkStyle = lipgloss.NewStyle().Foreground(colors.ErrorColor.GetLipglossColor()).Bold(true)
	PendingStyle   = lipgloss.NewStyle().Foreground(colors.PendingColor.GetLipglossColor()).Bold(true)
)

func StyledCheckMark() string {
	return CheckMarkStyle.Render(CheckMark)
}

func StyledCrossMark() string {
	return CrossMarkStyle.Render(CrossMark)
}

func StyledPending() string {
	return PendingStyle.Render(Pending)
}

// Status renders a check mark when ok and a cross otherwise
func Status(ok bool) string {
	if ok {
		return StyledCheckMark()
	}
	return StyledCrossMark()
}
