package colors

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColor_GetLipglossColor(t *testing.T) {
	color := Color{ANSI: Red, Lipgloss: "31"}
	assert.Equal(t, lipgloss.Color("31"), color.GetLipglossColor())
}

func TestPredefinedColors(t *testing.T) {
	testCases := []struct {
		name         string
		color        Color
		expectedANSI string
	}{
		{"ErrorColor", ErrorColor, Red},
		{"SuccessColor", SuccessColor, Green},
		{"AccentColor", AccentColor, Blue},
		{"ScopeColor", ScopeColor, Cyan},
		{"DimColor", DimColor, Gray},
		{"PendingColor", PendingColor, Amber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedANSI, tc.color.ANSI)
			assert.NotEmpty(t, tc.color.Lipgloss)
		})
	}
}

func TestCreateSeparator(t *testing.T) {
	separator := CreateSeparator(5, "-")

	assert.True(t, strings.HasPrefix(separator, DimColor.ANSI))
	assert.Contains(t, separator, "-----")
	assert.True(t, strings.HasSuffix(separator, Reset))
}

func TestCreateColoredText(t *testing.T) {
	assert.Equal(t, Red+"boom"+Reset, CreateColoredText("boom", ErrorColor))
	assert.Equal(t, Dim+"quiet"+Reset, CreateDimText("quiet"))
}
