package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tablero-app/bitacora/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RankStyle returns the lipgloss style for a rank's style key.
func RankStyle(styleKey string) lipgloss.Style {
	switch styleKey {
	case "novato":
		return StyleDim
	case "aprendiz":
		return StyleGreen
	case "profesional":
		return StyleBlue
	case "experto":
		return StylePurple
	case "leyenda", "leyenda-maxima":
		return StyleHeader
	default:
		return StyleFg
	}
}

// ImpactIndicator returns a colored impact indicator such as "● HIGH".
func ImpactIndicator(level domain.ImpactLevel) string {
	switch level {
	case domain.ImpactCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.ImpactHigh:
		return StyleYellow.Render("● HIGH")
	case domain.ImpactMedium:
		return StyleBlue.Render("● MEDIUM")
	case domain.ImpactLow:
		return StyleDim.Render("● LOW")
	default:
		return StyleDim.Render("● -")
	}
}

// StatusPill returns a colored task status indicator.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskCompleted:
		return StyleGreen.Render("✓ completed")
	case domain.TaskPending:
		return StyleYellow.Render("○ pending")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
