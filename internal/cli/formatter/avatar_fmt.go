package formatter

import (
	"fmt"
	"strings"

	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/progression"
)

// FormatAvatar renders the full avatar card for one bitácora.
func FormatAvatar(bitacoraName string, a *domain.Avatar, table progression.RankTable) string {
	band, _ := table.Resolve(a.Experience)
	rankStyle := RankStyle(a.StyleKey)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(bitacoraName), rankStyle.Render(fmt.Sprintf("%s (nivel %d, rango %d/%d)", a.RankName, a.Level, a.RankTier, table.Tiers)))
	fmt.Fprintf(&b, "Experiencia  %d XP  %s\n", a.Experience, RankProgress(a.Experience, band.Min, band.Max, 20))
	fmt.Fprintf(&b, "Horas        %s\n", FormatHours(a.TotalHours))
	fmt.Fprintf(&b, "Tareas       %d\n", a.TotalTasks)
	fmt.Fprintf(&b, "Sesiones     %d\n", a.TotalSessions)
	fmt.Fprintf(&b, "%s\n", Dim("Actualizado "+HumanDate(a.UpdatedAt)))

	return RenderBox("Avatar", b.String())
}

// FormatTaskRow builds the table row cells for one task.
func FormatTaskRow(t *domain.Task) []string {
	impact := Dim("-")
	if t.EvaluatedByAI {
		impact = fmt.Sprintf("%s %d XP", ImpactIndicator(t.ImpactLevel), t.XPValue)
	}
	return []string{
		TruncID(t.ID),
		Truncate(t.Title, 40),
		StatusPill(t.Status),
		fmt.Sprintf("%d", t.Difficulty),
		impact,
	}
}
