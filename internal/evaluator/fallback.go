package evaluator

import "github.com/tablero-app/bitacora/internal/domain"

// DefaultAssessment returns the neutral tuple used when the external
// scorer is unconfigured, unreachable, or answers garbage. This is the
// deliberate degrade path, not an error: a task completed without a
// credential still earns its neutral experience.
func DefaultAssessment() Assessment {
	return Assessment{
		Level:     domain.ImpactMedium,
		Score:     50,
		XP:        25,
		Reasoning: "Evaluación automática no disponible; se aplicaron valores neutrales.",
	}
}
