package domain

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "LOW"
	ImpactMedium   ImpactLevel = "MEDIUM"
	ImpactHigh     ImpactLevel = "HIGH"
	ImpactCritical ImpactLevel = "CRITICAL"
)

// ParseImpactLevel maps a raw string onto the enumerated impact levels.
// Anything unrecognized resolves to ImpactMedium.
func ParseImpactLevel(s string) ImpactLevel {
	switch ImpactLevel(s) {
	case ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical:
		return ImpactLevel(s)
	default:
		return ImpactMedium
	}
}

// ValidWorkTypes is the canonical set of accepted work-type tags.
var ValidWorkTypes = map[string]bool{
	"desarrollo": true, "diseno": true, "reunion": true,
	"investigacion": true, "revision": true, "tarea": true,
	"general": true,
}

// ValidTaskCategories is the canonical set of accepted task category strings.
var ValidTaskCategories = map[string]bool{
	"desarrollo": true, "diseno": true, "marketing": true,
	"ventas": true, "soporte": true, "administrativo": true,
	"general": true,
}
