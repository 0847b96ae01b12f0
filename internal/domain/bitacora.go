package domain

import "time"

// Bitacora is the tracked entity that accumulates progression state.
// Its derived snapshot lives in Avatar; the raw activity feeding it
// lives in WorkSessions and BitacoraEntries.
type Bitacora struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Bitacora) Validate() error {
	if b.Name == "" {
		return Validationf("name", "bitacora name is required")
	}
	return nil
}
