package domain

import "time"

// Board is a task container. A board may be linked to a bitácora, in
// which case completed tasks and logged sessions feed its progression.
type Board struct {
	ID         string
	Name       string
	BitacoraID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks invariants before a write.
func (b *Board) Validate() error {
	if b.Name == "" {
		return Validationf("name", "board name is required")
	}
	return nil
}
