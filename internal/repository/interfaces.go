package repository

import (
	"context"
	"errors"

	"github.com/tablero-app/bitacora/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type BitacoraRepo interface {
	Create(ctx context.Context, b *domain.Bitacora) error
	GetByID(ctx context.Context, id string) (*domain.Bitacora, error)
	List(ctx context.Context) ([]*domain.Bitacora, error)
}

type BoardRepo interface {
	Create(ctx context.Context, b *domain.Board) error
	GetByID(ctx context.Context, id string) (*domain.Board, error)
	List(ctx context.Context) ([]*domain.Board, error)
	Update(ctx context.Context, b *domain.Board) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkSession, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.WorkSession, error)
	ListByBitacora(ctx context.Context, bitacoraID string) ([]*domain.WorkSession, error)
	Update(ctx context.Context, s *domain.WorkSession) error
	Delete(ctx context.Context, id string) error
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.BitacoraEntry) error
	GetByTask(ctx context.Context, taskID string) (*domain.BitacoraEntry, error)
	ListByBitacora(ctx context.Context, bitacoraID string) ([]*domain.BitacoraEntry, error)
	ExistsForTask(ctx context.Context, taskID string) (bool, error)
}

type AvatarRepo interface {
	GetByBitacora(ctx context.Context, bitacoraID string) (*domain.Avatar, error)
	Upsert(ctx context.Context, a *domain.Avatar) error
}
