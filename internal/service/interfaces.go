package service

import (
	"context"

	"github.com/tablero-app/bitacora/internal/domain"
)

type BitacoraService interface {
	Create(ctx context.Context, b *domain.Bitacora) error
	GetByID(ctx context.Context, id string) (*domain.Bitacora, error)
	List(ctx context.Context) ([]*domain.Bitacora, error)
}

type BoardService interface {
	Create(ctx context.Context, b *domain.Board) error
	GetByID(ctx context.Context, id string) (*domain.Board, error)
	List(ctx context.Context) ([]*domain.Board, error)
	LinkBitacora(ctx context.Context, boardID, bitacoraID string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	// Complete transitions a pending task to completed and runs the
	// completion pipeline. Completing an already completed task is a
	// no-op that returns the task unchanged.
	Complete(ctx context.Context, id string, resultNote string) (*domain.Task, error)
}

type SessionService interface {
	Log(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkSession, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.WorkSession, error)
	Update(ctx context.Context, s *domain.WorkSession) error
	Delete(ctx context.Context, id string) error
}

type AvatarService interface {
	// Recompute rebuilds the avatar for a bitácora from its full
	// ledger and overwrites the stored snapshot.
	Recompute(ctx context.Context, bitacoraID string) (*domain.Avatar, error)
	GetByBitacora(ctx context.Context, bitacoraID string) (*domain.Avatar, error)
}
