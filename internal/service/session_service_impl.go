package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	boards   repository.BoardRepo
	avatars  AvatarService
	observer StepObserver
}

func NewSessionService(sessions repository.SessionRepo, boards repository.BoardRepo, avatars AvatarService, observers ...StepObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		boards:   boards,
		avatars:  avatars,
		observer: stepObserverOrNoop(observers),
	}
}

// Log validates and persists a manually submitted session. When the
// board is linked to a bitácora the session is stamped with it and the
// avatar is recomputed afterwards; a recompute failure never undoes
// the logged session.
func (s *sessionService) Log(ctx context.Context, session *domain.WorkSession) error {
	board, err := s.boards.GetByID(ctx, session.BoardID)
	if err != nil {
		return err
	}
	if session.BitacoraID == nil {
		session.BitacoraID = board.BitacoraID
	}

	if err := session.ComputeDuration(); err != nil {
		return err
	}
	if err := session.Validate(); err != nil {
		return err
	}

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Date.IsZero() {
		session.Date = now.Truncate(24 * time.Hour)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return err
	}
	if session.BitacoraID != nil {
		recomputeBestEffort(ctx, s.avatars, s.observer, "session_log", *session.BitacoraID)
	}
	return nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.WorkSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListByBoard(ctx context.Context, boardID string) ([]*domain.WorkSession, error) {
	return s.sessions.ListByBoard(ctx, boardID)
}

func (s *sessionService) Update(ctx context.Context, session *domain.WorkSession) error {
	if err := session.ComputeDuration(); err != nil {
		return err
	}
	if err := session.Validate(); err != nil {
		return err
	}
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		return err
	}
	if session.BitacoraID != nil {
		recomputeBestEffort(ctx, s.avatars, s.observer, "session_update", *session.BitacoraID)
	}
	return nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	if session.BitacoraID != nil {
		recomputeBestEffort(ctx, s.avatars, s.observer, "session_delete", *session.BitacoraID)
	}
	return nil
}
