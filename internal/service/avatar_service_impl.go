package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/progression"
	"github.com/tablero-app/bitacora/internal/repository"
)

type avatarService struct {
	avatars  repository.AvatarRepo
	uow      db.UnitOfWork
	table    progression.RankTable
	locks    *keyedLocks
	observer StepObserver
}

// NewAvatarService creates an AvatarService that recomputes snapshots
// with the given rank table.
func NewAvatarService(avatars repository.AvatarRepo, uow db.UnitOfWork, table progression.RankTable, observers ...StepObserver) AvatarService {
	return &avatarService{
		avatars:  avatars,
		uow:      uow,
		table:    table,
		locks:    newKeyedLocks(),
		observer: stepObserverOrNoop(observers),
	}
}

// Recompute reads the bitácora's full ledger and overwrites its avatar
// inside one transaction. A per-bitácora lock keeps concurrent
// recomputes from racing each other's read and write phases.
func (s *avatarService) Recompute(ctx context.Context, bitacoraID string) (*domain.Avatar, error) {
	release := s.locks.acquire(bitacoraID)
	defer release()

	var avatar *domain.Avatar
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBitacoras := repository.NewSQLiteBitacoraRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txEntries := repository.NewSQLiteEntryRepo(tx)
		txAvatars := repository.NewSQLiteAvatarRepo(tx)

		if _, err := txBitacoras.GetByID(ctx, bitacoraID); err != nil {
			return err
		}

		sessions, err := txSessions.ListByBitacora(ctx, bitacoraID)
		if err != nil {
			return fmt.Errorf("reading sessions: %w", err)
		}
		entries, err := txEntries.ListByBitacora(ctx, bitacoraID)
		if err != nil {
			return fmt.Errorf("reading entries: %w", err)
		}

		ledger := progression.Ledger{
			Sessions: make([]domain.WorkSession, 0, len(sessions)),
			Entries:  make([]domain.BitacoraEntry, 0, len(entries)),
		}
		for _, sess := range sessions {
			ledger.Sessions = append(ledger.Sessions, *sess)
		}
		for _, e := range entries {
			ledger.Entries = append(ledger.Entries, *e)
		}

		state := progression.Recompute(ledger, s.table)

		avatar = &domain.Avatar{
			ID:            uuid.New().String(),
			BitacoraID:    bitacoraID,
			Level:         state.Level,
			Experience:    state.Experience,
			TotalHours:    state.TotalHours,
			TotalTasks:    state.TotalTasks,
			TotalSessions: state.TotalSessions,
			RankName:      state.RankName,
			RankTier:      state.RankTier,
			StyleKey:      state.StyleKey,
			UpdatedAt:     time.Now().UTC(),
		}
		if state.ImageRef != "" {
			avatar.ImageRef = &state.ImageRef
		}
		return txAvatars.Upsert(ctx, avatar)
	})
	if err != nil {
		return nil, err
	}
	return avatar, nil
}

func (s *avatarService) GetByBitacora(ctx context.Context, bitacoraID string) (*domain.Avatar, error) {
	return s.avatars.GetByBitacora(ctx, bitacoraID)
}

// recomputeBestEffort runs Recompute as a side effect of a ledger
// write. Failures are reported to the observer and swallowed so the
// committed write stands.
func recomputeBestEffort(ctx context.Context, avatars AvatarService, observer StepObserver, pipeline, bitacoraID string) {
	start := time.Now()
	_, err := avatars.Recompute(ctx, bitacoraID)
	observer.ObserveStep(ctx, StepEvent{
		Pipeline: pipeline,
		Step:     "recompute_avatar",
		EntityID: bitacoraID,
		Duration: time.Since(start),
		Err:      err,
	})
}
