package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/repository"
)

type boardService struct {
	boards    repository.BoardRepo
	bitacoras repository.BitacoraRepo
}

func NewBoardService(boards repository.BoardRepo, bitacoras repository.BitacoraRepo) BoardService {
	return &boardService{boards: boards, bitacoras: bitacoras}
}

func (s *boardService) Create(ctx context.Context, b *domain.Board) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.BitacoraID != nil {
		if _, err := s.bitacoras.GetByID(ctx, *b.BitacoraID); err != nil {
			return err
		}
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.boards.Create(ctx, b)
}

func (s *boardService) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	return s.boards.GetByID(ctx, id)
}

func (s *boardService) List(ctx context.Context) ([]*domain.Board, error) {
	return s.boards.List(ctx)
}

func (s *boardService) LinkBitacora(ctx context.Context, boardID, bitacoraID string) error {
	if _, err := s.bitacoras.GetByID(ctx, bitacoraID); err != nil {
		return err
	}
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	board.BitacoraID = &bitacoraID
	board.UpdatedAt = time.Now().UTC()
	return s.boards.Update(ctx, board)
}
