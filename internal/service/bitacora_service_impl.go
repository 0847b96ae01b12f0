package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/repository"
)

type bitacoraService struct {
	bitacoras repository.BitacoraRepo
}

func NewBitacoraService(bitacoras repository.BitacoraRepo) BitacoraService {
	return &bitacoraService{bitacoras: bitacoras}
}

func (s *bitacoraService) Create(ctx context.Context, b *domain.Bitacora) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.bitacoras.Create(ctx, b)
}

func (s *bitacoraService) GetByID(ctx context.Context, id string) (*domain.Bitacora, error) {
	return s.bitacoras.GetByID(ctx, id)
}

func (s *bitacoraService) List(ctx context.Context) ([]*domain.Bitacora, error) {
	return s.bitacoras.List(ctx)
}
