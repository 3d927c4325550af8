package carrier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo CarrierRepository
}

func NewService(repo CarrierRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCarrier(ctx context.Context, cr *Carrier) error {
	cr.Name = strings.TrimSpace(cr.Name)
	if cr.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, cr)
}

func (s *Service) GetCarrier(ctx context.Context, id uuid.UUID) (*Carrier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateCarrier(ctx context.Context, cr *Carrier) error {
	cr.Name = strings.TrimSpace(cr.Name)
	if cr.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, cr)
}

func (s *Service) DeleteCarrier(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListCarriers(ctx context.Context, search string, limit, offset int) ([]*Carrier, int, error) {
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}
