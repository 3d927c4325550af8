package insurer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo InsurerRepository
}

func NewService(repo InsurerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateInsurer(ctx context.Context, i *Insurer) error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, i)
}

func (s *Service) GetInsurer(ctx context.Context, id uuid.UUID) (*Insurer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateInsurer(ctx context.Context, i *Insurer) error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, i)
}

func (s *Service) DeleteInsurer(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListInsurers(ctx context.Context, search string, limit, offset int) ([]*Insurer, int, error) {
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}
