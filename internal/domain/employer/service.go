package employer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo EmployerRepository
}

func NewService(repo EmployerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateEmployer(ctx context.Context, e *Employer) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, e)
}

func (s *Service) GetEmployer(ctx context.Context, id uuid.UUID) (*Employer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateEmployer(ctx context.Context, e *Employer) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, e)
}

func (s *Service) DeleteEmployer(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListEmployers(ctx context.Context, search string, limit, offset int) ([]*Employer, int, error) {
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}
