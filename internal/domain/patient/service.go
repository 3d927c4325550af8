package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dabform/dabform/pkg/isodate"
)

type Service struct {
	repo PatientRepository
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo}
}

func validate(p *Patient) error {
	if strings.TrimSpace(p.LastName) == "" || strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("nachname and vorname are required")
	}
	if !isodate.ValidDate(p.BirthDate) {
		return fmt.Errorf("geburtsdatum: invalid date %q, expected YYYY-MM-DD", p.BirthDate)
	}
	if p.Sex != nil && *p.Sex != "" {
		switch *p.Sex {
		case SexMale, SexFemale, SexDiverse:
		default:
			return fmt.Errorf("geschlecht must be one of m, w, d")
		}
	}
	return isodate.CheckDates(map[string]*string{"beschaeftigt_seit": p.EmployedSince})
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}
