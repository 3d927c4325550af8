package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("patient not found")
	// ErrInUse is returned when reports still reference the patient.
	ErrInUse = errors.New("patient has reports")
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List filters by name prefix when search is non-empty.
	List(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error)
}
