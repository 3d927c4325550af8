package employer

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("employer not found")

type EmployerRepository interface {
	Create(ctx context.Context, e *Employer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Employer, error)
	Update(ctx context.Context, e *Employer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int) ([]*Employer, int, error)
}
