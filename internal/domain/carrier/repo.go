package carrier

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("carrier not found")

type CarrierRepository interface {
	Create(ctx context.Context, cr *Carrier) error
	GetByID(ctx context.Context, id uuid.UUID) (*Carrier, error)
	Update(ctx context.Context, cr *Carrier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int) ([]*Carrier, int, error)
}
