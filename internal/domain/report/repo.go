package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("report not found")
	ErrForbidden = errors.New("report belongs to another user")
	ErrConflict  = errors.New("a report with this lfd_nr already exists")
	ErrNotDraft  = errors.New("finalized reports cannot be deleted")
	ErrInvalid   = errors.New("invalid report")
)

type ReportRepository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	Update(ctx context.Context, r *Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ListFilter, limit, offset int) ([]*Report, int, error)
	Finalize(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkPDFGenerated(ctx context.Context, id uuid.UUID, at time.Time) error
}
