package insurer

import (
	"time"

	"github.com/google/uuid"
)

// Insurer is a statutory health insurer (Krankenkasse).
type Insurer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	ShortCode *string   `db:"short_code" json:"kuerzel,omitempty"`
	IKNumber  *string   `db:"ik_number" json:"ik_nummer,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
