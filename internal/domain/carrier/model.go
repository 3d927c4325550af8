package carrier

import (
	"time"

	"github.com/google/uuid"
)

// Carrier is a statutory accident insurance carrier (UV-Träger), the
// addressee of the full report.
type Carrier struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	ShortCode *string   `db:"short_code" json:"kuerzel,omitempty"`
	Address   *string   `db:"address" json:"adresse,omitempty"`
	Phone     *string   `db:"phone" json:"telefon,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
