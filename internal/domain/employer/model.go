package employer

import (
	"time"

	"github.com/google/uuid"
)

// Employer is the business where the accident happened (Unfallbetrieb).
type Employer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Street    *string   `db:"street" json:"strasse,omitempty"`
	Zip       *string   `db:"zip" json:"plz,omitempty"`
	City      *string   `db:"city" json:"ort,omitempty"`
	Phone     *string   `db:"phone" json:"telefon,omitempty"`
	Industry  *string   `db:"industry" json:"branche,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
