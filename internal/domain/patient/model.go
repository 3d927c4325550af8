package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the injured person a report is written for.
type Patient struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	LastName          string     `db:"last_name" json:"nachname"`
	FirstName         string     `db:"first_name" json:"vorname"`
	BirthDate         string     `db:"birth_date" json:"geburtsdatum"`
	Sex               *string    `db:"sex" json:"geschlecht,omitempty"`
	Phone             *string    `db:"phone" json:"telefon,omitempty"`
	Nationality       *string    `db:"nationality" json:"staatsangehoerigkeit,omitempty"`
	Street            *string    `db:"street" json:"strasse,omitempty"`
	Zip               *string    `db:"zip" json:"plz,omitempty"`
	City              *string    `db:"city" json:"ort,omitempty"`
	InsurerID         *uuid.UUID `db:"insurer_id" json:"insurer_id,omitempty"`
	FamilyInsured     bool       `db:"family_insured" json:"familienversichert"`
	FamilyInsuredName *string    `db:"family_insured_name" json:"familienversichert_name,omitempty"`
	CareInsurer       *string    `db:"care_insurer" json:"pflegekasse,omitempty"`
	EmployedAs        *string    `db:"employed_as" json:"beschaeftigt_als,omitempty"`
	EmployedSince     *string    `db:"employed_since" json:"beschaeftigt_seit,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// Sex codes accepted in Sex.
const (
	SexMale    = "m"
	SexFemale  = "w"
	SexDiverse = "d"
)
