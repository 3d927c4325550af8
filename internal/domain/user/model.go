package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. Admins pass every role check.
const (
	RoleArzt  = "arzt"
	RoleAdmin = "admin"
)

// User is a medical-office account. Clinicians (Durchgangsärzte) sign the
// reports they author, so the practice details double as the report's
// signature block.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	FirstName      string    `db:"first_name" json:"vorname"`
	LastName       string    `db:"last_name" json:"nachname"`
	Title          *string   `db:"title" json:"titel,omitempty"`
	Role           string    `db:"role" json:"rolle"`
	Active         bool      `db:"active" json:"aktiv"`
	DArztNumber    *string   `db:"darzt_number" json:"durchgangsarzt_nr,omitempty"`
	PracticeName   *string   `db:"practice_name" json:"praxis_name,omitempty"`
	PracticeStreet *string   `db:"practice_street" json:"praxis_strasse,omitempty"`
	PracticeZip    *string   `db:"practice_zip" json:"praxis_plz,omitempty"`
	PracticeCity   *string   `db:"practice_city" json:"praxis_ort,omitempty"`
	PracticePhone  *string   `db:"practice_phone" json:"praxis_telefon,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUser is the payload for creating an account.
type NewUser struct {
	User
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// PasswordChange is the body of POST /auth/change-password.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
