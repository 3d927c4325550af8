package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dabform/dabform/internal/platform/auth"
)

// -- Mock Repository --

type mockUserRepo struct {
	store map[uuid.UUID]*User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{store: make(map[uuid.UUID]*User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *User) error {
	for _, existing := range m.store {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	cp := *u
	m.store[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *User) error {
	if _, ok := m.store[u.ID]; !ok {
		return ErrNotFound
	}
	cp := *u
	m.store[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, limit, offset int) ([]*User, int, error) {
	var r []*User
	for _, u := range m.store {
		r = append(r, u)
	}
	return r, len(r), nil
}

func newTestService() *Service {
	return NewService(newMockUserRepo())
}

func createUser(t *testing.T, s *Service, email, password, role string, active bool) *User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), &NewUser{
		User:     User{Email: email, FirstName: "Eva", LastName: "Schmidt", Role: role, Active: active},
		Password: password,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return u
}

func TestCreateUser_HashesPassword(t *testing.T) {
	s := newTestService()
	u := createUser(t, s, "  Eva@Praxis.DE ", "geheim123", RoleArzt, true)
	if u.Email != "eva@praxis.de" {
		t.Errorf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash == "" || u.PasswordHash == "geheim123" {
		t.Error("expected bcrypt hash to be stored")
	}
	if !auth.CheckPassword(u.PasswordHash, "geheim123") {
		t.Error("stored hash does not verify")
	}
}

func TestCreateUser_DefaultsRole(t *testing.T) {
	s := newTestService()
	u := createUser(t, s, "a@b.de", "geheim123", "", true)
	if u.Role != RoleArzt {
		t.Errorf("expected default role arzt, got %q", u.Role)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		nu      NewUser
		wantErr error
	}{
		{"missing email", NewUser{User: User{Role: RoleArzt}, Password: "geheim123"}, ErrInvalidEmail},
		{"bad role", NewUser{User: User{Email: "x@y.de", Role: "pflege"}, Password: "geheim123"}, ErrInvalidRole},
		{"short password", NewUser{User: User{Email: "x@y.de", Role: RoleArzt}, Password: "kurz"}, auth.ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService().CreateUser(context.Background(), &tt.nu)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestService()
	createUser(t, s, "dup@b.de", "geheim123", RoleArzt, true)
	_, err := s.CreateUser(context.Background(), &NewUser{User: User{Email: "DUP@b.de"}, Password: "geheim123"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newTestService()
	createUser(t, s, "arzt@praxis.de", "geheim123", RoleArzt, true)
	createUser(t, s, "alt@praxis.de", "geheim123", RoleArzt, false)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"ok", "Arzt@Praxis.de", "geheim123", nil},
		{"wrong password", "arzt@praxis.de", "falsch123", ErrInvalidCredentials},
		{"unknown email", "nobody@praxis.de", "geheim123", ErrInvalidCredentials},
		{"inactive", "alt@praxis.de", "geheim123", ErrInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := s.Authenticate(context.Background(), tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && u.Email != "arzt@praxis.de" {
				t.Errorf("unexpected user %q", u.Email)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	s := newTestService()
	u := createUser(t, s, "arzt@praxis.de", "geheim123", RoleArzt, true)
	ctx := context.Background()

	if err := s.ChangePassword(ctx, u.ID, "falsch123", "neuesPasswort"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
	if err := s.ChangePassword(ctx, u.ID, "geheim123", "kurz"); !errors.Is(err, auth.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := s.ChangePassword(ctx, u.ID, "geheim123", "neuesPasswort"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := s.Authenticate(ctx, "arzt@praxis.de", "neuesPasswort"); err != nil {
		t.Errorf("expected new password to work, got %v", err)
	}
	if _, err := s.Authenticate(ctx, "arzt@praxis.de", "geheim123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected old password to fail, got %v", err)
	}
}

func TestUpdateUser_InvalidRole(t *testing.T) {
	s := newTestService()
	u := createUser(t, s, "a@b.de", "geheim123", RoleArzt, true)
	u.Role = "root"
	if err := s.UpdateUser(context.Background(), u); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestIsActive(t *testing.T) {
	s := newTestService()
	active := createUser(t, s, "a@b.de", "geheim123", RoleArzt, true)
	inactive := createUser(t, s, "c@d.de", "geheim123", RoleArzt, false)
	ctx := context.Background()

	tests := []struct {
		id   string
		want bool
	}{
		{active.ID.String(), true},
		{inactive.ID.String(), false},
		{uuid.New().String(), false},
		{"not-a-uuid", false},
	}
	for _, tt := range tests {
		got, err := s.IsActive(ctx, tt.id)
		if err != nil {
			t.Fatalf("IsActive(%s): %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("IsActive(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestCurrent(t *testing.T) {
	s := newTestService()
	u := createUser(t, s, "a@b.de", "geheim123", RoleArzt, true)
	got, err := s.Current(auth.WithUser(context.Background(), u.ID.String(), RoleArzt))
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("expected %s, got %s", u.ID, got.ID)
	}
	if _, err := s.Current(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound without identity, got %v", err)
	}
}
