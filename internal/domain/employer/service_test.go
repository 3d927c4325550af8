package employer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockEmployerRepo struct {
	store map[uuid.UUID]*Employer
}

func newMockEmployerRepo() *mockEmployerRepo {
	return &mockEmployerRepo{store: make(map[uuid.UUID]*Employer)}
}

func (m *mockEmployerRepo) Create(_ context.Context, emp *Employer) error {
	emp.ID = uuid.New()
	m.store[emp.ID] = emp
	return nil
}

func (m *mockEmployerRepo) GetByID(_ context.Context, id uuid.UUID) (*Employer, error) {
	emp, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return emp, nil
}

func (m *mockEmployerRepo) Update(_ context.Context, emp *Employer) error {
	if _, ok := m.store[emp.ID]; !ok {
		return ErrNotFound
	}
	m.store[emp.ID] = emp
	return nil
}

func (m *mockEmployerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

func (m *mockEmployerRepo) List(_ context.Context, search string, limit, offset int) ([]*Employer, int, error) {
	var r []*Employer
	for _, emp := range m.store {
		if search == "" || matches(emp, search) {
			r = append(r, emp)
		}
	}
	return r, len(r), nil
}

func matches(emp *Employer, search string) bool {
	return strings.Contains(strings.ToLower(emp.Name), strings.ToLower(search))
}

func newTestService() *Service {
	return NewService(newMockEmployerRepo())
}

func strp(s string) *string { return &s }

func TestCreateEmployer_RequiresName(t *testing.T) {
	s := newTestService()
	if err := s.CreateEmployer(context.Background(), &Employer{Name: "   "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestCreateEmployer_TrimsName(t *testing.T) {
	s := newTestService()
	emp := &Employer{Name: "  Bäckerei Schmidt "}
	if err := s.CreateEmployer(context.Background(), emp); err != nil {
		t.Fatalf("CreateEmployer: %v", err)
	}
	if emp.Name != "Bäckerei Schmidt" {
		t.Errorf("expected trimmed name, got %q", emp.Name)
	}
}

func TestListEmployers_Search(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	for _, emp := range []*Employer{
		{Name: "Bäckerei Schmidt", City: strp("München")},
		{Name: "Schmidt Logistik", City: strp("Hamburg")},
		{Name: "Autohaus Weber", City: strp("Köln")},
	} {
		if err := s.CreateEmployer(ctx, emp); err != nil {
			t.Fatal(err)
		}
	}

	_, total, err := s.ListEmployers(ctx, "", 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("expected 3 without search, got %d", total)
	}

	items, total, err := s.ListEmployers(ctx, " schmidt ", 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 matches for %q, got %d", "schmidt", total)
	}
}

func TestUpdateEmployer_NotFound(t *testing.T) {
	s := newTestService()
	err := s.UpdateEmployer(context.Background(), &Employer{ID: uuid.New(), Name: "X"})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
