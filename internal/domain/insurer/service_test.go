package insurer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockInsurerRepo struct {
	store map[uuid.UUID]*Insurer
}

func newMockInsurerRepo() *mockInsurerRepo {
	return &mockInsurerRepo{store: make(map[uuid.UUID]*Insurer)}
}

func (m *mockInsurerRepo) Create(_ context.Context, i *Insurer) error {
	i.ID = uuid.New()
	m.store[i.ID] = i
	return nil
}

func (m *mockInsurerRepo) GetByID(_ context.Context, id uuid.UUID) (*Insurer, error) {
	i, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return i, nil
}

func (m *mockInsurerRepo) Update(_ context.Context, i *Insurer) error {
	if _, ok := m.store[i.ID]; !ok {
		return ErrNotFound
	}
	m.store[i.ID] = i
	return nil
}

func (m *mockInsurerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

func (m *mockInsurerRepo) List(_ context.Context, search string, limit, offset int) ([]*Insurer, int, error) {
	var r []*Insurer
	for _, i := range m.store {
		if search == "" || matches(i, search) {
			r = append(r, i)
		}
	}
	return r, len(r), nil
}

func matches(i *Insurer, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(i.Name), needle) {
		return true
	}
	return i.ShortCode != nil && strings.HasPrefix(strings.ToLower(*i.ShortCode), needle)
}

func newTestService() *Service {
	return NewService(newMockInsurerRepo())
}

func strp(s string) *string { return &s }

func TestCreateInsurer_RequiresName(t *testing.T) {
	s := newTestService()
	if err := s.CreateInsurer(context.Background(), &Insurer{Name: "   "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestCreateInsurer_TrimsName(t *testing.T) {
	s := newTestService()
	i := &Insurer{Name: "  AOK Bayern "}
	if err := s.CreateInsurer(context.Background(), i); err != nil {
		t.Fatalf("CreateInsurer: %v", err)
	}
	if i.Name != "AOK Bayern" {
		t.Errorf("expected trimmed name, got %q", i.Name)
	}
}

func TestListInsurers_Search(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	for _, i := range []*Insurer{
		{Name: "AOK Bayern", ShortCode: strp("AOK")},
		{Name: "Techniker Krankenkasse", ShortCode: strp("TK")},
		{Name: "Barmer", ShortCode: strp("BEK")},
	} {
		if err := s.CreateInsurer(ctx, i); err != nil {
			t.Fatal(err)
		}
	}

	_, total, err := s.ListInsurers(ctx, "", 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("expected 3 without search, got %d", total)
	}

	items, total, err := s.ListInsurers(ctx, " tk ", 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("expected 1 matches for %q, got %d", "tk", total)
	}
}

func TestUpdateInsurer_NotFound(t *testing.T) {
	s := newTestService()
	err := s.UpdateInsurer(context.Background(), &Insurer{ID: uuid.New(), Name: "X"})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
