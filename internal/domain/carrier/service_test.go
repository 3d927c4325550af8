package carrier

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockCarrierRepo struct {
	store map[uuid.UUID]*Carrier
}

func newMockCarrierRepo() *mockCarrierRepo {
	return &mockCarrierRepo{store: make(map[uuid.UUID]*Carrier)}
}

func (m *mockCarrierRepo) Create(_ context.Context, cr *Carrier) error {
	cr.ID = uuid.New()
	m.store[cr.ID] = cr
	return nil
}

func (m *mockCarrierRepo) GetByID(_ context.Context, id uuid.UUID) (*Carrier, error) {
	cr, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cr, nil
}

func (m *mockCarrierRepo) Update(_ context.Context, cr *Carrier) error {
	if _, ok := m.store[cr.ID]; !ok {
		return ErrNotFound
	}
	m.store[cr.ID] = cr
	return nil
}

func (m *mockCarrierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

func (m *mockCarrierRepo) List(_ context.Context, search string, limit, offset int) ([]*Carrier, int, error) {
	var r []*Carrier
	for _, cr := range m.store {
		if search == "" || matches(cr, search) {
			r = append(r, cr)
		}
	}
	return r, len(r), nil
}

func matches(cr *Carrier, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(cr.Name), needle) {
		return true
	}
	return cr.ShortCode != nil && strings.HasPrefix(strings.ToLower(*cr.ShortCode), needle)
}

func newTestService() *Service {
	return NewService(newMockCarrierRepo())
}

func strp(s string) *string { return &s }

func TestCreateCarrier_RequiresName(t *testing.T) {
	s := newTestService()
	if err := s.CreateCarrier(context.Background(), &Carrier{Name: "   "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestCreateCarrier_TrimsName(t *testing.T) {
	s := newTestService()
	cr := &Carrier{Name: "  BG Bau "}
	if err := s.CreateCarrier(context.Background(), cr); err != nil {
		t.Fatalf("CreateCarrier: %v", err)
	}
	if cr.Name != "BG Bau" {
		t.Errorf("expected trimmed name, got %q", cr.Name)
	}
}

func TestListCarriers_Search(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	for _, cr := range []*Carrier{
		{Name: "BG Bau", ShortCode: strp("BGBAU")},
		{Name: "BG ETEM", ShortCode: strp("ETEM")},
		{Name: "Unfallkasse NRW", ShortCode: strp("UKNRW")},
	} {
		if err := s.CreateCarrier(ctx, cr); err != nil {
			t.Fatal(err)
		}
	}

	_, total, err := s.ListCarriers(ctx, "", 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("expected 3 without search, got %d", total)
	}

	items, total, err := s.ListCarriers(ctx, " bg ", 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 matches for %q, got %d", "bg", total)
	}
}

func TestUpdateCarrier_NotFound(t *testing.T) {
	s := newTestService()
	err := s.UpdateCarrier(context.Background(), &Carrier{ID: uuid.New(), Name: "X"})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
