package report

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dabform/dabform/internal/platform/auth"
	"github.com/dabform/dabform/pkg/isodate"
)

type Service struct {
	repo ReportRepository
	now  func() time.Time
}

func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// actor is the authenticated caller as seen by report access rules.
type actor struct {
	id    uuid.UUID
	admin bool
}

func actorFrom(ctx context.Context) (actor, error) {
	id, err := uuid.Parse(auth.UserIDFromContext(ctx))
	if err != nil {
		return actor{}, ErrForbidden
	}
	return actor{id: id, admin: auth.IsAdmin(ctx)}, nil
}

func (a actor) canAccess(r *Report) bool {
	return a.admin || r.UserID == a.id
}

var enumFields = []struct {
	name    string
	get     func(*Report) *string
	allowed []string
}{
	{"gebrauchshand", func(r *Report) *string { return r.DominantHand }, []string{"rechts", "links"}},
	{"heilbehandlung_art", func(r *Report) *string { return r.TreatmentKind }, []string{"ambulant", "allgemein", "besondere", "stationaer", "keine"}},
	{"weiterbehandlung_durch", func(r *Report) *string { return r.FurtherTreatmentBy }, []string{"durch_mich", "andere_arzt"}},
}

func validate(r *Report) error {
	r.LfdNr = strings.TrimSpace(r.LfdNr)
	if r.LfdNr == "" || utf8.RuneCountInString(r.LfdNr) > 50 {
		return fmt.Errorf("lfd_nr must be 1 to 50 characters")
	}
	if r.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if !isodate.ValidDate(r.AccidentDate) {
		return fmt.Errorf("unfalltag: invalid date %q, expected YYYY-MM-DD", r.AccidentDate)
	}
	if r.AccidentPlace != nil && utf8.RuneCountInString(*r.AccidentPlace) > 255 {
		return fmt.Errorf("unfallort must be at most 255 characters")
	}
	if r.ISSScore != nil && (*r.ISSScore < 0 || *r.ISSScore > 75) {
		return fmt.Errorf("iss_score must be between 0 and 75")
	}
	if err := isodate.CheckDates(map[string]*string{
		"eingetroffen_datum":                 r.ArrivalDate,
		"erstbehandlung_datum":               r.FirstTreatedOn,
		"arbeitsunfaehig_ab":                 r.UnfitFrom,
		"arbeitsfaehig_ab":                   r.FitFrom,
		"wiedervorstellung_datum":            r.FollowUpDate,
		"datum_mitteilung_behandelnder_arzt": r.TreatingDoctorNoteOn,
	}); err != nil {
		return err
	}
	if err := isodate.CheckTimes(map[string]*string{
		"eingetroffen_uhrzeit": r.ArrivalTime,
		"unfallzeit":           r.AccidentTime,
		"arbeitszeit_beginn":   r.WorkStart,
		"arbeitszeit_ende":     r.WorkEnd,
	}); err != nil {
		return err
	}
	for _, f := range enumFields {
		v := f.get(r)
		if v == nil || *v == "" {
			continue
		}
		ok := false
		for _, a := range f.allowed {
			if *v == a {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s must be one of %s", f.name, strings.Join(f.allowed, ", "))
		}
	}
	return nil
}

// CreateReport stores a new draft owned by the caller.
func (s *Service) CreateReport(ctx context.Context, r *Report) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	if err := validate(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	r.Status = StatusDraft
	r.UserID = a.id
	r.FinalizedAt = nil
	r.PDFGeneratedAt = nil
	return s.repo.Create(ctx, r)
}

// GetReport returns the report if the caller owns it or is an admin.
func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	a, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.canAccess(r) {
		return nil, ErrForbidden
	}
	return r, nil
}

// ListReports shows admins everything and clinicians their own reports.
func (s *Service) ListReports(ctx context.Context, patientID *uuid.UUID, limit, offset int) ([]*Report, int, error) {
	a, err := actorFrom(ctx)
	if err != nil {
		return nil, 0, err
	}
	f := ListFilter{PatientID: patientID}
	if !a.admin {
		f.UserID = &a.id
	}
	return s.repo.List(ctx, f, limit, offset)
}

// UpdateReport writes the editable fields. Ownership, status and the
// timestamps are kept from the stored report.
func (s *Service) UpdateReport(ctx context.Context, r *Report) error {
	existing, err := s.GetReport(ctx, r.ID)
	if err != nil {
		return err
	}
	if err := validate(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	r.UserID = existing.UserID
	r.Status = existing.Status
	r.CreatedAt = existing.CreatedAt
	r.FinalizedAt = existing.FinalizedAt
	r.PDFGeneratedAt = existing.PDFGeneratedAt
	return s.repo.Update(ctx, r)
}

func (s *Service) FinalizeReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	if _, err := s.GetReport(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Finalize(ctx, id, s.now().UTC()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	r, err := s.GetReport(ctx, id)
	if err != nil {
		return err
	}
	if !r.IsDraft() {
		return ErrNotDraft
	}
	return s.repo.Delete(ctx, id)
}

// MarkPDFGenerated stamps the time a PDF was last produced.
func (s *Service) MarkPDFGenerated(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkPDFGenerated(ctx, id, s.now().UTC())
}
