package f1000

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dabform/dabform/internal/domain/carrier"
	"github.com/dabform/dabform/internal/domain/employer"
	"github.com/dabform/dabform/internal/domain/insurer"
	"github.com/dabform/dabform/internal/domain/patient"
	"github.com/dabform/dabform/internal/domain/report"
	"github.com/dabform/dabform/internal/domain/user"
)

// BundleFetcher loads a report and resolves everything it references.
// Access checks happen inside Fetch, so report.ErrNotFound and
// report.ErrForbidden reach the caller unchanged.
type BundleFetcher interface {
	Fetch(ctx context.Context, reportID uuid.UUID) (Bundle, error)
}

type (
	ReportGetter interface {
		GetReport(ctx context.Context, id uuid.UUID) (*report.Report, error)
	}
	PatientGetter interface {
		GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	}
	UserGetter interface {
		GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	}
	EmployerGetter interface {
		GetEmployer(ctx context.Context, id uuid.UUID) (*employer.Employer, error)
	}
	CarrierGetter interface {
		GetCarrier(ctx context.Context, id uuid.UUID) (*carrier.Carrier, error)
	}
	InsurerGetter interface {
		GetInsurer(ctx context.Context, id uuid.UUID) (*insurer.Insurer, error)
	}
)

// ServiceFetcher resolves bundles through the domain services. Location is
// the zone the report's creation date is printed in; nil means UTC.
type ServiceFetcher struct {
	Location  *time.Location
	Reports   ReportGetter
	Patients  PatientGetter
	Users     UserGetter
	Employers EmployerGetter
	Carriers  CarrierGetter
	Insurers  InsurerGetter
}

func (f *ServiceFetcher) Fetch(ctx context.Context, reportID uuid.UUID) (Bundle, error) {
	r, err := f.Reports.GetReport(ctx, reportID)
	if err != nil {
		return Bundle{}, err
	}
	p, err := f.Patients.GetPatient(ctx, r.PatientID)
	if err != nil {
		return Bundle{}, fmt.Errorf("loading patient %s: %w", r.PatientID, err)
	}

	u, err := optional(ctx, &r.UserID, f.Users.GetUser, user.ErrNotFound)
	if err != nil {
		return Bundle{}, fmt.Errorf("loading clinician: %w", err)
	}
	e, err := optional(ctx, r.EmployerID, f.Employers.GetEmployer, employer.ErrNotFound)
	if err != nil {
		return Bundle{}, fmt.Errorf("loading employer: %w", err)
	}
	cr, err := optional(ctx, r.CarrierID, f.Carriers.GetCarrier, carrier.ErrNotFound)
	if err != nil {
		return Bundle{}, fmt.Errorf("loading carrier: %w", err)
	}
	i, err := optional(ctx, p.InsurerID, f.Insurers.GetInsurer, insurer.ErrNotFound)
	if err != nil {
		return Bundle{}, fmt.Errorf("loading insurer: %w", err)
	}

	return Bundle{
		Report:    AdaptReport(r, f.Location),
		Patient:   AdaptPatient(p),
		Clinician: AdaptClinician(u),
		Employer:  AdaptEmployer(e),
		Carrier:   AdaptCarrier(cr),
		Insurer:   AdaptInsurer(i),
	}, nil
}

// optional looks up a nullable reference. A nil id or a dangling one
// resolves to nil.
func optional[T any](ctx context.Context, id *uuid.UUID, get func(context.Context, uuid.UUID) (*T, error), notFound error) (*T, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}
	v, err := get(ctx, *id)
	if errors.Is(err, notFound) {
		return nil, nil
	}
	return v, err
}
