package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type patientRepoPG struct{ db queryable }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{db: pool}
}

const patientCols = `id, last_name, first_name, birth_date::text, sex, phone, nationality,
	street, zip, city, insurer_id, family_insured, family_insured_name, care_insurer,
	employed_as, employed_since::text, created_at, updated_at`

const patientSearch = `($1 = '' OR last_name ILIKE $1 || '%' OR first_name ILIKE $1 || '%')`

func (r *patientRepoPG) scanRow(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.LastName, &p.FirstName, &p.BirthDate, &p.Sex, &p.Phone, &p.Nationality,
		&p.Street, &p.Zip, &p.City, &p.InsurerID, &p.FamilyInsured, &p.FamilyInsuredName, &p.CareInsurer,
		&p.EmployedAs, &p.EmployedSince, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO patients (id, last_name, first_name, birth_date, sex, phone, nationality,
			street, zip, city, insurer_id, family_insured, family_insured_name, care_insurer,
			employed_as, employed_since)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at, updated_at`,
		p.ID, p.LastName, p.FirstName, p.BirthDate, p.Sex, p.Phone, p.Nationality,
		p.Street, p.Zip, p.City, p.InsurerID, p.FamilyInsured, p.FamilyInsuredName, p.CareInsurer,
		p.EmployedAs, p.EmployedSince,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return r.scanRow(r.db.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE patients SET last_name=$2, first_name=$3, birth_date=$4, sex=$5, phone=$6, nationality=$7,
			street=$8, zip=$9, city=$10, insurer_id=$11, family_insured=$12, family_insured_name=$13,
			care_insurer=$14, employed_as=$15, employed_since=$16, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.LastName, p.FirstName, p.BirthDate, p.Sex, p.Phone, p.Nationality,
		p.Street, p.Zip, p.City, p.InsurerID, p.FamilyInsured, p.FamilyInsuredName,
		p.CareInsurer, p.EmployedAs, p.EmployedSince)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *patientRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrInUse
	}
	return err
}

func (r *patientRepoPG) List(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients WHERE `+patientSearch, search).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+patientCols+` FROM patients WHERE `+patientSearch+`
		ORDER BY last_name, first_name LIMIT $2 OFFSET $3`, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
