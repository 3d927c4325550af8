package employer

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

type employerRepoPG struct{ db queryable }

func NewEmployerRepoPG(pool *pgxpool.Pool) EmployerRepository {
	return &employerRepoPG{db: pool}
}

const employerCols = `id, name, street, zip, city, phone, industry, created_at, updated_at`

const employerSearch = `($1 = '' OR name ILIKE '%' || $1 || '%')`

func (r *employerRepoPG) scanRow(row pgx.Row) (*Employer, error) {
	var e Employer
	err := row.Scan(&e.ID, &e.Name, &e.Street, &e.Zip, &e.City, &e.Phone, &e.Industry, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employerRepoPG) Create(ctx context.Context, e *Employer) error {
	e.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO employers (id, name, street, zip, city, phone, industry)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		e.ID, e.Name, e.Street, e.Zip, e.City, e.Phone, e.Industry,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *employerRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Employer, error) {
	return r.scanRow(r.db.QueryRow(ctx, `SELECT `+employerCols+` FROM employers WHERE id = $1`, id))
}

func (r *employerRepoPG) Update(ctx context.Context, e *Employer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE employers SET name=$2, street=$3, zip=$4, city=$5, phone=$6, industry=$7, updated_at=NOW()
		WHERE id = $1`,
		e.ID, e.Name, e.Street, e.Zip, e.City, e.Phone, e.Industry)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *employerRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM employers WHERE id = $1`, id)
	return err
}

func (r *employerRepoPG) List(ctx context.Context, search string, limit, offset int) ([]*Employer, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employers WHERE `+employerSearch, search).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+employerCols+` FROM employers WHERE `+employerSearch+`
		ORDER BY name LIMIT $2 OFFSET $3`, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Employer
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, rows.Err()
}
