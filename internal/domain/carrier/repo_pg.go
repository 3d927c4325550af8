package carrier

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

type carrierRepoPG struct{ db queryable }

func NewCarrierRepoPG(pool *pgxpool.Pool) CarrierRepository {
	return &carrierRepoPG{db: pool}
}

const carrierCols = `id, name, short_code, address, phone, email, created_at, updated_at`

const carrierSearch = `($1 = '' OR name ILIKE '%' || $1 || '%' OR short_code ILIKE $1 || '%')`

func (r *carrierRepoPG) scanRow(row pgx.Row) (*Carrier, error) {
	var cr Carrier
	err := row.Scan(&cr.ID, &cr.Name, &cr.ShortCode, &cr.Address, &cr.Phone, &cr.Email, &cr.CreatedAt, &cr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *carrierRepoPG) Create(ctx context.Context, cr *Carrier) error {
	cr.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO carriers (id, name, short_code, address, phone, email)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		cr.ID, cr.Name, cr.ShortCode, cr.Address, cr.Phone, cr.Email,
	).Scan(&cr.CreatedAt, &cr.UpdatedAt)
}

func (r *carrierRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Carrier, error) {
	return r.scanRow(r.db.QueryRow(ctx, `SELECT `+carrierCols+` FROM carriers WHERE id = $1`, id))
}

func (r *carrierRepoPG) Update(ctx context.Context, cr *Carrier) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE carriers SET name=$2, short_code=$3, address=$4, phone=$5, email=$6, updated_at=NOW()
		WHERE id = $1`,
		cr.ID, cr.Name, cr.ShortCode, cr.Address, cr.Phone, cr.Email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *carrierRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM carriers WHERE id = $1`, id)
	return err
}

func (r *carrierRepoPG) List(ctx context.Context, search string, limit, offset int) ([]*Carrier, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM carriers WHERE `+carrierSearch, search).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+carrierCols+` FROM carriers WHERE `+carrierSearch+`
		ORDER BY name LIMIT $2 OFFSET $3`, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Carrier
	for rows.Next() {
		cr, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, cr)
	}
	return items, total, rows.Err()
}
