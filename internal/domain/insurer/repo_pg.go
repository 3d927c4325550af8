package insurer

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

type insurerRepoPG struct{ db queryable }

func NewInsurerRepoPG(pool *pgxpool.Pool) InsurerRepository {
	return &insurerRepoPG{db: pool}
}

const insurerCols = `id, name, short_code, ik_number, created_at, updated_at`

const insurerSearch = `($1 = '' OR name ILIKE '%' || $1 || '%' OR short_code ILIKE $1 || '%')`

func (r *insurerRepoPG) scanRow(row pgx.Row) (*Insurer, error) {
	var i Insurer
	err := row.Scan(&i.ID, &i.Name, &i.ShortCode, &i.IKNumber, &i.CreatedAt, &i.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *insurerRepoPG) Create(ctx context.Context, i *Insurer) error {
	i.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO insurers (id, name, short_code, ik_number)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		i.ID, i.Name, i.ShortCode, i.IKNumber,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
}

func (r *insurerRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Insurer, error) {
	return r.scanRow(r.db.QueryRow(ctx, `SELECT `+insurerCols+` FROM insurers WHERE id = $1`, id))
}

func (r *insurerRepoPG) Update(ctx context.Context, i *Insurer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE insurers SET name=$2, short_code=$3, ik_number=$4, updated_at=NOW()
		WHERE id = $1`,
		i.ID, i.Name, i.ShortCode, i.IKNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *insurerRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM insurers WHERE id = $1`, id)
	return err
}

func (r *insurerRepoPG) List(ctx context.Context, search string, limit, offset int) ([]*Insurer, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM insurers WHERE `+insurerSearch, search).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+insurerCols+` FROM insurers WHERE `+insurerSearch+`
		ORDER BY name LIMIT $2 OFFSET $3`, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Insurer
	for rows.Next() {
		i, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, i)
	}
	return items, total, rows.Err()
}
