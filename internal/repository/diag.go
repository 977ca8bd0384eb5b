package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DiagRepo — диагностика хранилища для GET /test.
type DiagRepo interface {
	Available() bool
	Ping(ctx context.Context) error
	Collections(ctx context.Context, limit int) ([]string, error)
}

type diagRepo struct{ db *pgxpool.Pool }

func NewDiagRepo(db *pgxpool.Pool) DiagRepo { return &diagRepo{db: db} }

func (r *diagRepo) Available() bool { return r.db != nil }

func (r *diagRepo) Ping(ctx context.Context) error {
	if r.db == nil {
		return ErrUnavailable
	}
	return r.db.Ping(ctx)
}

func (r *diagRepo) Collections(ctx context.Context, limit int) ([]string, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	rows, err := r.db.Query(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' ORDER BY table_name LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
