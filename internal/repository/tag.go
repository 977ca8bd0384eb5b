package repository

import (
	"context"

	"retroblog/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TagRepo interface {
	Create(ctx context.Context, t *models.Tag) (string, error)
	List(ctx context.Context) ([]*models.Tag, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type tagRepo struct{ db *pgxpool.Pool }

func NewTagRepo(db *pgxpool.Pool) TagRepo { return &tagRepo{db: db} }

func (r *tagRepo) Create(ctx context.Context, t *models.Tag) (string, error) {
	if r.db == nil {
		return "", ErrUnavailable
	}
	id := uuid.NewString()
	_, err := r.db.Exec(ctx,
		`INSERT INTO tags (id, name, slug) VALUES ($1,$2,$3)`,
		id, t.Name, t.Slug,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *tagRepo) List(ctx context.Context) ([]*models.Tag, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM tags`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *tagRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	if r.db == nil {
		return false, ErrUnavailable
	}
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tags WHERE slug=$1)`, slug).Scan(&exists)
	return exists, err
}
