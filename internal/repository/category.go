package repository

import (
	"context"

	"retroblog/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) (string, error)
	List(ctx context.Context) ([]*models.Category, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type categoryRepo struct{ db *pgxpool.Pool }

func NewCategoryRepo(db *pgxpool.Pool) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) (string, error) {
	if r.db == nil {
		return "", ErrUnavailable
	}
	id := uuid.NewString()
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, slug, color) VALUES ($1,$2,$3,$4)`,
		id, c.Name, c.Slug, c.Color,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, color, created_at FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *categoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	if r.db == nil {
		return false, ErrUnavailable
	}
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE slug=$1)`, slug).Scan(&exists)
	return exists, err
}
