package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"retroblog/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepo interface {
	Create(ctx context.Context, p *models.Post) (string, error)
	List(ctx context.Context, f models.PostFilter) ([]*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
}

type postRepo struct{ db *pgxpool.Pool }

func NewPostRepo(db *pgxpool.Pool) PostRepo { return &postRepo{db: db} }

func (r *postRepo) Create(ctx context.Context, p *models.Post) (string, error) {
	if r.db == nil {
		return "", ErrUnavailable
	}
	tagsJSON, _ := json.Marshal(p.Tags)

	id := uuid.NewString()
	_, err := r.db.Exec(ctx,
		`INSERT INTO posts (id, title, slug, excerpt, content, cover_image, category, tags, author, published)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8::jsonb,$9,$10)`,
		id, p.Title, p.Slug, p.Excerpt, p.Content, p.CoverImage, p.Category, tagsJSON, p.Author, p.Published,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *postRepo) List(ctx context.Context, f models.PostFilter) ([]*models.Post, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}

	const qBase = `
		SELECT id, title, slug, excerpt, content, cover_image, category, tags, author, published, created_at
		FROM posts
	`
	// в выдачу попадают только опубликованные
	where := []string{"published = TRUE"}
	args := []interface{}{}
	i := 1

	if f.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", i))
		args = append(args, f.Category)
		i++
	}
	if f.Tag != "" {
		// tags — jsonb-массив строк: ["a","b"]
		// проверяем точное вхождение через jsonb_array_elements_text
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1
				FROM jsonb_array_elements_text(tags) AS t(val)
				WHERE t.val = $%d
			)
		`, i))
		args = append(args, f.Tag)
		i++
	}
	if f.Query != "" {
		where = append(where, fmt.Sprintf(
			`(title ILIKE '%%' || $%d || '%%' OR excerpt ILIKE '%%' || $%d || '%%')`, i, i))
		args = append(args, f.Query)
		i++
	}

	sql := qBase + " WHERE " + strings.Join(where, " AND ")
	sql += fmt.Sprintf(" LIMIT $%d", i)
	args = append(args, f.Limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetBySlug ищет пост независимо от published: черновики доступны
// по прямой ссылке. Отсутствие — (nil, nil).
func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	const q = `
		SELECT id, title, slug, excerpt, content, cover_image, category, tags, author, published, created_at
		FROM posts WHERE slug=$1
	`
	row := r.db.QueryRow(ctx, q, slug)
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	var tagsRaw []byte
	if err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverImage,
		&p.Category, &tagsRaw, &p.Author, &p.Published, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	_ = json.Unmarshal(tagsRaw, &p.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}
