package db

import (
	"context"

	"retroblog/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := cfg.GetDSN()
	pool, err := pgxpool.New(context.Background(), dsn)

	if err != nil {
		return nil, err
	}

	err = pool.Ping(context.Background())
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// EnsureSchema создаёт таблицы блога, если их ещё нет.
// Уникальные индексы на slug категорий и тегов закрывают гонку
// «проверили-вставили» на уровне хранилища.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
CREATE TABLE IF NOT EXISTS categories (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    slug       TEXT NOT NULL,
    color      TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS categories_slug_key ON categories (slug);

CREATE TABLE IF NOT EXISTS tags (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    slug       TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS tags_slug_key ON tags (slug);

-- у постов уникальности slug нет намеренно: поведение исходного API сохранено
CREATE TABLE IF NOT EXISTS posts (
    id          UUID PRIMARY KEY,
    title       TEXT NOT NULL,
    slug        TEXT NOT NULL,
    excerpt     TEXT,
    content     TEXT NOT NULL,
    cover_image TEXT,
    category    TEXT NOT NULL,
    tags        JSONB NOT NULL DEFAULT '[]'::jsonb,
    author      TEXT,
    published   BOOLEAN NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
	_, err := pool.Exec(ctx, q)
	return err
}
