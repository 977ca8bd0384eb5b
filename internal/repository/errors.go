package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUnavailable — пул соединений отсутствует (сервер поднят без БД).
var ErrUnavailable = errors.New("хранилище недоступно")

// IsUniqueViolation — нарушение уникального индекса (код 23505).
// Страхует проверку slug «нашли-вставили» от гонки на уровне БД.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
