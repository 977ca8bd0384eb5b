package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — пост с таким slug отсутствует.
	ErrNotFound = errors.New("пост не найден")
	// ErrBadLimit — limit вне диапазона [1,100]; не клампится, а отклоняется.
	ErrBadLimit = errors.New("limit должен быть в диапазоне от 1 до 100")
)

// DuplicateSlugError — slug категории или тега уже занят.
type DuplicateSlugError struct {
	Entity string
	Slug   string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("%s со slug %q уже существует", e.Entity, e.Slug)
}

// ReferenceNotFoundError — пост ссылается на несуществующую категорию или тег.
type ReferenceNotFoundError struct {
	Kind string // "category" | "tag"
	Slug string
}

func (e *ReferenceNotFoundError) Error() string {
	if e.Kind == "category" {
		return fmt.Sprintf("категория %q не существует", e.Slug)
	}
	return fmt.Sprintf("тег %q не существует", e.Slug)
}
