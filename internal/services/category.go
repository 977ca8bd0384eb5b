package services

import (
	"context"
	"strings"

	"retroblog/internal/logger"
	"retroblog/internal/models"
	"retroblog/internal/repository"
	"retroblog/internal/schema"

	"go.uber.org/zap"
)

type CategoryService interface {
	Create(ctx context.Context, req models.CreateCategoryRequest) (string, error)
	List(ctx context.Context) ([]*models.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepo
}

func NewCategoryService(repo repository.CategoryRepo) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (string, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание категории", zap.String("slug", req.Slug))

	if err := schema.ValidateRequired("category", map[string]string{
		"name": req.Name,
		"slug": req.Slug,
	}); err != nil {
		log.Warn("Валидация категории не пройдена", zap.Error(err))
		return "", err
	}

	slug := strings.TrimSpace(req.Slug)

	// проверка «нашли-вставили»: даёт дружелюбную 400 до вставки,
	// гонку окончательно закрывает уникальный индекс
	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		log.Error("Ошибка проверки slug категории", zap.Error(err))
		return "", err
	}
	if exists {
		log.Warn("Slug категории уже занят", zap.String("slug", slug))
		return "", &DuplicateSlugError{Entity: "категория", Slug: slug}
	}

	c := &models.Category{
		Name:  strings.TrimSpace(req.Name),
		Slug:  slug,
		Color: req.Color,
	}
	id, err := s.repo.Create(ctx, c)
	if repository.IsUniqueViolation(err) {
		return "", &DuplicateSlugError{Entity: "категория", Slug: slug}
	}
	if err != nil {
		log.Error("Ошибка создания категории (repo)", zap.Error(err))
		return "", err
	}

	log.Info("Категория создана", zap.String("id", id), zap.String("slug", slug))
	return id, nil
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.List(ctx)
	if err != nil {
		log.Error("Ошибка получения списка категорий (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список категорий получен", zap.Int("count", len(list)))
	return list, nil
}
