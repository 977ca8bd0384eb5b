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

type TagService interface {
	Create(ctx context.Context, req models.CreateTagRequest) (string, error)
	List(ctx context.Context) ([]*models.Tag, error)
}

type tagService struct {
	repo repository.TagRepo
}

func NewTagService(repo repository.TagRepo) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) Create(ctx context.Context, req models.CreateTagRequest) (string, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание тега", zap.String("slug", req.Slug))

	if err := schema.ValidateRequired("tag", map[string]string{
		"name": req.Name,
		"slug": req.Slug,
	}); err != nil {
		log.Warn("Валидация тега не пройдена", zap.Error(err))
		return "", err
	}

	slug := strings.TrimSpace(req.Slug)

	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		log.Error("Ошибка проверки slug тега", zap.Error(err))
		return "", err
	}
	if exists {
		log.Warn("Slug тега уже занят", zap.String("slug", slug))
		return "", &DuplicateSlugError{Entity: "тег", Slug: slug}
	}

	t := &models.Tag{
		Name: strings.TrimSpace(req.Name),
		Slug: slug,
	}
	id, err := s.repo.Create(ctx, t)
	if repository.IsUniqueViolation(err) {
		return "", &DuplicateSlugError{Entity: "тег", Slug: slug}
	}
	if err != nil {
		log.Error("Ошибка создания тега (repo)", zap.Error(err))
		return "", err
	}

	log.Info("Тег создан", zap.String("id", id), zap.String("slug", slug))
	return id, nil
}

func (s *tagService) List(ctx context.Context) ([]*models.Tag, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.List(ctx)
	if err != nil {
		log.Error("Ошибка получения списка тегов (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список тегов получен", zap.Int("count", len(list)))
	return list, nil
}
