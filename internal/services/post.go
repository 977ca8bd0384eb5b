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

const (
	minLimit     = 1
	maxLimit     = 100
	DefaultLimit = 20
)

type PostService interface {
	Create(ctx context.Context, req models.CreatePostRequest) (string, error)
	List(ctx context.Context, f models.PostFilter) ([]*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
}

type postService struct {
	posts      repository.PostRepo
	categories repository.CategoryRepo
	tags       repository.TagRepo
}

func NewPostService(posts repository.PostRepo, categories repository.CategoryRepo, tags repository.TagRepo) PostService {
	return &postService{posts: posts, categories: categories, tags: tags}
}

func (s *postService) Create(ctx context.Context, req models.CreatePostRequest) (string, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание поста",
		zap.String("slug", req.Slug),
		zap.String("category", req.Category),
		zap.Int("tags_count", len(req.Tags)),
	)

	if err := schema.ValidateRequired("post", map[string]string{
		"title":    req.Title,
		"slug":     req.Slug,
		"content":  req.Content,
		"category": req.Category,
	}); err != nil {
		log.Warn("Валидация поста не пройдена", zap.Error(err))
		return "", err
	}

	tags := normalizeTags(req.Tags)

	// ссылочная целостность: сначала категория, затем теги по порядку.
	// На первом отсутствующем теге останавливаемся, остальные не проверяем.
	catOK, err := s.categories.SlugExists(ctx, req.Category)
	if err != nil {
		log.Error("Ошибка проверки категории", zap.Error(err))
		return "", err
	}
	if !catOK {
		log.Warn("Категория не существует", zap.String("category", req.Category))
		return "", &ReferenceNotFoundError{Kind: "category", Slug: req.Category}
	}
	for _, t := range tags {
		tagOK, err := s.tags.SlugExists(ctx, t)
		if err != nil {
			log.Error("Ошибка проверки тега", zap.String("tag", t), zap.Error(err))
			return "", err
		}
		if !tagOK {
			log.Warn("Тег не существует", zap.String("tag", t))
			return "", &ReferenceNotFoundError{Kind: "tag", Slug: t}
		}
	}

	p := &models.Post{
		Title:      strings.TrimSpace(req.Title),
		Slug:       strings.TrimSpace(req.Slug),
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Tags:       tags,
		Author:     req.Author,
		Published:  req.Published == nil || *req.Published,
	}

	// уникальность slug поста не проверяется — асимметрия с категориями
	// и тегами сохранена вслед за исходным API
	id, err := s.posts.Create(ctx, p)
	if err != nil {
		log.Error("Ошибка создания поста (repo)", zap.Error(err))
		return "", err
	}

	log.Info("Пост создан",
		zap.String("id", id),
		zap.String("slug", p.Slug),
		zap.Bool("published", p.Published),
	)
	return id, nil
}

func (s *postService) List(ctx context.Context, f models.PostFilter) ([]*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка постов",
		zap.String("category", f.Category),
		zap.String("tag", f.Tag),
		zap.String("q", f.Query),
		zap.Int("limit", f.Limit),
	)

	if f.Limit < minLimit || f.Limit > maxLimit {
		log.Warn("Недопустимый limit", zap.Int("limit", f.Limit))
		return nil, ErrBadLimit
	}

	list, err := s.posts.List(ctx, f)
	if err != nil {
		log.Error("Ошибка получения списка постов (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список постов получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение поста по slug", zap.String("slug", slug))

	p, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		log.Error("Ошибка получения поста (repo)", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	if p == nil {
		log.Warn("Пост не найден", zap.String("slug", slug))
		return nil, ErrNotFound
	}

	return p, nil
}

// normalizeTags сохраняет порядок, nil превращает в пустой список.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.TrimSpace(t))
	}
	return out
}
