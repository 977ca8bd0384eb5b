package services

import (
	"context"
	"errors"
	"testing"

	"retroblog/internal/models"
)

// Мок-репозиторий тегов: запоминает порядок проверок slug
type mockTagRepo struct {
	slugs   map[string]bool
	checked []string
	created []*models.Tag
}

func newMockTagRepo(existing ...string) *mockTagRepo {
	m := &mockTagRepo{slugs: make(map[string]bool)}
	for _, s := range existing {
		m.slugs[s] = true
	}
	return m
}

func (m *mockTagRepo) Create(_ context.Context, t *models.Tag) (string, error) {
	m.slugs[t.Slug] = true
	m.created = append(m.created, t)
	return "tag-id-1", nil
}

func (m *mockTagRepo) List(_ context.Context) ([]*models.Tag, error) { return m.created, nil }

func (m *mockTagRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	m.checked = append(m.checked, slug)
	return m.slugs[slug], nil
}

// Мок-репозиторий постов
type mockPostRepo struct {
	created  []*models.Post
	bySlug   map[string]*models.Post
	lastFlt  models.PostFilter
	listResp []*models.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{bySlug: make(map[string]*models.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, p *models.Post) (string, error) {
	m.created = append(m.created, p)
	m.bySlug[p.Slug] = p
	return "post-id-1", nil
}

func (m *mockPostRepo) List(_ context.Context, f models.PostFilter) ([]*models.Post, error) {
	m.lastFlt = f
	return m.listResp, nil
}

func (m *mockPostRepo) GetBySlug(_ context.Context, slug string) (*models.Post, error) {
	return m.bySlug[slug], nil
}

func newPostService(posts *mockPostRepo, cats *mockCategoryRepo, tags *mockTagRepo) PostService {
	return NewPostService(posts, cats, tags)
}

func validPostReq() models.CreatePostRequest {
	return models.CreatePostRequest{
		Title:    "Retro Wave",
		Slug:     "retro-wave",
		Content:  "Текст поста",
		Category: "music",
	}
}

func catsWith(slugs ...string) *mockCategoryRepo {
	m := newMockCategoryRepo()
	for _, s := range slugs {
		m.slugs[s] = true
	}
	return m
}

func TestCreatePost(t *testing.T) {
	posts := newMockPostRepo()
	svc := newPostService(posts, catsWith("music"), newMockTagRepo())

	id, err := svc.Create(context.Background(), validPostReq())
	if err != nil {
		t.Fatalf("ошибка создания поста: %v", err)
	}
	if id == "" {
		t.Fatal("идентификатор не возвращён")
	}
	if len(posts.created) != 1 {
		t.Fatal("пост не сохранён")
	}

	p := posts.created[0]
	if !p.Published {
		t.Fatal("published по умолчанию должен быть true")
	}
	if p.Tags == nil || len(p.Tags) != 0 {
		t.Fatalf("tags по умолчанию должен быть пустым списком, получено: %#v", p.Tags)
	}
}

func TestCreatePost_PublishedFalse(t *testing.T) {
	posts := newMockPostRepo()
	svc := newPostService(posts, catsWith("music"), newMockTagRepo())

	req := validPostReq()
	published := false
	req.Published = &published

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("ошибка создания поста: %v", err)
	}
	if posts.created[0].Published {
		t.Fatal("явный published=false не должен затираться дефолтом")
	}
}

func TestCreatePost_CategoryNotFound(t *testing.T) {
	posts := newMockPostRepo()
	svc := newPostService(posts, catsWith(), newMockTagRepo())

	req := validPostReq()
	req.Category = "nonexistent"

	_, err := svc.Create(context.Background(), req)
	var refErr *ReferenceNotFoundError
	if !errors.As(err, &refErr) {
		t.Fatalf("ожидался ReferenceNotFoundError, получено: %v", err)
	}
	if refErr.Kind != "category" || refErr.Slug != "nonexistent" {
		t.Fatalf("неверная ошибка ссылки: %+v", refErr)
	}
	if len(posts.created) != 0 {
		t.Fatal("пост с несуществующей категорией не должен сохраняться")
	}
}

func TestCreatePost_TagNotFound_FailFast(t *testing.T) {
	posts := newMockPostRepo()
	tags := newMockTagRepo("synth") // "80s" и "vhs" отсутствуют
	svc := newPostService(posts, catsWith("music"), tags)

	req := validPostReq()
	req.Tags = []string{"synth", "80s", "vhs"}

	_, err := svc.Create(context.Background(), req)
	var refErr *ReferenceNotFoundError
	if !errors.As(err, &refErr) {
		t.Fatalf("ожидался ReferenceNotFoundError, получено: %v", err)
	}
	if refErr.Kind != "tag" || refErr.Slug != "80s" {
		t.Fatalf("должен падать на первом отсутствующем теге: %+v", refErr)
	}
	// fail-fast: "vhs" проверяться не должен
	if len(tags.checked) != 2 {
		t.Fatalf("лишние проверки тегов: %v", tags.checked)
	}
	if len(posts.created) != 0 {
		t.Fatal("пост с несуществующим тегом не должен сохраняться")
	}
}

func TestCreatePost_TagOrderPreserved(t *testing.T) {
	posts := newMockPostRepo()
	tags := newMockTagRepo("b", "a", "c")
	svc := newPostService(posts, catsWith("music"), tags)

	req := validPostReq()
	req.Tags = []string{"b", "a", "c"}

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("ошибка создания поста: %v", err)
	}
	got := posts.created[0].Tags
	if len(got) != 3 || got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("порядок тегов не сохранён: %v", got)
	}
}

func TestListPosts_LimitBounds(t *testing.T) {
	posts := newMockPostRepo()
	svc := newPostService(posts, newMockCategoryRepo(), newMockTagRepo())

	for _, bad := range []int{0, -5, 101} {
		_, err := svc.List(context.Background(), models.PostFilter{Limit: bad})
		if !errors.Is(err, ErrBadLimit) {
			t.Fatalf("limit=%d: ожидался ErrBadLimit, получено: %v", bad, err)
		}
	}

	for _, ok := range []int{1, 20, 100} {
		if _, err := svc.List(context.Background(), models.PostFilter{Limit: ok}); err != nil {
			t.Fatalf("limit=%d должен проходить: %v", ok, err)
		}
	}
}

func TestListPosts_FilterPassedThrough(t *testing.T) {
	posts := newMockPostRepo()
	svc := newPostService(posts, newMockCategoryRepo(), newMockTagRepo())

	f := models.PostFilter{Category: "music", Tag: "synth", Query: "retro", Limit: 50}
	if _, err := svc.List(context.Background(), f); err != nil {
		t.Fatalf("ошибка листинга: %v", err)
	}
	if posts.lastFlt != f {
		t.Fatalf("фильтр дошёл до репозитория искажённым: %+v", posts.lastFlt)
	}
}

func TestGetPostBySlug(t *testing.T) {
	posts := newMockPostRepo()
	posts.bySlug["draft"] = &models.Post{Slug: "draft", Published: false}
	svc := newPostService(posts, newMockCategoryRepo(), newMockTagRepo())

	// черновик доступен по прямой ссылке
	p, err := svc.GetBySlug(context.Background(), "draft")
	if err != nil {
		t.Fatalf("ошибка получения поста: %v", err)
	}
	if p.Published {
		t.Fatal("ожидался черновик")
	}

	_, err = svc.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ожидался ErrNotFound, получено: %v", err)
	}
}
