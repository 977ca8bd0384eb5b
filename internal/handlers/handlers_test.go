package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retroblog/internal/models"
	"retroblog/internal/services"

	"github.com/gorilla/mux"
)

// Мок-репозитории (заглушки): хендлеры тестируются через настоящие сервисы.

type memCategoryRepo struct {
	slugs   map[string]bool
	created []*models.Category
}

func (m *memCategoryRepo) Create(_ context.Context, c *models.Category) (string, error) {
	m.slugs[c.Slug] = true
	m.created = append(m.created, c)
	return "cat-id-1", nil
}
func (m *memCategoryRepo) List(_ context.Context) ([]*models.Category, error) {
	return m.created, nil
}
func (m *memCategoryRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	return m.slugs[slug], nil
}

type memTagRepo struct {
	slugs map[string]bool
}

func (m *memTagRepo) Create(_ context.Context, t *models.Tag) (string, error) {
	m.slugs[t.Slug] = true
	return "tag-id-1", nil
}
func (m *memTagRepo) List(_ context.Context) ([]*models.Tag, error) { return nil, nil }
func (m *memTagRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	return m.slugs[slug], nil
}

type memPostRepo struct {
	bySlug  map[string]*models.Post
	lastFlt models.PostFilter
}

func (m *memPostRepo) Create(_ context.Context, p *models.Post) (string, error) {
	m.bySlug[p.Slug] = p
	return "post-id-1", nil
}
func (m *memPostRepo) List(_ context.Context, f models.PostFilter) ([]*models.Post, error) {
	m.lastFlt = f
	var out []*models.Post
	for _, p := range m.bySlug {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m *memPostRepo) GetBySlug(_ context.Context, slug string) (*models.Post, error) {
	return m.bySlug[slug], nil
}

type testEnv struct {
	router *mux.Router
	cats   *memCategoryRepo
	tags   *memTagRepo
	posts  *memPostRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		cats:  &memCategoryRepo{slugs: make(map[string]bool)},
		tags:  &memTagRepo{slugs: make(map[string]bool)},
		posts: &memPostRepo{bySlug: make(map[string]*models.Post)},
	}

	categoryH := NewCategoryHandler(services.NewCategoryService(env.cats))
	tagH := NewTagHandler(services.NewTagService(env.tags))
	postH := NewPostHandler(services.NewPostService(env.posts, env.cats, env.tags))

	r := mux.NewRouter()
	r.HandleFunc("/api/categories", categoryH.Create).Methods("POST")
	r.HandleFunc("/api/categories", categoryH.List).Methods("GET")
	r.HandleFunc("/api/tags", tagH.Create).Methods("POST")
	r.HandleFunc("/api/tags", tagH.List).Methods("GET")
	r.HandleFunc("/api/posts", postH.Create).Methods("POST")
	r.HandleFunc("/api/posts", postH.List).Methods("GET")
	r.HandleFunc("/api/posts/{slug}", postH.GetBySlug).Methods("GET")
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("не удалось закодировать тело запроса: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("невалидный JSON в ответе: %v", err)
	}
	if dst != nil {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("невалидное поле data: %v", err)
		}
	}
}

func TestCreateCategoryFlow(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/categories",
		map[string]string{"name": "Музыка", "slug": "music"})
	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d: %s", rec.Code, rec.Body.String())
	}
	var created map[string]string
	decodeData(t, rec, &created)
	if created["id"] == "" {
		t.Fatal("в ответе нет id")
	}

	// повторный slug — 400
	rec = env.do(t, http.MethodPost, "/api/categories",
		map[string]string{"name": "Музыка 2", "slug": "music"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("дубликат slug: ожидался 400, получен %d", rec.Code)
	}
}

func TestCreateCategory_MissingName(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/categories", map[string]string{"slug": "music"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("ожидался 422, получен %d", rec.Code)
	}
}

func TestCreatePost_BadReferences(t *testing.T) {
	env := newTestEnv()
	env.cats.slugs["music"] = true

	rec := env.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
		"title": "A", "slug": "a", "content": "...", "category": "nonexistent",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("несуществующая категория: ожидался 400, получен %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
		"title": "A", "slug": "a", "content": "...", "category": "music",
		"tags": []string{"missing"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("несуществующий тег: ожидался 400, получен %d", rec.Code)
	}
}

func TestCreateAndGetPost(t *testing.T) {
	env := newTestEnv()
	env.cats.slugs["music"] = true

	rec := env.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
		"title": "A", "slug": "a", "content": "...", "category": "music",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/posts/a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", rec.Code)
	}
	var p models.Post
	decodeData(t, rec, &p)
	if p.Category != "music" {
		t.Fatalf("неверная категория: %s", p.Category)
	}
	if !p.Published {
		t.Fatal("published по умолчанию должен быть true")
	}

	rec = env.do(t, http.MethodGet, "/api/posts/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("ожидался 404, получен %d", rec.Code)
	}
}

func TestListPosts_Limit(t *testing.T) {
	env := newTestEnv()

	for _, bad := range []string{"0", "101", "abc"} {
		rec := env.do(t, http.MethodGet, "/api/posts?limit="+bad, nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("limit=%s: ожидался 422, получен %d", bad, rec.Code)
		}
	}

	for _, ok := range []string{"1", "100"} {
		rec := env.do(t, http.MethodGet, "/api/posts?limit="+ok, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("limit=%s: ожидался 200, получен %d", ok, rec.Code)
		}
	}

	// без параметра — дефолт 20
	rec := env.do(t, http.MethodGet, "/api/posts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", rec.Code)
	}
	if env.posts.lastFlt.Limit != 20 {
		t.Fatalf("дефолтный limit должен быть 20, получен %d", env.posts.lastFlt.Limit)
	}
}

func TestListPosts_EmptyIsArray(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/posts", nil)
	var env2 envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env2); err != nil {
		t.Fatalf("невалидный JSON: %v", err)
	}
	if string(env2.Data) != "[]" {
		t.Fatalf("пустой список должен сериализоваться как [], получено: %s", env2.Data)
	}
}
