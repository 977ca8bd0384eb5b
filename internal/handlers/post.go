package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"retroblog/internal/logger"
	"retroblog/internal/models"
	"retroblog/internal/services"
	helpers "retroblog/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct{ svc services.PostService }

func NewPostHandler(svc services.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create
// @Summary      Создать пост
// @Description  Категория и каждый тег должны существовать; иначе — 400
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreatePostRequest  true  "Данные поста"
// @Success      200   {object} map[string]string
// @Failure      400   {object} helpers.Response
// @Failure      422   {object} helpers.Response
// @Failure      500   {object} helpers.Response
// @Router       /api/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeBlogError(w, log, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// List
// @Summary      Получить список опубликованных постов
// @Description  Фильтры: category, tag (точное вхождение), q (подстрока в title/excerpt без учёта регистра), limit 1..100 (по умолчанию 20)
// @Tags         posts
// @Produce      json
// @Param        category  query  string  false  "Слаг категории"
// @Param        tag       query  string  false  "Слаг тега"
// @Param        q         query  string  false  "Поисковая строка"
// @Param        limit     query  int     false  "Максимум записей (1..100)"
// @Success      200 {array} models.Post
// @Failure      422 {object} helpers.Response
// @Failure      500 {object} helpers.Response
// @Router       /api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	q := r.URL.Query()
	f := models.PostFilter{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Query:    q.Get("q"),
		Limit:    services.DefaultLimit,
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("Нечисловой limit", zap.String("raw", raw))
			helpers.Error(w, http.StatusUnprocessableEntity, services.ErrBadLimit.Error())
			return
		}
		f.Limit = v
	}

	list, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeBlogError(w, log, err)
		return
	}
	if list == nil {
		list = []*models.Post{}
	}

	helpers.JSON(w, http.StatusOK, list)
}

// GetBySlug
// @Summary      Получить пост по slug
// @Description  Ищет и среди черновиков: статус published здесь не фильтруется
// @Tags         posts
// @Produce      json
// @Param        slug  path  string  true  "Слаг поста"
// @Success      200 {object} models.Post
// @Failure      404 {object} helpers.Response
// @Failure      500 {object} helpers.Response
// @Router       /api/posts/{slug} [get]
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	slug := mux.Vars(r)["slug"]

	p, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		writeBlogError(w, log, err)
		return
	}

	helpers.JSON(w, http.StatusOK, p)
}
