package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"retroblog/internal/logger"
	"retroblog/internal/models"
	"retroblog/internal/repository"
	"retroblog/internal/schema"
	"retroblog/internal/services"
	helpers "retroblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type CategoryHandler struct{ svc services.CategoryService }

func NewCategoryHandler(svc services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create
// @Summary      Создать категорию
// @Description  Slug должен быть уникален; повтор — 400
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateCategoryRequest  true  "Данные категории"
// @Success      200   {object} map[string]string
// @Failure      400   {object} helpers.Response
// @Failure      422   {object} helpers.Response
// @Failure      500   {object} helpers.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании категории", zap.Error(err))
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
// @Summary      Получить список категорий
// @Tags         categories
// @Produce      json
// @Success      200 {array} models.Category
// @Failure      500 {object} helpers.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.List(r.Context())
	if err != nil {
		writeBlogError(w, log, err)
		return
	}
	if list == nil {
		list = []*models.Category{}
	}

	helpers.JSON(w, http.StatusOK, list)
}

// writeBlogError переводит доменные ошибки в HTTP-статусы:
// валидация — 422, дубликат slug и битая ссылка — 400, не найдено — 404,
// недоступное хранилище — 500.
func writeBlogError(w http.ResponseWriter, log *zap.Logger, err error) {
	var vErr *schema.ValidationError
	var dupErr *services.DuplicateSlugError
	var refErr *services.ReferenceNotFoundError

	switch {
	case errors.As(err, &vErr):
		helpers.Error(w, http.StatusUnprocessableEntity, vErr.Error())
	case errors.As(err, &dupErr):
		helpers.Error(w, http.StatusBadRequest, dupErr.Error())
	case errors.As(err, &refErr):
		helpers.Error(w, http.StatusBadRequest, refErr.Error())
	case errors.Is(err, services.ErrBadLimit):
		helpers.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrUnavailable):
		helpers.Error(w, http.StatusInternalServerError, "База данных недоступна")
	default:
		log.Error("Необработанная ошибка", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, err.Error())
	}
}
