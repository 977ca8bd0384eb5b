package handlers

import (
	"encoding/json"
	"net/http"

	"retroblog/internal/logger"
	"retroblog/internal/models"
	"retroblog/internal/services"
	helpers "retroblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type TagHandler struct{ svc services.TagService }

func NewTagHandler(svc services.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// Create
// @Summary      Создать тег
// @Description  Slug должен быть уникален; повтор — 400
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateTagRequest  true  "Данные тега"
// @Success      200   {object} map[string]string
// @Failure      400   {object} helpers.Response
// @Failure      422   {object} helpers.Response
// @Failure      500   {object} helpers.Response
// @Router       /api/tags [post]
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании тега", zap.Error(err))
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
// @Summary      Получить список тегов
// @Tags         tags
// @Produce      json
// @Success      200 {array} models.Tag
// @Failure      500 {object} helpers.Response
// @Router       /api/tags [get]
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.List(r.Context())
	if err != nil {
		writeBlogError(w, log, err)
		return
	}
	if list == nil {
		list = []*models.Tag{}
	}

	helpers.JSON(w, http.StatusOK, list)
}
