package handlers

import (
	"net/http"

	"retroblog/internal/config"
	"retroblog/internal/logger"
	"retroblog/internal/repository"
	"retroblog/internal/schema"
	helpers "retroblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type SystemHandler struct {
	cfg  *config.Config
	diag repository.DiagRepo
}

func NewSystemHandler(cfg *config.Config, diag repository.DiagRepo) *SystemHandler {
	return &SystemHandler{cfg: cfg, diag: diag}
}

// Root
// @Summary      Проверка, что API живо
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Retro Blog API running"})
}

// Schema
// @Summary      Схемы сущностей
// @Description  Статически описанный реестр для внешнего просмотрщика БД
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /schema [get]
func (h *SystemHandler) Schema(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, schema.Describe())
}

// Test
// @Summary      Диагностика подключения к хранилищу
// @Description  Никогда не отвечает ошибкой: проблемные поля деградируют до строк
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /test [get]
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	resp := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus(h.cfg.DatabaseURL),
		"database_name":     envStatus(h.cfg.DatabaseName),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.diag.Available() {
		if err := h.diag.Ping(r.Context()); err != nil {
			log.Warn("Диагностика: ping не прошёл", zap.Error(err))
			resp["database"] = "❌ Error: " + truncate(err.Error(), 80)
		} else {
			resp["database"] = "✅ Connected"
			resp["connection_status"] = "Connected"

			cols, err := h.diag.Collections(r.Context(), 10)
			if err != nil {
				log.Warn("Диагностика: не удалось перечислить коллекции", zap.Error(err))
				resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
			} else if cols != nil {
				resp["collections"] = cols
			}
		}
	}

	helpers.JSON(w, http.StatusOK, resp)
}

func envStatus(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
