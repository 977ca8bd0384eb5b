package app

import (
	"context"

	"retroblog/internal/config"
	"retroblog/internal/db"
	"retroblog/internal/handlers"
	"retroblog/internal/logger"
	"retroblog/internal/repository"
	"retroblog/internal/routes"
	"retroblog/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	// Без БД не падаем: сервер поднимается в деградированном режиме,
	// /test покажет статус, остальные ручки ответят 500.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := db.NewPostgresConnection(cfg)
		if err != nil {
			logger.Log.Warn("БД недоступна, работаем без хранилища",
				zap.String("dsn", cfg.GetDSNSafe()), zap.Error(err))
		} else {
			pool = p
			if err := db.EnsureSchema(context.Background(), pool); err != nil {
				logger.Log.Error("Не удалось создать схему БД", zap.Error(err))
			}
		}
	} else {
		logger.Log.Warn("DATABASE_URL не задан, работаем без хранилища")
	}

	// Репозитории
	categoryRepo := repository.NewCategoryRepo(pool)
	tagRepo := repository.NewTagRepo(pool)
	postRepo := repository.NewPostRepo(pool)
	diagRepo := repository.NewDiagRepo(pool)

	// Сервисы
	categorySvc := services.NewCategoryService(categoryRepo)
	tagSvc := services.NewTagService(tagRepo)
	postSvc := services.NewPostService(postRepo, categoryRepo, tagRepo)

	// Хендлеры
	systemH := handlers.NewSystemHandler(cfg, diagRepo)
	categoryH := handlers.NewCategoryHandler(categorySvc)
	tagH := handlers.NewTagHandler(tagSvc)
	postH := handlers.NewPostHandler(postSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, systemH, categoryH, tagH, postH)

	return router, nil
}
