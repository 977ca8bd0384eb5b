package routes

import (
	"retroblog/internal/handlers"
	"retroblog/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	systemH *handlers.SystemHandler,
	categoryH *handlers.CategoryHandler,
	tagH *handlers.TagHandler,
	postH *handlers.PostHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	// --- Служебные ---
	router.HandleFunc("/", systemH.Root).Methods("GET")
	router.HandleFunc("/schema", systemH.Schema).Methods("GET")
	router.HandleFunc("/test", systemH.Test).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/categories", categoryH.Create).Methods("POST")
	api.HandleFunc("/categories", categoryH.List).Methods("GET")

	api.HandleFunc("/tags", tagH.Create).Methods("POST")
	api.HandleFunc("/tags", tagH.List).Methods("GET")

	api.HandleFunc("/posts", postH.Create).Methods("POST")
	api.HandleFunc("/posts", postH.List).Methods("GET")
	api.HandleFunc("/posts/{slug}", postH.GetBySlug).Methods("GET")
}
