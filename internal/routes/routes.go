package routes

import (
	"inkpad/internal/handlers"
	"inkpad/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	articleH *handlers.ArticleHandler,
	exportH *handlers.ExportHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/articles", articleH.Create).Methods("POST")
	api.HandleFunc("/articles", articleH.GetAll).Methods("GET")
	api.HandleFunc("/articles/preview", articleH.Preview).Methods("POST")
	api.HandleFunc("/articles/export", exportH.Export).Methods("POST")
	api.HandleFunc("/articles/{id:[0-9]+}", articleH.GetByID).Methods("GET")
	api.HandleFunc("/articles/{id:[0-9]+}", articleH.Update).Methods("PATCH")
	api.HandleFunc("/articles/{id:[0-9]+}", articleH.Delete).Methods("DELETE")

	api.HandleFunc("/exports/{file}", exportH.Download).Methods("GET")
}
