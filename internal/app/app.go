package app

import (
	"inkpad/internal/config"
	"inkpad/internal/db"
	"inkpad/internal/handlers"
	"inkpad/internal/repository"
	"inkpad/internal/routes"
	"inkpad/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitApp собирает приложение: пул БД передаётся явно по цепочке
// repo → service → handler, без глобальных хендлов. Пул возвращается
// наружу — закрывает его main при остановке.
func InitApp(cfg *config.Config) (*mux.Router, *pgxpool.Pool, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Репозитории
	articleRepo := repository.NewArticleRepo(conn)

	// Сервисы
	articleSvc := services.NewArticleService(articleRepo)
	exportSvc := services.NewExportService(articleSvc, cfg)

	// Хендлеры
	articleH := handlers.NewArticleHandler(articleSvc)
	exportH := handlers.NewExportHandler(exportSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, articleH, exportH)

	return router, conn, nil
}
