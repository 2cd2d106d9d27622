package main

import (
	"net/http"

	_ "inkpad/docs"
	"inkpad/internal/app"
	"inkpad/internal/config"
	"inkpad/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Inkpad API
// @version 1.0
// @description Документация API Inkpad (статьи, свойства, экспорт в HTML/PDF).
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("Ошибка загрузки конфига", zap.Error(err))
	}

	warnings, err := cfg.Validate()
	for _, wrn := range warnings {
		logger.Log.Warn("Конфигурация", zap.String("warning", wrn))
	}
	if err != nil {
		logger.Log.Fatal("Невалидная конфигурация", zap.Error(err))
	}

	logger.Log.Info("Подключение к БД", zap.String("dsn", cfg.GetDSNSafe()))

	router, pool, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}
	defer pool.Close()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port))

	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
