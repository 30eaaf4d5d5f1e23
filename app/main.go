// Файл: main.go

package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"print-orders/internal/integrations/momo"
	"print-orders/internal/routes"
	"print-orders/pkg/config"
	"print-orders/pkg/database/postgresql"
	"print-orders/pkg/filestorage"
	applogger "print-orders/pkg/logger"
	"print-orders/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()

	// Конфиг проверяет обязательные переменные шлюза: без них не стартуем.
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				utils.ErrorResponse(c, echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера"))
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Статика: сохранённые документы отдаются напрямую.
	absPath, err := filepath.Abs(cfg.Upload.BasePath)
	if err != nil {
		logger.Fatal("не удалось получить абсолютный путь к uploads", zap.Error(err))
	}
	e.Static("/uploads", absPath)

	e.Validator = utils.NewValidator(validator.New())

	// Базы данных и внешние сервисы.
	if err := postgresql.RunMigrations(cfg.Postgres.DSN, "db/migrations"); err != nil {
		logger.Fatal("Ошибка применения миграций", zap.Error(err))
	}
	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		logger.Fatal("не удалось инициализировать хранилище файлов", zap.Error(err))
	}

	momoProvider := momo.New(cfg.Momo, logger)

	routes.InitRouter(e, dbConn, redisClient, momoProvider, fileStorage, logger)

	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
