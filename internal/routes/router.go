package routes

import (
	"print-orders/internal/integrations/momo"
	"print-orders/internal/repositories"
	"print-orders/pkg/filestorage"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter собирает репозитории, сервисы и контроллеры и
// регистрирует все маршруты.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	momoProvider momo.ProviderInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) {
	attachmentRepo := repositories.NewAttachmentRepository(dbConn)
	printRequestRepo := repositories.NewPrintRequestRepository(dbConn, attachmentRepo)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	runPrintRequestRouter(e, printRequestRepo, fileStorage, logger)
	runPaymentRouter(e, printRequestRepo, momoProvider, logger)
	runEquipmentRouter(e, dbConn, cacheRepo, logger)
}
