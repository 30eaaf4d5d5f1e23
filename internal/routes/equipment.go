package routes

import (
	"print-orders/internal/controllers"
	"print-orders/internal/repositories"
	"print-orders/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) {
	equipmentRepository := repositories.NewEquipmentRepository(dbConn)
	equipmentService := services.NewEquipmentService(equipmentRepository, cacheRepo, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	e.GET("/equipments", equipmentCtrl.GetEquipments)
	e.GET("/equipments/:id", equipmentCtrl.FindEquipment)
	e.POST("/equipments", equipmentCtrl.CreateEquipment)
	e.PATCH("/equipments/:id", equipmentCtrl.UpdateEquipment)
	e.DELETE("/equipments/:id", equipmentCtrl.DeleteEquipment)
}
