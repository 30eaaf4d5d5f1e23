package routes

import (
	"print-orders/internal/controllers"
	"print-orders/internal/repositories"
	"print-orders/internal/services"
	"print-orders/pkg/filestorage"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPrintRequestRouter(
	e *echo.Echo,
	printRequestRepo repositories.PrintRequestRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) {
	printRequestService := services.NewPrintRequestService(
		printRequestRepo,
		fileStorage,
		logger,
	)

	printRequestController := controllers.NewPrintRequestController(
		printRequestService,
		logger,
	)
	reportController := controllers.NewReportController(
		printRequestService,
		logger,
	)

	e.POST("/upload", printRequestController.Submit)
	e.GET("/requests", printRequestController.GetRequests)
	e.GET("/requests/export", reportController.ExportRequests)
	e.GET("/requests/:id", printRequestController.FindRequest)
	e.PATCH("/requests/:id", printRequestController.UpdateStatus)
	e.PATCH("/requests/:id/quotation", printRequestController.SetQuotation)
	e.PATCH("/requests/:id/payment", printRequestController.UpdatePaymentStatus)
}
