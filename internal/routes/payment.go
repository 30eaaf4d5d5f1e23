package routes

import (
	"print-orders/internal/controllers"
	"print-orders/internal/integrations/momo"
	"print-orders/internal/repositories"
	"print-orders/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPaymentRouter(
	e *echo.Echo,
	printRequestRepo repositories.PrintRequestRepositoryInterface,
	momoProvider momo.ProviderInterface,
	logger *zap.Logger,
) {
	paymentService := services.NewPaymentService(
		printRequestRepo,
		momoProvider,
		logger,
	)

	paymentController := controllers.NewPaymentController(
		paymentService,
		logger,
	)

	e.POST("/api/payments/request", paymentController.RequestPayment)
	e.GET("/api/payments/status/:referenceId", paymentController.GetPaymentStatus)
	e.GET("/requests/:id/payment", paymentController.RefreshPaymentStatus)
}
