package controllers

import (
	"net/http"

	"print-orders/internal/dto"
	"print-orders/internal/services"
	"print-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	logger         *zap.Logger
}

func NewPaymentController(
	paymentService services.PaymentServiceInterface,
	logger *zap.Logger,
) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         logger,
	}
}

// RequestPayment — POST /api/payments/request.
func (c *PaymentController) RequestPayment(ctx echo.Context) error {
	var payload dto.RequestPaymentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	result, err := c.paymentService.RequestPayment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("ошибка инициации платежа",
			zap.Uint64("request_id", payload.RequestID),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err)
	}

	// Референс плюс поля ответа шлюза, развёрнутые в один объект.
	response := map[string]interface{}{"referenceId": result.ReferenceID}
	for k, v := range result.Gateway {
		response[k] = v
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentStatus — GET /api/payments/status/:referenceId.
// Попутно записывает статус в заявку, которой принадлежит референс.
func (c *PaymentController) GetPaymentStatus(ctx echo.Context) error {
	referenceID := ctx.Param("referenceId")
	if referenceID == "" {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "referenceId обязателен"))
	}

	transaction, err := c.paymentService.ReconcileByReference(ctx.Request().Context(), referenceID)
	if err != nil {
		c.logger.Error("ошибка запроса статуса транзакции",
			zap.String("reference_id", referenceID),
			zap.Error(err),
		)
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transaction)
}

// RefreshPaymentStatus — GET /requests/:id/payment: опрос шлюза по заявке.
// Чтение с побочной записью — сверка статуса и задумана запросом статуса.
func (c *PaymentController) RefreshPaymentStatus(ctx echo.Context) error {
	id, err := parseRequestID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.paymentService.RefreshPaymentStatus(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Payment status refreshed successfully",
		"request": request,
	})
}
