package controllers

import (
	"net/http"
	"strconv"

	"print-orders/internal/dto"
	"print-orders/internal/services"
	"print-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PrintRequestController struct {
	printRequestService services.PrintRequestServiceInterface
	logger              *zap.Logger
}

func NewPrintRequestController(
	printRequestService services.PrintRequestServiceInterface,
	logger *zap.Logger,
) *PrintRequestController {
	return &PrintRequestController{
		printRequestService: printRequestService,
		logger:              logger,
	}
}

// Submit — POST /upload: multipart с файлами и полями заявки.
func (c *PrintRequestController) Submit(ctx echo.Context) error {
	var payload dto.CreatePrintRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректная форма запроса"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "ожидается multipart-форма"))
	}
	files := form.File["files"]

	request, err := c.printRequestService.Submit(ctx.Request().Context(), payload, files)
	if err != nil {
		c.logger.Error("ошибка при создании заявки", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Files and data uploaded successfully",
		"request": request,
	})
}

// GetRequests — GET /requests: все заявки с вложениями.
func (c *PrintRequestController) GetRequests(ctx echo.Context) error {
	requests, err := c.printRequestService.FindAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, requests)
}

// FindRequest — GET /requests/:id.
func (c *PrintRequestController) FindRequest(ctx echo.Context) error {
	// Кривой id отклоняем до похода в БД.
	id, err := parseRequestID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.printRequestService.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, request)
}

// UpdateStatus — PATCH /requests/:id, тело {status}.
func (c *PrintRequestController) UpdateStatus(ctx echo.Context) error {
	id, err := parseRequestID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.UpdateStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.printRequestService.UpdateStatus(ctx.Request().Context(), id, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Order status updated successfully",
		"request": request,
	})
}

// SetQuotation — PATCH /requests/:id/quotation, тело {quotationAmount}.
func (c *PrintRequestController) SetQuotation(ctx echo.Context) error {
	id, err := parseRequestID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.UpdateQuotationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.printRequestService.SetQuotation(ctx.Request().Context(), id, *payload.QuotationAmount)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Quotation added successfully",
		"request": request,
	})
}

// UpdatePaymentStatus — PATCH /requests/:id/payment, тело {paymentStatus}.
func (c *PrintRequestController) UpdatePaymentStatus(ctx echo.Context) error {
	id, err := parseRequestID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.UpdatePaymentStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"))
	}
	if payload.PaymentStatus == "" {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Payment status is required"))
	}

	request, err := c.printRequestService.UpdatePaymentStatus(ctx.Request().Context(), id, payload.PaymentStatus)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Payment status updated successfully",
		"request": request,
	})
}

func parseRequestID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID format")
	}
	return id, nil
}
