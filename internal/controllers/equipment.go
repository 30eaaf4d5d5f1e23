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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	equipments, err := c.equipmentService.GetEquipments(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, equipments)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := parseEquipmentID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	equipment, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, equipment)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	equipment, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("ошибка при создании оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message":   "Equipment created successfully",
		"equipment": equipment,
	})
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := parseEquipmentID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	equipment, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":   "Equipment updated successfully",
		"equipment": equipment,
	})
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, err := parseEquipmentID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	equipment, err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":   "Equipment deleted successfully",
		"equipment": equipment,
	})
}

func parseEquipmentID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "неверный ID оборудования")
	}
	return id, nil
}
