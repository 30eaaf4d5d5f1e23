package controllers

import (
	"fmt"
	"net/http"
	"time"

	"print-orders/internal/dto"
	"print-orders/internal/services"
	"print-orders/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var reportHeaders = []interface{}{
	"ID", "Тип документа", "Тип печати", "Копий", "Формат", "Бумага",
	"Статус", "Стоимость", "Статус оплаты", "Референс платежа", "Файлов", "Создана",
}

type ReportController struct {
	printRequestService services.PrintRequestServiceInterface
	logger              *zap.Logger
}

func NewReportController(
	printRequestService services.PrintRequestServiceInterface,
	logger *zap.Logger,
) *ReportController {
	return &ReportController{
		printRequestService: printRequestService,
		logger:              logger,
	}
}

// ExportRequests — GET /requests/export: выгрузка всех заявок в xlsx.
func (c *ReportController) ExportRequests(ctx echo.Context) error {
	requests, err := c.printRequestService.FindAll(ctx.Request().Context())
	if err != nil {
		c.logger.Error("не удалось собрать данные для отчёта", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return c.respondWithXLSX(ctx, requests)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, requests []dto.PrintRequestDTO) error {
	f := excelize.NewFile()
	sheet := "Заявки на печать"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, request := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := requestToRow(request)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "F", 18)
	f.SetColWidth(sheet, "J", "J", 40)
	f.SetColWidth(sheet, "L", "L", 22)

	fileName := fmt.Sprintf("print_requests_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func requestToRow(r dto.PrintRequestDTO) []interface{} {
	quotation := ""
	if r.QuotationAmount != nil {
		quotation = fmt.Sprintf("%.2f", *r.QuotationAmount)
	}
	reference := ""
	if r.PaymentReference != nil {
		reference = *r.PaymentReference
	}

	return []interface{}{
		r.ID, r.DocumentType, r.PrintType, r.Copies, r.DocumentFormat, r.PaperSize,
		r.Status, quotation, r.PaymentStatus, reference, len(r.Files),
		r.CreatedAt.Format("2006-01-02 15:04"),
	}
}
