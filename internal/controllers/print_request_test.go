// Файл: internal/controllers/print_request_test.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"print-orders/internal/dto"
	"print-orders/internal/entities"
	apperrors "print-orders/pkg/errors"
	"print-orders/pkg/utils"
)

type mockPrintRequestService struct {
	SubmitFunc              func(ctx context.Context, payload dto.CreatePrintRequestDTO, files []*multipart.FileHeader) (*dto.PrintRequestDTO, error)
	FindAllFunc             func(ctx context.Context) ([]dto.PrintRequestDTO, error)
	FindByIDFunc            func(ctx context.Context, id uint64) (*dto.PrintRequestDTO, error)
	UpdateStatusFunc        func(ctx context.Context, id uint64, status string) (*dto.PrintRequestDTO, error)
	SetQuotationFunc        func(ctx context.Context, id uint64, amount float64) (*dto.PrintRequestDTO, error)
	UpdatePaymentStatusFunc func(ctx context.Context, id uint64, paymentStatus string) (*dto.PrintRequestDTO, error)

	Calls int
}

func (m *mockPrintRequestService) Submit(ctx context.Context, payload dto.CreatePrintRequestDTO, files []*multipart.FileHeader) (*dto.PrintRequestDTO, error) {
	m.Calls++
	return m.SubmitFunc(ctx, payload, files)
}

func (m *mockPrintRequestService) FindAll(ctx context.Context) ([]dto.PrintRequestDTO, error) {
	m.Calls++
	return m.FindAllFunc(ctx)
}

func (m *mockPrintRequestService) FindByID(ctx context.Context, id uint64) (*dto.PrintRequestDTO, error) {
	m.Calls++
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPrintRequestService) UpdateStatus(ctx context.Context, id uint64, status string) (*dto.PrintRequestDTO, error) {
	m.Calls++
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *mockPrintRequestService) SetQuotation(ctx context.Context, id uint64, amount float64) (*dto.PrintRequestDTO, error) {
	m.Calls++
	return m.SetQuotationFunc(ctx, id, amount)
}

func (m *mockPrintRequestService) UpdatePaymentStatus(ctx context.Context, id uint64, paymentStatus string) (*dto.PrintRequestDTO, error) {
	m.Calls++
	return m.UpdatePaymentStatusFunc(ctx, id, paymentStatus)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	return e
}

func TestFindRequestMalformedID(t *testing.T) {
	e := newTestEcho()
	svc := &mockPrintRequestService{}
	controller := NewPrintRequestController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/requests/abc", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	require.NoError(t, controller.FindRequest(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code, "Кривой id должен отклоняться до похода в сервис")
	assert.Zero(t, svc.Calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid ID format", body["message"])
}

func TestFindRequestUnknownID(t *testing.T) {
	e := newTestEcho()
	svc := &mockPrintRequestService{
		FindByIDFunc: func(ctx context.Context, id uint64) (*dto.PrintRequestDTO, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	controller := NewPrintRequestController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/requests/9999", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("9999")

	require.NoError(t, controller.FindRequest(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusResponseShape(t *testing.T) {
	e := newTestEcho()
	svc := &mockPrintRequestService{
		UpdateStatusFunc: func(ctx context.Context, id uint64, status string) (*dto.PrintRequestDTO, error) {
			return &dto.PrintRequestDTO{ID: id, Status: status, Files: []dto.AttachmentDTO{}}, nil
		},
	}
	controller := NewPrintRequestController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/requests/3", strings.NewReader(`{"status":"Accepted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, controller.UpdateStatus(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order status updated successfully", body["message"])
	request := body["request"].(map[string]interface{})
	assert.Equal(t, entities.RequestStatusAccepted, request["status"])
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	e := newTestEcho()
	svc := &mockPrintRequestService{
		UpdateStatusFunc: func(ctx context.Context, id uint64, status string) (*dto.PrintRequestDTO, error) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
		},
	}
	controller := NewPrintRequestController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/requests/3", strings.NewReader(`{"status":"Shipped"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, controller.UpdateStatus(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePaymentStatusRequiresField(t *testing.T) {
	e := newTestEcho()
	svc := &mockPrintRequestService{}
	controller := NewPrintRequestController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/requests/3/payment", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, controller.UpdatePaymentStatus(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.Calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Payment status is required", body["message"])
}

func TestSetQuotationValidation(t *testing.T) {
	e := newTestEcho()
	svc := &mockPrintRequestService{
		SetQuotationFunc: func(ctx context.Context, id uint64, amount float64) (*dto.PrintRequestDTO, error) {
			quotation := amount
			return &dto.PrintRequestDTO{ID: id, QuotationAmount: &quotation, Files: []dto.AttachmentDTO{}}, nil
		},
	}
	controller := NewPrintRequestController(svc, zap.NewNop())

	t.Run("missing amount is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/requests/3/quotation", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("id")
		ctx.SetParamValues("3")

		require.NoError(t, controller.SetQuotation(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.Calls)
	})

	t.Run("zero amount passes validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/requests/3/quotation", strings.NewReader(`{"quotationAmount":0}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("id")
		ctx.SetParamValues("3")

		require.NoError(t, controller.SetQuotation(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Quotation added successfully", body["message"])
	})
}
