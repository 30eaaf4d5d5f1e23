package utils

import (
	"errors"
	"net/http"

	apperrors "print-orders/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorList сопоставляет доменные ошибки HTTP-кодам.
// Всё, чего здесь нет, отдаётся как 500.
var ErrorList = map[error]int{
	apperrors.ErrNotFound:              http.StatusNotFound,
	apperrors.ErrBadRequest:            http.StatusBadRequest,
	apperrors.ErrQuotationNotSet:       http.StatusBadRequest,
	apperrors.ErrAmountMismatch:        http.StatusBadRequest,
	apperrors.ErrInvalidStatus:         http.StatusBadRequest,
	apperrors.ErrPaymentNotRequested:   http.StatusBadRequest,
	apperrors.ErrPaymentAlreadyPending: http.StatusConflict,
	apperrors.ErrStorageFailure:        http.StatusInternalServerError,
	apperrors.ErrGatewayAuth:           http.StatusInternalServerError,
	apperrors.ErrGatewayUnavailable:    http.StatusInternalServerError,
	apperrors.ErrGatewayProtocol:       http.StatusInternalServerError,
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse переводит ошибку сервиса в HTTP-ответ вида {message, error}.
func ErrorResponse(ctx echo.Context, err error) error {
	message := err.Error()
	code := http.StatusInternalServerError
	detail := ""

	var httpErr *echo.HTTPError
	var invalidInput *apperrors.InvalidInputError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	case errors.As(err, &invalidInput):
		code = http.StatusBadRequest
		message = invalidInput.Message
	default:
		for appErr, statusCode := range ErrorList {
			if errors.Is(err, appErr) {
				message = appErr.Error()
				code = statusCode
				if err.Error() != appErr.Error() {
					detail = err.Error()
				}
				break
			}
		}
	}

	return ctx.JSON(code, &errorBody{Message: message, Error: detail})
}
