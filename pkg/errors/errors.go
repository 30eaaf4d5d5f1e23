package errors

import "fmt"

var (
	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Хранилище
	ErrStorageFailure = fmt.Errorf("ошибка сохранения данных")

	// Платёжный шлюз
	ErrGatewayAuth        = fmt.Errorf("не удалось получить токен платёжного шлюза")
	ErrGatewayUnavailable = fmt.Errorf("платёжный шлюз недоступен")
	ErrGatewayProtocol    = fmt.Errorf("неожиданный ответ платёжного шлюза")

	// Жизненный цикл заявки
	ErrQuotationNotSet       = fmt.Errorf("стоимость заявки ещё не выставлена")
	ErrAmountMismatch        = fmt.Errorf("сумма не совпадает с выставленной стоимостью")
	ErrPaymentAlreadyPending = fmt.Errorf("по заявке уже есть неподтверждённый платёж")
	ErrPaymentNotRequested   = fmt.Errorf("по заявке ещё не инициирован платёж")
	ErrInvalidStatus         = fmt.Errorf("недопустимое значение статуса")
)

// InvalidInputError — ошибка валидации входных данных с произвольным текстом.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
