package dto

// RequestPaymentDTO — тело POST /api/payments/request.
// Сумма обязана совпадать с выставленной стоимостью заявки: защищаемся
// от подмены суммы на стороне клиента.
type RequestPaymentDTO struct {
	RequestID   uint64   `json:"requestId" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,gte=0"`
	PhoneNumber string   `json:"phoneNumber" validate:"required,min=6,max=20"`
}

// PaymentInitiatedDTO — ответ на инициацию платежа: наш референс плюс
// то, что вернул шлюз. 2xx от шлюза означает только «принято в обработку».
type PaymentInitiatedDTO struct {
	ReferenceID string                 `json:"referenceId"`
	Gateway     map[string]interface{} `json:"gateway,omitempty"`
}
