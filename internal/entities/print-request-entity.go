package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Статусы заявки. Набор закрытый: значения вне него отклоняются на границе.
const (
	RequestStatusPending   = "Pending"
	RequestStatusAccepted  = "Accepted"
	RequestStatusRejected  = "Rejected"
	RequestStatusCompleted = "Completed"
)

// Статусы оплаты.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

func IsValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusCompleted:
		return true
	}
	return false
}

func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// PrintRequest — заявка на печать.
// Список вложений фиксируется при создании и больше не меняется.
// PaymentReference назначается не более одного раза и служит единственным
// ключом для запроса статуса оплаты у шлюза.
type PrintRequest struct {
	ID               uint64       `db:"id"`
	DocumentType     string       `db:"document_type"`
	PrintType        string       `db:"print_type"`
	Copies           int          `db:"copies"`
	DocumentFormat   string       `db:"document_format"`
	PaperSize        string       `db:"paper_size"`
	Description      string       `db:"description"`
	DescriptionType  string       `db:"description_type"`
	TextDescription  null.String  `db:"text_description"`
	Status           string       `db:"status"`
	QuotationAmount  null.Float64 `db:"quotation_amount"`
	PaymentStatus    string       `db:"payment_status"`
	PaymentReference null.String  `db:"payment_reference"`
	CreatedAt        time.Time    `db:"created_at"`

	Attachments []Attachment `db:"-"` // заполняется join-запросом, в порядке загрузки
}
