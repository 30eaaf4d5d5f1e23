package dto

import "time"

// CreatePrintRequestDTO — текстовые поля multipart-формы POST /upload.
// Файлы идут отдельно, полем files.
type CreatePrintRequestDTO struct {
	DocumentType    string `form:"documentType" json:"documentType" validate:"max=100"`
	PrintType       string `form:"printType" json:"printType" validate:"max=100"`
	Copies          int    `form:"copies" json:"copies" validate:"omitempty,gt=0"`
	DocumentFormat  string `form:"documentFormat" json:"documentFormat" validate:"max=100"`
	PaperSize       string `form:"paperSize" json:"paperSize" validate:"max=50"`
	Description     string `form:"description" json:"description" validate:"max=2000"`
	DescriptionType string `form:"descriptionType" json:"descriptionType" validate:"omitempty,oneof=Text File"`
	TextDescription string `form:"textDescription" json:"textDescription" validate:"max=2000"`
}

type UpdateStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type UpdateQuotationDTO struct {
	QuotationAmount *float64 `json:"quotationAmount" validate:"required"`
}

type UpdatePaymentStatusDTO struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// UpdatePrintRequestFieldsDTO — частичное обновление на уровне репозитория.
// Меняются только непустые (non-nil) поля, остальные сохраняются как есть.
type UpdatePrintRequestFieldsDTO struct {
	Status           *string
	QuotationAmount  *float64
	PaymentStatus    *string
	PaymentReference *string
}

type AttachmentDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type PrintRequestDTO struct {
	ID               uint64          `json:"id"`
	DocumentType     string          `json:"documentType"`
	PrintType        string          `json:"printType"`
	Copies           int             `json:"copies"`
	DocumentFormat   string          `json:"documentFormat"`
	PaperSize        string          `json:"paperSize"`
	Description      string          `json:"description"`
	DescriptionType  string          `json:"descriptionType"`
	TextDescription  *string         `json:"textDescription"`
	Status           string          `json:"status"`
	QuotationAmount  *float64        `json:"quotationAmount"`
	PaymentStatus    string          `json:"paymentStatus"`
	PaymentReference *string         `json:"paymentReference"`
	Files            []AttachmentDTO `json:"files"`
	CreatedAt        time.Time       `json:"createdAt"`
}
