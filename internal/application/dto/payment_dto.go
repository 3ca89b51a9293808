package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest body para POST /api/payments.
type CreatePaymentRequest struct {
	CompanyID    string          `json:"company_id,omitempty"` // solo personal de la instalación
	Method       string          `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Reference    string          `json:"reference"`
	IssuingName  string          `json:"issuing_name"`
	IssuingEmail string          `json:"issuing_email"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Method       string          `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Reference    string          `json:"reference"`
	IssuingName  string          `json:"issuing_name"`
	IssuingEmail string          `json:"issuing_email"`
	Status       string          `json:"status"`
}

// PaymentListResponse listado paginado de pagos.
type PaymentListResponse struct {
	Rows []PaymentResponse `json:"rows"`
	PageResponse
}
