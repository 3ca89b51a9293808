package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago manual. Solo los pagos aprobados descuentan deuda.
const (
	PaymentStatusPendiente = "pendiente"
	PaymentStatusAprobado  = "aprobado"
	PaymentStatusDenegado  = "denegado"
)

// Payment pago manual registrado contra la cuenta de una empresa.
type Payment struct {
	ID           string
	CompanyID    string
	Method       string // transferencia, pago móvil, efectivo...
	Amount       decimal.Decimal
	Date         time.Time
	Reference    string
	IssuingName  string
	IssuingEmail string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
