package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un despacho. Los marcadores numéricos de paso alimentan la barra de
// progreso del front (0 = estado terminal anómalo).
const (
	DispatchStatusSolicitado = "solicitado"
	DispatchStatusAgendado   = "agendado"
	DispatchStatusEmbarcado  = "embarcado"
	DispatchStatusEntregado  = "entregado"
	DispatchStatusCancelado  = "cancelado"
	DispatchStatusDenegado   = "denegado"
)

// DispatchStep devuelve el marcador de paso del estado (0 para terminales anómalos
// y estados desconocidos).
func DispatchStep(status string) int {
	switch status {
	case DispatchStatusSolicitado:
		return 1
	case DispatchStatusAgendado:
		return 2
	case DispatchStatusEmbarcado:
		return 3
	case DispatchStatusEntregado:
		return 4
	}
	return 0
}

// DispatchStatusTerminal indica si el estado no admite más transiciones.
func DispatchStatusTerminal(status string) bool {
	return status == DispatchStatusEntregado ||
		status == DispatchStatusCancelado ||
		status == DispatchStatusDenegado
}

// Dispatch una solicitud de envío de mercancía almacenada hacia un receptor.
type Dispatch struct {
	ID         string
	CompanyID  string
	UserID     string // solicitante
	ReceiverID string
	BatchID    *string // nil = sin lote de transporte asignado
	Status     string
	Date       time.Time
	Comments   string // motivo de denegación
	Products   []DispatchProduct
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DispatchProduct línea de un despacho. Qty se descuenta del stock de la empresa
// al crear el despacho y es la demanda que el consumidor de lotes debe cubrir al
// entregarse.
type DispatchProduct struct {
	ID               string
	DispatchID       string
	CompanyProductID string
	ProductID        string // denormalizado en lecturas (join a company_products)
	Qty              int
}

// DeliveredDispatch vista de un despacho entregado para el agregador de facturación:
// fecha de entrega y tarifa de reparto de la ciudad del receptor.
type DeliveredDispatch struct {
	ID            string
	Date          time.Time
	ReceiverName  string
	CityName      string
	DeliveryPrice decimal.Decimal
}
