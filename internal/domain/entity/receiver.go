package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// City ciudad de destino de repartos. DeliveryPrice es la tarifa que se cobra a la
// empresa por cada despacho entregado en esa ciudad.
type City struct {
	ID            string
	Name          string
	DeliveryPrice decimal.Decimal
	HasDeliveries bool
}

// Receiver destinatario de despachos de una empresa.
type Receiver struct {
	ID        string
	CompanyID string
	Name      string
	Document  string
	Phone     string
	Address   string
	CityID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
