package dto

import "github.com/shopspring/decimal"

// LotCostResponse lote dentro del corte mensual, anotado con su costo calculado.
type LotCostResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	DateIn    string          `json:"date_in"`
	DateOut   *string         `json:"date_out"`
	QtyLeft   int             `json:"qty_left"`
	Cost      decimal.Decimal `json:"cost"`
}

// DispatchFeeResponse despacho entregado dentro del corte mensual con su tarifa
// de reparto.
type DispatchFeeResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	ReceiverName  string          `json:"receiver_name"`
	CityName      string          `json:"city_name"`
	DeliveryPrice decimal.Decimal `json:"delivery_price"`
}

// BillingDetails detalle del corte mensual: lotes y despachos considerados.
type BillingDetails struct {
	Lots       []LotCostResponse     `json:"lots"`
	Dispatches []DispatchFeeResponse `json:"dispatches"`
}

// StatementResponse estado de cuenta de una empresa.
// TotalDebt puede ser negativo; en ese caso PositiveBalance refleja el crédito.
type StatementResponse struct {
	CurrentMonthDebt decimal.Decimal `json:"current_month_debt"`
	TotalDebt        decimal.Decimal `json:"total_debt"`
	PositiveBalance  decimal.Decimal `json:"positive_balance"`
	BillingDetails   BillingDetails  `json:"billing_details"`
}
