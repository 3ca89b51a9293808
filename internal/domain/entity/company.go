package entity

import "time"

// Company representa una empresa cliente del almacén (tenant del sistema).
type Company struct {
	ID        string
	Name      string
	RIF       string // registro fiscal de la empresa
	Address   string
	Phone     string
	Email     string
	CityID    string
	Status    string // active, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyProduct contador de stock por (empresa, producto), en unidades de producto.
// Se incrementa en la recepción (qty de paletas × qtyPerPallet) y se descuenta al
// crear un despacho; cancelar o denegar el despacho lo restituye.
type CompanyProduct struct {
	ID        string
	CompanyID string
	ProductID string
	Stock     int
	UpdatedAt time.Time
}
