package entity

import "time"

// Reception un evento de llegada de mercancía de una empresa al almacén.
type Reception struct {
	ID        string
	CompanyID string
	UserID    string // usuario que registra la recepción
	Date      time.Time
	Products  []ReceptionProduct
	CreatedAt time.Time
}

// ReceptionProduct línea de una recepción: producto y cantidad en paletas.
type ReceptionProduct struct {
	ID          string
	ReceptionID string
	ProductID   string
	Qty         int // paletas recibidas en esta línea
}

// ReceptionLot unidad facturable de almacenamiento: una fila por paleta física.
// QtyLeft arranca en qtyPerPallet del producto y se va consumiendo con los
// despachos entregados. DateOut se fija exactamente cuando QtyLeft llega a 0;
// a partir de ahí el lote es inmutable.
type ReceptionLot struct {
	ID                 string
	ReceptionProductID string
	ProductID          string // denormalizado en lecturas (join a reception_products)
	DateIn             time.Time
	DateOut            *time.Time // nil mientras la paleta ocupa almacén
	QtyLeft            int
}

// Open indica si el lote sigue ocupando almacén.
func (l ReceptionLot) Open() bool {
	return l.DateOut == nil
}
