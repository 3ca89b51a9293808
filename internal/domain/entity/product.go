package entity

import "time"

// Product producto del catálogo (común a todas las empresas).
// QtyPerPallet: unidades de producto que caben en una paleta física.
type Product struct {
	ID           string
	Name         string
	QtyPerPallet int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
