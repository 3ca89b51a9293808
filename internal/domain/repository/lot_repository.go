package repository

import (
	"github.com/logisur/almacen-api/internal/domain/billing"
	"github.com/logisur/almacen-api/internal/domain/entity"
)

// LotRepository puerto del libro de lotes de almacenamiento.
type LotRepository interface {
	// CreateBatch materializa los lotes de una recepción (una fila por paleta).
	CreateBatch(lots []entity.ReceptionLot) error

	// ListOpenByProductForUpdate devuelve los lotes con qtyLeft > 0 del producto,
	// ordenados por (dateIn ASC, qtyLeft ASC) y bloqueados con FOR UPDATE.
	// Usar solo dentro de la transacción de entrega de despacho.
	ListOpenByProductForUpdate(productID string) ([]entity.ReceptionLot, error)

	// ApplyUpdates persiste únicamente los lotes tocados por un consumo.
	ApplyUpdates(updates []billing.LotUpdate) error

	// ListByCompany lotes de la empresa (vía recepción), para el estado de cuenta.
	ListByCompany(companyID string) ([]entity.ReceptionLot, error)
}
