// Package billing contiene la lógica de facturación de almacenamiento como
// funciones puras sobre lotes (sin acceso a base de datos): consumo FIFO de
// lotes al entregar despachos y cálculo de costos por días de ocupación.
package billing

import (
	"sort"
	"time"

	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
)

// LotUpdate cambio a persistir sobre un lote tocado por un consumo.
// Solo QtyLeft y DateOut son mutables; DateOut se incluye únicamente cuando el
// lote quedó agotado.
type LotUpdate struct {
	ID      string
	QtyLeft int
	DateOut *time.Time
}

// Consume recorre los lotes abiertos de un producto en orden FIFO (dateIn
// ascendente; a igual fecha, menor qtyLeft primero) descontando la demanda de
// una línea de despacho. Devuelve solo los lotes tocados: un lote agotado queda
// con QtyLeft 0 y DateOut en la fecha del despacho; un consumo parcial conserva
// DateOut nulo.
//
// Si la demanda supera el qtyLeft total disponible retorna ErrInsufficientLots:
// un consumo a medias dejaría deuda de almacenamiento sin dueño.
func Consume(lots []entity.ReceptionLot, demand int, dateOut time.Time) ([]LotUpdate, error) {
	if demand <= 0 {
		return nil, domain.ErrInvalidInput
	}

	ordered := make([]entity.ReceptionLot, len(lots))
	copy(ordered, lots)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DateIn.Equal(ordered[j].DateIn) {
			return ordered[i].QtyLeft < ordered[j].QtyLeft
		}
		return ordered[i].DateIn.Before(ordered[j].DateIn)
	})

	var updates []LotUpdate
	remaining := demand

	for _, lot := range ordered {
		if remaining == 0 {
			break
		}
		if lot.QtyLeft <= 0 {
			continue
		}

		if remaining < lot.QtyLeft {
			updates = append(updates, LotUpdate{ID: lot.ID, QtyLeft: lot.QtyLeft - remaining})
			remaining = 0
			break
		}

		// El lote se agota: fijar fecha de salida.
		if dateOnly(dateOut).Before(dateOnly(lot.DateIn)) {
			return nil, domain.ErrInvalidLotDates
		}
		out := dateOut
		updates = append(updates, LotUpdate{ID: lot.ID, QtyLeft: 0, DateOut: &out})
		remaining -= lot.QtyLeft
	}

	if remaining > 0 {
		return nil, domain.ErrInsufficientLots
	}
	return updates, nil
}
