package dispatch

import (
	"context"

	"github.com/logisur/almacen-api/internal/domain/repository"
)

// TxRunner abre las transacciones de los flujos de despacho.
type TxRunner interface {
	// RunDispatch agrupa las mutaciones despacho+stock (creación, cancelación,
	// denegación) con las filas de stock bloqueadas.
	RunDispatch(ctx context.Context, fn func(
		dispatches repository.DispatchRepository,
		stock repository.CompanyProductRepository,
	) error) error

	// RunDelivery agrupa la entrega: cabecera bloqueada, consumo de lotes y
	// cascada de cierre del lote de transporte.
	RunDelivery(ctx context.Context, fn func(
		dispatches repository.DispatchRepository,
		lots repository.LotRepository,
		batches repository.BatchRepository,
	) error) error
}
