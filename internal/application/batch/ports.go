package batch

import (
	"context"

	"github.com/logisur/almacen-api/internal/domain/repository"
)

// TxRunner agrupa lote de transporte y despachos en una transacción: la
// creación asigna todos los despachos o ninguno, y el borrado los libera antes
// de eliminar el lote.
type TxRunner interface {
	RunBatch(ctx context.Context, fn func(
		batches repository.BatchRepository,
		dispatches repository.DispatchRepository,
	) error) error
}
