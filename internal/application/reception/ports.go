package reception

import (
	"context"

	"github.com/logisur/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta el registro de una recepción dentro de una única
// transacción: cabecera, líneas, incremento de stock y lotes entran juntos
// o no entran.
type TxRunner interface {
	RunReception(ctx context.Context, fn func(
		receptions repository.ReceptionRepository,
		lots repository.LotRepository,
		stock repository.CompanyProductRepository,
	) error) error
}
