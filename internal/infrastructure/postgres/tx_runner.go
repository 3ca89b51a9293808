package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logisur/almacen-api/internal/application/batch"
	"github.com/logisur/almacen-api/internal/application/dispatch"
	"github.com/logisur/almacen-api/internal/application/reception"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ reception.TxRunner = (*TxRunner)(nil)
var _ dispatch.TxRunner = (*TxRunner)(nil)
var _ batch.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReception inicia una transacción con los repos del registro de recepciones.
func (r *TxRunner) RunReception(ctx context.Context, fn func(
	receptions repository.ReceptionRepository,
	lots repository.LotRepository,
	stock repository.CompanyProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewReceptionRepository(tx), NewLotRepository(tx), NewCompanyProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDispatch inicia una transacción con los repos de mutación despacho+stock.
func (r *TxRunner) RunDispatch(ctx context.Context, fn func(
	dispatches repository.DispatchRepository,
	stock repository.CompanyProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDispatchRepository(tx), NewCompanyProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDelivery inicia la transacción de entrega: despacho, lotes de
// almacenamiento y lote de transporte.
func (r *TxRunner) RunDelivery(ctx context.Context, fn func(
	dispatches repository.DispatchRepository,
	lots repository.LotRepository,
	batches repository.BatchRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDispatchRepository(tx), NewLotRepository(tx), NewBatchRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBatch inicia una transacción con los repos de lote de transporte y despachos.
func (r *TxRunner) RunBatch(ctx context.Context, fn func(
	batches repository.BatchRepository,
	dispatches repository.DispatchRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBatchRepository(tx), NewDispatchRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
