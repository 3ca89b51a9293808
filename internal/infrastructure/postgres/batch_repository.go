package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo lotes de transporte sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes de transporte. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote de transporte.
func (r *BatchRepo) Create(b *entity.Batch) error {
	query := `
		INSERT INTO batches (id, carrier_id, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`
	_, err := r.q.Exec(context.Background(), query, b.ID, b.CarrierID, b.Date, b.Status)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote de transporte por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `
		SELECT id, carrier_id, date, status, created_at, updated_at
		FROM batches WHERE id = $1`
	var b entity.Batch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CarrierID, &b.Date, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// List lista lotes de transporte paginados con el total sin paginar.
func (r *BatchRepo) List(f repository.BatchFilter) ([]entity.Batch, int, error) {
	ctx := context.Background()
	where, args := batchFilterWhere(f)

	var count int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM batches`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count batches: %w", err)
	}

	query := `
		SELECT id, carrier_id, date, status, created_at, updated_at
		FROM batches` + where + ` ORDER BY date DESC, created_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.CarrierID, &b.Date, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, b)
	}
	return out, count, rows.Err()
}

// UpdateCarrier cambia el transportista del lote.
func (r *BatchRepo) UpdateCarrier(id, carrierID string) error {
	query := `UPDATE batches SET carrier_id = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, carrierID)
	if err != nil {
		return fmt.Errorf("update batch carrier: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado del lote.
func (r *BatchRepo) UpdateStatus(id, status string) error {
	query := `UPDATE batches SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update batch status: %w", err)
	}
	return nil
}

// Delete elimina un lote de transporte.
func (r *BatchRepo) Delete(id string) error {
	query := `DELETE FROM batches WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	return nil
}

func batchFilterWhere(f repository.BatchFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CarrierID != "" {
		add(" carrier_id = $%d", f.CarrierID)
	}
	if f.Status != "" {
		add(" status = $%d", f.Status)
	}
	if f.Date != nil {
		add(" date = $%d", *f.Date)
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE" + conds[0]
	for _, c := range conds[1:] {
		where += " AND" + c
	}
	return where, args
}
