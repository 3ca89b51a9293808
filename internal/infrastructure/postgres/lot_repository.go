package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain/billing"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo libro de lotes de almacenamiento sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// CreateBatch materializa los lotes de una recepción (una fila por paleta).
func (r *LotRepo) CreateBatch(lots []entity.ReceptionLot) error {
	ctx := context.Background()
	query := `
		INSERT INTO reception_lots (id, reception_product_id, date_in, date_out, qty_left)
		VALUES ($1, $2, $3, $4, $5)`
	for _, lot := range lots {
		if _, err := r.q.Exec(ctx, query,
			lot.ID, lot.ReceptionProductID, lot.DateIn, lot.DateOut, lot.QtyLeft,
		); err != nil {
			return fmt.Errorf("insert lot: %w", err)
		}
	}
	return nil
}

// ListOpenByProductForUpdate lotes abiertos del producto en orden de consumo
// FIFO (date_in ASC, qty_left ASC), bloqueados con FOR UPDATE. El bloqueo
// serializa entregas concurrentes que compiten por las mismas paletas.
func (r *LotRepo) ListOpenByProductForUpdate(productID string) ([]entity.ReceptionLot, error) {
	query := `
		SELECT l.id, l.reception_product_id, rp.product_id, l.date_in, l.date_out, l.qty_left
		FROM reception_lots l
		JOIN reception_products rp ON rp.id = l.reception_product_id
		WHERE rp.product_id = $1 AND l.qty_left > 0
		ORDER BY l.date_in ASC, l.qty_left ASC
		FOR UPDATE OF l`
	return r.list(query, productID)
}

// ApplyUpdates persiste únicamente los lotes tocados por un consumo.
func (r *LotRepo) ApplyUpdates(updates []billing.LotUpdate) error {
	ctx := context.Background()
	query := `
		UPDATE reception_lots SET qty_left = $2, date_out = $3
		WHERE id = $1`
	for _, u := range updates {
		cmd, err := r.q.Exec(ctx, query, u.ID, u.QtyLeft, u.DateOut)
		if err != nil {
			return fmt.Errorf("update lot: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return fmt.Errorf("update lot %s: fila inexistente", u.ID)
		}
	}
	return nil
}

// ListByCompany todos los lotes de la empresa (vía recepción), para el estado
// de cuenta.
func (r *LotRepo) ListByCompany(companyID string) ([]entity.ReceptionLot, error) {
	query := `
		SELECT l.id, l.reception_product_id, rp.product_id, l.date_in, l.date_out, l.qty_left
		FROM reception_lots l
		JOIN reception_products rp ON rp.id = l.reception_product_id
		JOIN receptions rc ON rc.id = rp.reception_id
		WHERE rc.company_id = $1
		ORDER BY l.date_in ASC, l.id ASC`
	return r.list(query, companyID)
}

func (r *LotRepo) list(query string, args ...any) ([]entity.ReceptionLot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var out []entity.ReceptionLot
	for rows.Next() {
		var l entity.ReceptionLot
		if err := rows.Scan(&l.ID, &l.ReceptionProductID, &l.ProductID, &l.DateIn, &l.DateOut, &l.QtyLeft); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
