package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.DispatchRepository = (*DispatchRepo)(nil)

// DispatchRepo cabeceras y líneas de despacho sobre PostgreSQL (usable con pool o tx).
type DispatchRepo struct {
	q Querier
}

// NewDispatchRepository construye el adaptador de despachos. Pasar pool o tx (Querier).
func NewDispatchRepository(q Querier) *DispatchRepo {
	return &DispatchRepo{q: q}
}

const dispatchColumns = `id, company_id, user_id, receiver_id, batch_id, status, date, COALESCE(comments, ''), created_at, updated_at`

// Create inserta el despacho y sus líneas.
func (r *DispatchRepo) Create(d *entity.Dispatch) error {
	ctx := context.Background()
	query := `
		INSERT INTO dispatches (id, company_id, user_id, receiver_id, batch_id, status, date, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), now(), now())`
	if _, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.UserID, d.ReceiverID, d.BatchID, d.Status, d.Date, d.Comments,
	); err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	lineQuery := `
		INSERT INTO dispatch_products (id, dispatch_id, company_product_id, qty)
		VALUES ($1, $2, $3, $4)`
	for _, line := range d.Products {
		if _, err := r.q.Exec(ctx, lineQuery, line.ID, d.ID, line.CompanyProductID, line.Qty); err != nil {
			return fmt.Errorf("insert dispatch product: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un despacho con sus líneas.
func (r *DispatchRepo) GetByID(id string) (*entity.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatches WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate bloquea la cabecera del despacho (FOR UPDATE).
func (r *DispatchRepo) GetByIDForUpdate(id string) (*entity.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatches WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// List lista despachos paginados con el total sin paginar.
func (r *DispatchRepo) List(f repository.DispatchFilter) ([]entity.Dispatch, int, error) {
	ctx := context.Background()
	where, args := dispatchFilterWhere(f)

	var count int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM dispatches`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count dispatches: %w", err)
	}

	query := `SELECT ` + dispatchColumns + ` FROM dispatches` + where + ` ORDER BY date DESC, created_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list dispatches: %w", err)
	}
	defer rows.Close()

	var out []entity.Dispatch
	for rows.Next() {
		var d entity.Dispatch
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.UserID, &d.ReceiverID, &d.BatchID,
			&d.Status, &d.Date, &d.Comments, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan dispatch: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range out {
		if err := r.loadLines(ctx, &out[i]); err != nil {
			return nil, 0, err
		}
	}
	return out, count, nil
}

// UpdateStatus cambia el estado del despacho.
func (r *DispatchRepo) UpdateStatus(id, status string) error {
	query := `UPDATE dispatches SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update dispatch status: %w", err)
	}
	return nil
}

// UpdateComments guarda el motivo de denegación.
func (r *DispatchRepo) UpdateComments(id, comments string) error {
	query := `UPDATE dispatches SET comments = NULLIF($2, ''), updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, comments)
	if err != nil {
		return fmt.Errorf("update dispatch comments: %w", err)
	}
	return nil
}

// SetBatch asigna (o retira, con batchID nil) el despacho a un lote de
// transporte cambiando a la vez su estado.
func (r *DispatchRepo) SetBatch(id string, batchID *string, status string) error {
	query := `UPDATE dispatches SET batch_id = $2, status = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, batchID, status)
	if err != nil {
		return fmt.Errorf("set dispatch batch: %w", err)
	}
	return nil
}

// UpdateStatusByBatch cambia de estado todos los despachos del lote de transporte.
func (r *DispatchRepo) UpdateStatusByBatch(batchID, status string) error {
	query := `UPDATE dispatches SET status = $2, updated_at = now() WHERE batch_id = $1`
	_, err := r.q.Exec(context.Background(), query, batchID, status)
	if err != nil {
		return fmt.Errorf("update dispatches by batch: %w", err)
	}
	return nil
}

// ReleaseByBatch desasigna todos los despachos del lote dejándolos en el estado dado.
func (r *DispatchRepo) ReleaseByBatch(batchID, status string) error {
	query := `UPDATE dispatches SET batch_id = NULL, status = $2, updated_at = now() WHERE batch_id = $1`
	_, err := r.q.Exec(context.Background(), query, batchID, status)
	if err != nil {
		return fmt.Errorf("release dispatches by batch: %w", err)
	}
	return nil
}

// CountByBatchAndStatus cuenta despachos del lote en un estado dado.
func (r *DispatchRepo) CountByBatchAndStatus(batchID, status string) (int, error) {
	var count int
	query := `SELECT count(*) FROM dispatches WHERE batch_id = $1 AND status = $2`
	if err := r.q.QueryRow(context.Background(), query, batchID, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count dispatches by batch: %w", err)
	}
	return count, nil
}

// ListDeliveredByCompany despachos entregados de la empresa con receptor,
// ciudad y tarifa de reparto, para el agregador de facturación.
func (r *DispatchRepo) ListDeliveredByCompany(companyID string) ([]entity.DeliveredDispatch, error) {
	query := `
		SELECT d.id, d.date, rv.name, c.name, c.delivery_price
		FROM dispatches d
		JOIN receivers rv ON rv.id = d.receiver_id
		JOIN cities c ON c.id = rv.city_id
		WHERE d.company_id = $1 AND d.status = $2
		ORDER BY d.date ASC, d.id ASC`
	rows, err := r.q.Query(context.Background(), query, companyID, entity.DispatchStatusEntregado)
	if err != nil {
		return nil, fmt.Errorf("list delivered dispatches: %w", err)
	}
	defer rows.Close()

	var out []entity.DeliveredDispatch
	for rows.Next() {
		var d entity.DeliveredDispatch
		if err := rows.Scan(&d.ID, &d.Date, &d.ReceiverName, &d.CityName, &d.DeliveryPrice); err != nil {
			return nil, fmt.Errorf("scan delivered dispatch: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DispatchRepo) getOne(query string, args ...any) (*entity.Dispatch, error) {
	ctx := context.Background()
	var d entity.Dispatch
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.CompanyID, &d.UserID, &d.ReceiverID, &d.BatchID,
		&d.Status, &d.Date, &d.Comments, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	if err := r.loadLines(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DispatchRepo) loadLines(ctx context.Context, d *entity.Dispatch) error {
	query := `
		SELECT dp.id, dp.dispatch_id, dp.company_product_id, cp.product_id, dp.qty
		FROM dispatch_products dp
		JOIN company_products cp ON cp.id = dp.company_product_id
		WHERE dp.dispatch_id = $1 ORDER BY dp.id`
	rows, err := r.q.Query(ctx, query, d.ID)
	if err != nil {
		return fmt.Errorf("list dispatch products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.DispatchProduct
		if err := rows.Scan(&line.ID, &line.DispatchID, &line.CompanyProductID, &line.ProductID, &line.Qty); err != nil {
			return fmt.Errorf("scan dispatch product: %w", err)
		}
		d.Products = append(d.Products, line)
	}
	return rows.Err()
}

func dispatchFilterWhere(f repository.DispatchFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CompanyID != "" {
		add(" company_id = $%d", f.CompanyID)
	}
	if f.UserID != "" {
		add(" user_id = $%d", f.UserID)
	}
	if f.Status != "" {
		add(" status = $%d", f.Status)
	}
	if f.BatchID != "" {
		add(" batch_id = $%d", f.BatchID)
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
