package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.ReceptionRepository = (*ReceptionRepo)(nil)

// ReceptionRepo cabeceras y líneas de recepción sobre PostgreSQL (usable con pool o tx).
type ReceptionRepo struct {
	q Querier
}

// NewReceptionRepository construye el adaptador de recepciones. Pasar pool o tx (Querier).
func NewReceptionRepository(q Querier) *ReceptionRepo {
	return &ReceptionRepo{q: q}
}

// Create inserta la recepción y sus líneas.
func (r *ReceptionRepo) Create(rec *entity.Reception) error {
	ctx := context.Background()
	query := `
		INSERT INTO receptions (id, company_id, user_id, date, created_at)
		VALUES ($1, $2, $3, $4, now())`
	if _, err := r.q.Exec(ctx, query, rec.ID, rec.CompanyID, rec.UserID, rec.Date); err != nil {
		return fmt.Errorf("insert reception: %w", err)
	}
	lineQuery := `
		INSERT INTO reception_products (id, reception_id, product_id, qty)
		VALUES ($1, $2, $3, $4)`
	for _, line := range rec.Products {
		if _, err := r.q.Exec(ctx, lineQuery, line.ID, rec.ID, line.ProductID, line.Qty); err != nil {
			return fmt.Errorf("insert reception product: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una recepción con sus líneas.
func (r *ReceptionRepo) GetByID(id string) (*entity.Reception, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, user_id, date, created_at
		FROM receptions WHERE id = $1`
	var rec entity.Reception
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.CompanyID, &rec.UserID, &rec.Date, &rec.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reception: %w", err)
	}
	if err := r.loadLines(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List lista recepciones con sus líneas, paginadas y con el total sin paginar.
func (r *ReceptionRepo) List(f repository.ReceptionFilter) ([]entity.Reception, int, error) {
	ctx := context.Background()
	where, args := receptionFilterWhere(f)

	var count int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM receptions`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count receptions: %w", err)
	}

	query := `
		SELECT id, company_id, user_id, date, created_at
		FROM receptions` + where + ` ORDER BY date DESC, created_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list receptions: %w", err)
	}
	defer rows.Close()

	var out []entity.Reception
	for rows.Next() {
		var rec entity.Reception
		if err := rows.Scan(&rec.ID, &rec.CompanyID, &rec.UserID, &rec.Date, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan reception: %w", err)
		}
		out = append(out, rec)
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

func (r *ReceptionRepo) loadLines(ctx context.Context, rec *entity.Reception) error {
	query := `
		SELECT id, reception_id, product_id, qty
		FROM reception_products WHERE reception_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, rec.ID)
	if err != nil {
		return fmt.Errorf("list reception products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.ReceptionProduct
		if err := rows.Scan(&line.ID, &line.ReceptionID, &line.ProductID, &line.Qty); err != nil {
			return fmt.Errorf("scan reception product: %w", err)
		}
		rec.Products = append(rec.Products, line)
	}
	return rows.Err()
}

func receptionFilterWhere(f repository.ReceptionFilter) (string, []any) {
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
