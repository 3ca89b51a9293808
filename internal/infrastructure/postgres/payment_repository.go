package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo pagos manuales sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, company_id, method, amount, date, COALESCE(reference, ''), COALESCE(issuing_name, ''), COALESCE(issuing_email, ''), status, created_at, updated_at`

// Create persiste un pago.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, company_id, method, amount, date, reference, issuing_name, issuing_email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompanyID, p.Method, p.Amount, p.Date,
		p.Reference, p.IssuingName, p.IssuingEmail, p.Status,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Method, &p.Amount, &p.Date,
		&p.Reference, &p.IssuingName, &p.IssuingEmail, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// List lista pagos paginados con el total sin paginar.
func (r *PaymentRepo) List(f repository.PaymentFilter) ([]entity.Payment, int, error) {
	ctx := context.Background()
	where, args := paymentFilterWhere(f)

	var count int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM payments`+where, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	query := `SELECT ` + paymentColumns + ` FROM payments` + where + ` ORDER BY date DESC, created_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Method, &p.Amount, &p.Date,
			&p.Reference, &p.IssuingName, &p.IssuingEmail, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, count, rows.Err()
}

// UpdateStatus cambia el estado del pago.
func (r *PaymentRepo) UpdateStatus(id, status string) error {
	query := `UPDATE payments SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

// ListApprovedByCompany pagos aprobados de la empresa, para el estado de cuenta.
func (r *PaymentRepo) ListApprovedByCompany(companyID string) ([]entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments WHERE company_id = $1 AND status = $2
		ORDER BY date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, companyID, entity.PaymentStatusAprobado)
	if err != nil {
		return nil, fmt.Errorf("list approved payments: %w", err)
	}
	defer rows.Close()

	var out []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Method, &p.Amount, &p.Date,
			&p.Reference, &p.IssuingName, &p.IssuingEmail, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func paymentFilterWhere(f repository.PaymentFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CompanyID != "" {
		add(" company_id = $%d", f.CompanyID)
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
