package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.ReceiverRepository = (*ReceiverRepo)(nil)

// ReceiverRepo receptores de despachos sobre PostgreSQL (usable con pool o tx).
type ReceiverRepo struct {
	q Querier
}

// NewReceiverRepository construye el adaptador de receptores. Pasar pool o tx (Querier).
func NewReceiverRepository(q Querier) *ReceiverRepo {
	return &ReceiverRepo{q: q}
}

const receiverColumns = `id, company_id, name, document, COALESCE(phone, ''), COALESCE(address, ''), city_id, created_at, updated_at`

// Create persiste un receptor.
func (r *ReceiverRepo) Create(rc *entity.Receiver) error {
	query := `
		INSERT INTO receivers (id, company_id, name, document, phone, address, city_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rc.ID, rc.CompanyID, rc.Name, rc.Document, rc.Phone, rc.Address,
		rc.CityID, rc.CreatedAt, rc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receiver: %w", err)
	}
	return nil
}

// GetByID obtiene un receptor por ID.
func (r *ReceiverRepo) GetByID(id string) (*entity.Receiver, error) {
	query := `SELECT ` + receiverColumns + ` FROM receivers WHERE id = $1`
	var rc entity.Receiver
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rc.ID, &rc.CompanyID, &rc.Name, &rc.Document, &rc.Phone,
		&rc.Address, &rc.CityID, &rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receiver: %w", err)
	}
	return &rc, nil
}

// ListByCompany receptores de la empresa.
func (r *ReceiverRepo) ListByCompany(companyID string) ([]entity.Receiver, error) {
	query := `SELECT ` + receiverColumns + ` FROM receivers WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list receivers: %w", err)
	}
	defer rows.Close()

	var out []entity.Receiver
	for rows.Next() {
		var rc entity.Receiver
		if err := rows.Scan(
			&rc.ID, &rc.CompanyID, &rc.Name, &rc.Document, &rc.Phone,
			&rc.Address, &rc.CityID, &rc.CreatedAt, &rc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan receiver: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}
