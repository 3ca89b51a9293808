package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.CompanyProductRepository = (*CompanyProductRepo)(nil)

// CompanyProductRepo stock por (empresa, producto) sobre PostgreSQL (usable con pool o tx).
type CompanyProductRepo struct {
	q Querier
}

// NewCompanyProductRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewCompanyProductRepository(q Querier) *CompanyProductRepo {
	return &CompanyProductRepo{q: q}
}

const companyProductColumns = `id, company_id, product_id, stock, updated_at`

// Get obtiene el stock de un producto en la cuenta de una empresa.
func (r *CompanyProductRepo) Get(companyID, productID string) (*entity.CompanyProduct, error) {
	query := `
		SELECT ` + companyProductColumns + `
		FROM company_products WHERE company_id = $1 AND product_id = $2`
	return r.scanOne(query, companyID, productID)
}

// GetForUpdate igual que Get pero bloqueando la fila (SELECT FOR UPDATE).
// Usar dentro de transacciones para las secuencias leer-modificar-escribir.
func (r *CompanyProductRepo) GetForUpdate(companyID, productID string) (*entity.CompanyProduct, error) {
	query := `
		SELECT ` + companyProductColumns + `
		FROM company_products WHERE company_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(query, companyID, productID)
}

// GetByIDForUpdate bloquea la fila de stock por su ID.
func (r *CompanyProductRepo) GetByIDForUpdate(id string) (*entity.CompanyProduct, error) {
	query := `
		SELECT ` + companyProductColumns + `
		FROM company_products WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

// Upsert inserta o actualiza el contador de stock.
func (r *CompanyProductRepo) Upsert(cp *entity.CompanyProduct) error {
	query := `
		INSERT INTO company_products (id, company_id, product_id, stock, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (company_id, product_id)
		DO UPDATE SET stock = EXCLUDED.stock, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, cp.ID, cp.CompanyID, cp.ProductID, cp.Stock)
	if err != nil {
		return fmt.Errorf("upsert company product: %w", err)
	}
	return nil
}

// ListByCompany stock de todos los productos de la empresa.
func (r *CompanyProductRepo) ListByCompany(companyID string) ([]entity.CompanyProduct, error) {
	query := `
		SELECT ` + companyProductColumns + `
		FROM company_products WHERE company_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company products: %w", err)
	}
	defer rows.Close()

	var out []entity.CompanyProduct
	for rows.Next() {
		var cp entity.CompanyProduct
		if err := rows.Scan(&cp.ID, &cp.CompanyID, &cp.ProductID, &cp.Stock, &cp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company product: %w", err)
		}
		out = append(out, cp)
	}
	return out, rows.Err()
}

func (r *CompanyProductRepo) scanOne(query string, args ...any) (*entity.CompanyProduct, error) {
	var cp entity.CompanyProduct
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&cp.ID, &cp.CompanyID, &cp.ProductID, &cp.Stock, &cp.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company product: %w", err)
	}
	return &cp, nil
}
