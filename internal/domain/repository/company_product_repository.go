package repository

import "github.com/logisur/almacen-api/internal/domain/entity"

// CompanyProductRepository puerto para el stock por (empresa, producto).
// Las variantes ForUpdate bloquean la fila (SELECT FOR UPDATE) y deben usarse
// dentro de transacciones para las secuencias leer-modificar-escribir.
type CompanyProductRepository interface {
	Get(companyID, productID string) (*entity.CompanyProduct, error)
	GetForUpdate(companyID, productID string) (*entity.CompanyProduct, error)
	GetByIDForUpdate(id string) (*entity.CompanyProduct, error)
	Upsert(cp *entity.CompanyProduct) error
	ListByCompany(companyID string) ([]entity.CompanyProduct, error)
}
