package repository

import "github.com/logisur/almacen-api/internal/domain/entity"

// CompanyRepository puerto de persistencia de empresas cliente.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]entity.Company, error)
}
