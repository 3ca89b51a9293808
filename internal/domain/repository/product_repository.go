package repository

import "github.com/logisur/almacen-api/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]entity.Product, error)
}
