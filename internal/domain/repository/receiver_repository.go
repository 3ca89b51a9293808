package repository

import "github.com/logisur/almacen-api/internal/domain/entity"

// ReceiverRepository puerto de persistencia de receptores de despachos.
type ReceiverRepository interface {
	Create(r *entity.Receiver) error
	GetByID(id string) (*entity.Receiver, error)
	ListByCompany(companyID string) ([]entity.Receiver, error)
}

// CityRepository puerto de persistencia de ciudades de reparto.
type CityRepository interface {
	Create(c *entity.City) error
	GetByID(id string) (*entity.City, error)
	List() ([]entity.City, error)
	Update(c *entity.City) error
}
