package repository

import (
	"time"

	"github.com/logisur/almacen-api/internal/domain/entity"
)

// BatchFilter filtros de listado de lotes de transporte.
type BatchFilter struct {
	CarrierID string
	Status    string
	Date      *time.Time
	Limit     int
	Offset    int
}

// BatchRepository puerto de persistencia de lotes de transporte.
type BatchRepository interface {
	Create(b *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	List(f BatchFilter) ([]entity.Batch, int, error)
	UpdateCarrier(id, carrierID string) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
