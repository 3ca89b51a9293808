package repository

import (
	"time"

	"github.com/logisur/almacen-api/internal/domain/entity"
)

// PaymentFilter filtros de listado de pagos.
type PaymentFilter struct {
	CompanyID string
	Status    string
	Date      *time.Time
	Limit     int
	Offset    int
}

// PaymentRepository puerto de persistencia de pagos manuales.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List(f PaymentFilter) ([]entity.Payment, int, error)
	UpdateStatus(id, status string) error
	// ListApprovedByCompany pagos aprobados de la empresa, para el estado de cuenta.
	ListApprovedByCompany(companyID string) ([]entity.Payment, error)
}
