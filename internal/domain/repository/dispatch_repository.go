package repository

import (
	"time"

	"github.com/logisur/almacen-api/internal/domain/entity"
)

// DispatchFilter filtros de listado de despachos.
type DispatchFilter struct {
	CompanyID string
	UserID    string
	Status    string
	BatchID   string
	Date      *time.Time
	Limit     int // 0 = sin paginación
	Offset    int
}

// DispatchRepository puerto de persistencia de despachos (cabecera + líneas).
type DispatchRepository interface {
	Create(d *entity.Dispatch) error
	GetByID(id string) (*entity.Dispatch, error)
	// GetByIDForUpdate bloquea la cabecera del despacho (FOR UPDATE); usar en la
	// transacción de entrega para serializar entregas concurrentes del mismo despacho.
	GetByIDForUpdate(id string) (*entity.Dispatch, error)
	List(f DispatchFilter) ([]entity.Dispatch, int, error)

	UpdateStatus(id, status string) error
	UpdateComments(id, comments string) error
	// SetBatch asigna (o retira, con batchID nil) el despacho a un lote de
	// transporte cambiando a la vez su estado.
	SetBatch(id string, batchID *string, status string) error
	// UpdateStatusByBatch cambia de estado todos los despachos del lote de transporte.
	UpdateStatusByBatch(batchID, status string) error
	// ReleaseByBatch desasigna todos los despachos del lote de transporte
	// (batch_id a NULL) dejándolos en el estado dado.
	ReleaseByBatch(batchID, status string) error
	// CountByBatchAndStatus cuenta despachos del lote de transporte en un estado dado.
	CountByBatchAndStatus(batchID, status string) (int, error)

	// ListDeliveredByCompany despachos entregados con la tarifa de reparto de la
	// ciudad del receptor, para el agregador de facturación.
	ListDeliveredByCompany(companyID string) ([]entity.DeliveredDispatch, error)
}
