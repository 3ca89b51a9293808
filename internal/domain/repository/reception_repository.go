package repository

import (
	"time"

	"github.com/logisur/almacen-api/internal/domain/entity"
)

// ReceptionFilter filtros de listado de recepciones.
type ReceptionFilter struct {
	CompanyID string
	UserID    string
	Date      *time.Time
	Limit     int // 0 = sin paginación
	Offset    int
}

// ReceptionRepository puerto de persistencia de recepciones (cabecera + líneas).
type ReceptionRepository interface {
	// Create inserta la recepción y sus líneas, asignando IDs si faltan.
	Create(r *entity.Reception) error
	GetByID(id string) (*entity.Reception, error)
	List(f ReceptionFilter) ([]entity.Reception, int, error)
}
