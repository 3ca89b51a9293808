package entity

import "time"

// Estados de un lote de transporte (agrupación de despachos para un viaje).
const (
	BatchStatusPendiente  = "pendiente"
	BatchStatusEnTransito = "en tránsito"
	BatchStatusFinalizado = "finalizado"
)

// BatchStep marcador de paso del estado del lote de transporte.
func BatchStep(status string) int {
	switch status {
	case BatchStatusPendiente:
		return 1
	case BatchStatusEnTransito:
		return 2
	case BatchStatusFinalizado:
		return 3
	}
	return 0
}

// Batch agrupa despachos asignados a un transportista para una fecha.
// Pasa a finalizado cuando su último despacho deja el estado embarcado.
type Batch struct {
	ID        string
	CarrierID string // usuario transportista
	Date      time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
