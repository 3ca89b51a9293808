package dto

// CreateBatchRequest body para POST /api/batches.
type CreateBatchRequest struct {
	CarrierID  string   `json:"carrier_id"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Dispatches []string `json:"dispatches"`
}

// UpdateBatchRequest body para PUT /api/batches/:id.
type UpdateBatchRequest struct {
	CarrierID string `json:"carrier_id"`
}

// BatchResponse lote de transporte en respuestas.
type BatchResponse struct {
	ID        string `json:"id"`
	CarrierID string `json:"carrier_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Step      int    `json:"step"`
}

// BatchListResponse listado paginado de lotes de transporte.
type BatchListResponse struct {
	Rows []BatchResponse `json:"rows"`
	PageResponse
}
