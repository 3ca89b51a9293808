package dto

// DispatchLineRequest línea de un despacho: stock de la empresa y cantidad a retirar.
type DispatchLineRequest struct {
	CompanyProductID string `json:"company_product_id"`
	Qty              int    `json:"qty"`
}

// CreateDispatchRequest body para POST /api/dispatches.
// CompanyID solo lo envía el personal de la instalación; los usuarios cliente
// despachan contra su propia empresa.
type CreateDispatchRequest struct {
	CompanyID  string                `json:"company_id,omitempty"`
	ReceiverID string                `json:"receiver_id"`
	Date       string                `json:"date"` // YYYY-MM-DD
	Products   []DispatchLineRequest `json:"products"`
}

// DenyDispatchRequest body para PUT /api/dispatches/:id/deny.
type DenyDispatchRequest struct {
	Comments string `json:"comments"`
}

// AllocateBatchRequest body para PUT /api/dispatches/:id/batch.
type AllocateBatchRequest struct {
	BatchID string `json:"batch_id"`
}

// DispatchLineResponse línea de despacho en respuestas.
type DispatchLineResponse struct {
	ID               string `json:"id"`
	CompanyProductID string `json:"company_product_id"`
	ProductID        string `json:"product_id"`
	Qty              int    `json:"qty"`
}

// DispatchResponse despacho con estado, marcador de paso y líneas.
type DispatchResponse struct {
	ID         string                 `json:"id"`
	CompanyID  string                 `json:"company_id"`
	UserID     string                 `json:"user_id"`
	ReceiverID string                 `json:"receiver_id"`
	BatchID    *string                `json:"batch_id"`
	Status     string                 `json:"status"`
	Step       int                    `json:"step"`
	Date       string                 `json:"date"`
	Comments   string                 `json:"comments,omitempty"`
	Products   []DispatchLineResponse `json:"products"`
}

// DispatchListResponse listado paginado de despachos.
type DispatchListResponse struct {
	Rows []DispatchResponse `json:"rows"`
	PageResponse
}
