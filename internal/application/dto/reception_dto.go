package dto

// ReceptionLineRequest línea de una recepción: producto y paletas recibidas.
type ReceptionLineRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// CreateReceptionRequest body para POST /api/receptions.
type CreateReceptionRequest struct {
	CompanyID string                 `json:"company_id"`
	Date      string                 `json:"date"` // YYYY-MM-DD
	Products  []ReceptionLineRequest `json:"products"`
}

// ReceptionLineResponse línea de recepción en respuestas, con sus lotes.
type ReceptionLineResponse struct {
	ID        string        `json:"id"`
	ProductID string        `json:"product_id"`
	Qty       int           `json:"qty"`
	Lots      []LotResponse `json:"lots,omitempty"`
}

// LotResponse lote de almacenamiento en respuestas.
type LotResponse struct {
	ID      string  `json:"id"`
	DateIn  string  `json:"date_in"`
	DateOut *string `json:"date_out"`
	QtyLeft int     `json:"qty_left"`
}

// ReceptionResponse recepción con sus líneas.
type ReceptionResponse struct {
	ID        string                  `json:"id"`
	CompanyID string                  `json:"company_id"`
	UserID    string                  `json:"user_id"`
	Date      string                  `json:"date"`
	Products  []ReceptionLineResponse `json:"products"`
}

// ReceptionListResponse listado paginado de recepciones.
type ReceptionListResponse struct {
	Rows []ReceptionResponse `json:"rows"`
	PageResponse
}
