package dto

// DateLayout formato de fechas de negocio en la API (solo fecha, sin hora).
const DateLayout = "2006-01-02"

// PageRequest paginación para listados (skip/limit). Limit 0 = sin paginar.
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// PageResponse metadatos de página en respuestas paginadas.
type PageResponse struct {
	Count int `json:"count"`
	Pages int `json:"pages"`
}

// Pages calcula el total de páginas para un límite dado.
func Pages(count, limit int) int {
	if limit <= 0 {
		return 1
	}
	return (count + limit - 1) / limit
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
