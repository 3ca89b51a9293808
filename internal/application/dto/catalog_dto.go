package dto

import "github.com/shopspring/decimal"

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	RIF     string `json:"rif"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	CityID  string `json:"city_id,omitempty"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RIF     string `json:"rif"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	CityID  string `json:"city_id,omitempty"`
	Status  string `json:"status"`
}

// CompanyProductResponse stock de un producto en la cuenta de una empresa.
type CompanyProductResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string `json:"name"`
	QtyPerPallet int    `json:"qty_per_pallet"`
}

// ProductResponse producto del catálogo en respuestas.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	QtyPerPallet int    `json:"qty_per_pallet"`
}

// CreateReceiverRequest body para POST /api/receivers.
type CreateReceiverRequest struct {
	CompanyID string `json:"company_id,omitempty"`
	Name      string `json:"name"`
	Document  string `json:"document"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CityID    string `json:"city_id"`
}

// ReceiverResponse receptor en respuestas.
type ReceiverResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Document  string `json:"document"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CityID    string `json:"city_id"`
}

// CityRequest body para crear/actualizar ciudades de reparto.
type CityRequest struct {
	Name          string          `json:"name"`
	DeliveryPrice decimal.Decimal `json:"delivery_price"`
	HasDeliveries bool            `json:"has_deliveries"`
}

// CityResponse ciudad en respuestas.
type CityResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DeliveryPrice decimal.Decimal `json:"delivery_price"`
	HasDeliveries bool            `json:"has_deliveries"`
}

// UpdateSettingRequest body para PUT /api/settings/:key.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}
