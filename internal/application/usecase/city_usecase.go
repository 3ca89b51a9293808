package usecase

import (
	"github.com/google/uuid"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// CityUseCase ciudades de reparto y sus tarifas.
type CityUseCase struct {
	repo repository.CityRepository
}

// NewCityUseCase construye el caso de uso de ciudades.
func NewCityUseCase(repo repository.CityRepository) *CityUseCase {
	return &CityUseCase{repo: repo}
}

// Create registra una ciudad de reparto.
func (uc *CityUseCase) Create(in dto.CityRequest) (*dto.CityResponse, error) {
	if in.Name == "" || in.DeliveryPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	city := &entity.City{
		ID:            uuid.New().String(),
		Name:          in.Name,
		DeliveryPrice: in.DeliveryPrice,
		HasDeliveries: in.HasDeliveries,
	}
	if err := uc.repo.Create(city); err != nil {
		return nil, err
	}
	return toCityResponse(city), nil
}

// Update modifica nombre, tarifa o disponibilidad de repartos de una ciudad.
func (uc *CityUseCase) Update(id string, in dto.CityRequest) (*dto.CityResponse, error) {
	if in.Name == "" || in.DeliveryPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	city, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.ErrNotFound
	}
	city.Name = in.Name
	city.DeliveryPrice = in.DeliveryPrice
	city.HasDeliveries = in.HasDeliveries
	if err := uc.repo.Update(city); err != nil {
		return nil, err
	}
	return toCityResponse(city), nil
}

// List devuelve todas las ciudades.
func (uc *CityUseCase) List() ([]dto.CityResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CityResponse, 0, len(list))
	for i := range list {
		items = append(items, *toCityResponse(&list[i]))
	}
	return items, nil
}

func toCityResponse(c *entity.City) *dto.CityResponse {
	if c == nil {
		return nil
	}
	return &dto.CityResponse{
		ID:            c.ID,
		Name:          c.Name,
		DeliveryPrice: c.DeliveryPrice,
		HasDeliveries: c.HasDeliveries,
	}
}
