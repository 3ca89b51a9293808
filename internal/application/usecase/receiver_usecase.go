package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// ReceiverUseCase receptores de despachos de una empresa.
type ReceiverUseCase struct {
	repo     repository.ReceiverRepository
	cityRepo repository.CityRepository
}

// NewReceiverUseCase construye el caso de uso de receptores.
func NewReceiverUseCase(repo repository.ReceiverRepository, cityRepo repository.CityRepository) *ReceiverUseCase {
	return &ReceiverUseCase{repo: repo, cityRepo: cityRepo}
}

// Create registra un receptor para la empresa. La ciudad debe existir y admitir
// repartos; su tarifa es la que se facturará por cada entrega al receptor.
func (uc *ReceiverUseCase) Create(companyScope string, in dto.CreateReceiverRequest) (*dto.ReceiverResponse, error) {
	companyID := companyScope
	if companyID == "" {
		companyID = in.CompanyID
	}
	if companyID == "" || in.Name == "" || in.Document == "" || in.CityID == "" {
		return nil, domain.ErrInvalidInput
	}
	city, err := uc.cityRepo.GetByID(in.CityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.ErrNotFound
	}
	if !city.HasDeliveries {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	receiver := &entity.Receiver{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Document:  in.Document,
		Phone:     in.Phone,
		Address:   in.Address,
		CityID:    in.CityID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(receiver); err != nil {
		return nil, err
	}
	return toReceiverResponse(receiver), nil
}

// GetByID obtiene un receptor. companyScope limita la consulta a esa empresa.
func (uc *ReceiverUseCase) GetByID(id, companyScope string) (*dto.ReceiverResponse, error) {
	receiver, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, domain.ErrNotFound
	}
	if companyScope != "" && receiver.CompanyID != companyScope {
		return nil, domain.ErrNotFound
	}
	return toReceiverResponse(receiver), nil
}

// ListByCompany lista los receptores de una empresa.
func (uc *ReceiverUseCase) ListByCompany(companyID string) ([]dto.ReceiverResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiverResponse, 0, len(list))
	for i := range list {
		items = append(items, *toReceiverResponse(&list[i]))
	}
	return items, nil
}

func toReceiverResponse(r *entity.Receiver) *dto.ReceiverResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceiverResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Name:      r.Name,
		Document:  r.Document,
		Phone:     r.Phone,
		Address:   r.Address,
		CityID:    r.CityID,
	}
}
