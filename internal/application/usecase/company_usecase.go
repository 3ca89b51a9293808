package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas cliente.
type CompanyUseCase struct {
	repo      repository.CompanyRepository
	stockRepo repository.CompanyProductRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, stockRepo repository.CompanyProductRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, stockRepo: stockRepo}
}

// Create registra una empresa cliente. Genera ID y estado inicial.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.RIF == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		RIF:       in.RIF,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CityID:    in.CityID,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for i := range list {
		items = append(items, *toCompanyResponse(&list[i]))
	}
	return items, nil
}

// Stock devuelve el stock por producto de la empresa.
func (uc *CompanyUseCase) Stock(companyID string) ([]dto.CompanyProductResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.stockRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyProductResponse, 0, len(rows))
	for _, cp := range rows {
		out = append(out, dto.CompanyProductResponse{
			ID:        cp.ID,
			CompanyID: cp.CompanyID,
			ProductID: cp.ProductID,
			Stock:     cp.Stock,
		})
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		RIF:     c.RIF,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		CityID:  c.CityID,
		Status:  c.Status,
	}
}
