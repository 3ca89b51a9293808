// Package payment registra pagos manuales y su aprobación o denegación por el
// personal de la instalación. Solo los pagos aprobados descuentan deuda en el
// estado de cuenta.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// UseCase gestiona pagos manuales.
type UseCase struct {
	paymentRepo repository.PaymentRepository
	companyRepo repository.CompanyRepository
}

// NewUseCase crea el caso de uso de pagos.
func NewUseCase(paymentRepo repository.PaymentRepository, companyRepo repository.CompanyRepository) *UseCase {
	return &UseCase{paymentRepo: paymentRepo, companyRepo: companyRepo}
}

// Create registra un pago en estado pendiente.
func (uc *UseCase) Create(ctx context.Context, companyScope string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	companyID := companyScope
	if companyID == "" {
		companyID = in.CompanyID
	}
	if companyID == "" || in.Method == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	p := &entity.Payment{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Method:       in.Method,
		Amount:       in.Amount,
		Date:         date,
		Reference:    in.Reference,
		IssuingName:  in.IssuingName,
		IssuingEmail: in.IssuingEmail,
		Status:       entity.PaymentStatusPendiente,
	}
	if err := uc.paymentRepo.Create(p); err != nil {
		return nil, fmt.Errorf("error al crear pago: %w", err)
	}
	return toResponse(p), nil
}

// Approve aprueba un pago pendiente. A partir de aquí el pago descuenta deuda.
func (uc *UseCase) Approve(ctx context.Context, id string) error {
	return uc.resolve(ctx, id, entity.PaymentStatusAprobado)
}

// Deny deniega un pago pendiente.
func (uc *UseCase) Deny(ctx context.Context, id string) error {
	return uc.resolve(ctx, id, entity.PaymentStatusDenegado)
}

func (uc *UseCase) resolve(_ context.Context, id, status string) error {
	p, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al buscar pago: %w", err)
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Status != entity.PaymentStatusPendiente {
		return domain.ErrConflict
	}
	if err := uc.paymentRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("error al actualizar estado: %w", err)
	}
	return nil
}

// GetByID devuelve un pago. companyScope limita la consulta a esa empresa.
func (uc *UseCase) GetByID(ctx context.Context, id, companyScope string) (*dto.PaymentResponse, error) {
	p, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al buscar pago: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if companyScope != "" && p.CompanyID != companyScope {
		return nil, domain.ErrNotFound
	}
	return toResponse(p), nil
}

// List devuelve pagos paginados. companyScope fuerza el filtro de empresa.
func (uc *UseCase) List(ctx context.Context, f repository.PaymentFilter, companyScope string) (*dto.PaymentListResponse, error) {
	if companyScope != "" {
		f.CompanyID = companyScope
	}
	rows, count, err := uc.paymentRepo.List(f)
	if err != nil {
		return nil, fmt.Errorf("error al listar pagos: %w", err)
	}
	out := &dto.PaymentListResponse{
		Rows: make([]dto.PaymentResponse, 0, len(rows)),
		PageResponse: dto.PageResponse{
			Count: count,
			Pages: dto.Pages(count, f.Limit),
		},
	}
	for i := range rows {
		out.Rows = append(out.Rows, *toResponse(&rows[i]))
	}
	return out, nil
}

func toResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		Method:       p.Method,
		Amount:       p.Amount,
		Date:         p.Date.Format(dto.DateLayout),
		Reference:    p.Reference,
		IssuingName:  p.IssuingName,
		IssuingEmail: p.IssuingEmail,
		Status:       p.Status,
	}
}
