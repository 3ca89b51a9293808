package batch

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

// UseCase gestiona los lotes de transporte: pendiente, en tránsito, finalizado.
// El paso a finalizado no está aquí, lo dispara la entrega del último despacho.
type UseCase struct {
	txRunner  TxRunner
	batchRepo repository.BatchRepository
	userRepo  repository.UserRepository
}

// NewUseCase crea el caso de uso de lotes de transporte.
func NewUseCase(txRunner TxRunner, batchRepo repository.BatchRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{txRunner: txRunner, batchRepo: batchRepo, userRepo: userRepo}
}

// Create crea un lote pendiente asignándole los despachos indicados, que pasan
// a agendado. Cualquier despacho inexistente o en estado terminal revierte la
// operación completa.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if in.CarrierID == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	carrier, err := uc.userRepo.GetByID(in.CarrierID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar transportista: %w", err)
	}
	if carrier == nil {
		return nil, domain.ErrNotFound
	}

	b := &entity.Batch{
		ID:        uuid.New().String(),
		CarrierID: in.CarrierID,
		Date:      date,
		Status:    entity.BatchStatusPendiente,
	}
	err = uc.txRunner.RunBatch(ctx, func(
		batches repository.BatchRepository,
		dispatches repository.DispatchRepository,
	) error {
		if err := batches.Create(b); err != nil {
			return fmt.Errorf("error al crear lote de transporte: %w", err)
		}
		for _, dispatchID := range in.Dispatches {
			d, err := dispatches.GetByIDForUpdate(dispatchID)
			if err != nil {
				return fmt.Errorf("error al buscar despacho: %w", err)
			}
			if d == nil {
				return domain.ErrNotFound
			}
			if d.Status != entity.DispatchStatusSolicitado {
				return domain.ErrConflict
			}
			if err := dispatches.SetBatch(dispatchID, &b.ID, entity.DispatchStatusAgendado); err != nil {
				return fmt.Errorf("error al asignar despacho: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(b), nil
}

// Update cambia el transportista de un lote que aún no ha salido.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateBatchRequest) error {
	if in.CarrierID == "" {
		return domain.ErrInvalidInput
	}
	b, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al buscar lote de transporte: %w", err)
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if b.Status != entity.BatchStatusPendiente {
		return domain.ErrConflict
	}
	carrier, err := uc.userRepo.GetByID(in.CarrierID)
	if err != nil {
		return fmt.Errorf("error al buscar transportista: %w", err)
	}
	if carrier == nil {
		return domain.ErrNotFound
	}
	if err := uc.batchRepo.UpdateCarrier(id, in.CarrierID); err != nil {
		return fmt.Errorf("error al actualizar transportista: %w", err)
	}
	return nil
}

// Transit pasa el lote a en tránsito y embarca todos sus despachos.
func (uc *UseCase) Transit(ctx context.Context, id string) error {
	return uc.txRunner.RunBatch(ctx, func(
		batches repository.BatchRepository,
		dispatches repository.DispatchRepository,
	) error {
		b, err := batches.GetByID(id)
		if err != nil {
			return fmt.Errorf("error al buscar lote de transporte: %w", err)
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if b.Status != entity.BatchStatusPendiente {
			return domain.ErrConflict
		}
		if err := dispatches.UpdateStatusByBatch(id, entity.DispatchStatusEmbarcado); err != nil {
			return fmt.Errorf("error al embarcar despachos: %w", err)
		}
		if err := batches.UpdateStatus(id, entity.BatchStatusEnTransito); err != nil {
			return fmt.Errorf("error al actualizar estado: %w", err)
		}
		return nil
	})
}

// Delete elimina un lote pendiente liberando sus despachos, que vuelven a
// solicitado. Un lote en tránsito o finalizado no se borra.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunBatch(ctx, func(
		batches repository.BatchRepository,
		dispatches repository.DispatchRepository,
	) error {
		b, err := batches.GetByID(id)
		if err != nil {
			return fmt.Errorf("error al buscar lote de transporte: %w", err)
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if b.Status != entity.BatchStatusPendiente {
			return domain.ErrConflict
		}
		if err := dispatches.ReleaseByBatch(id, entity.DispatchStatusSolicitado); err != nil {
			return fmt.Errorf("error al liberar despachos: %w", err)
		}
		if err := batches.Delete(id); err != nil {
			return fmt.Errorf("error al eliminar lote de transporte: %w", err)
		}
		return nil
	})
}

// GetByID devuelve un lote de transporte.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.BatchResponse, error) {
	b, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al buscar lote de transporte: %w", err)
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(b), nil
}

// List devuelve lotes de transporte paginados.
func (uc *UseCase) List(ctx context.Context, f repository.BatchFilter) (*dto.BatchListResponse, error) {
	rows, count, err := uc.batchRepo.List(f)
	if err != nil {
		return nil, fmt.Errorf("error al listar lotes de transporte: %w", err)
	}
	out := &dto.BatchListResponse{
		Rows: make([]dto.BatchResponse, 0, len(rows)),
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

func toResponse(b *entity.Batch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:        b.ID,
		CarrierID: b.CarrierID,
		Date:      b.Date.Format(dto.DateLayout),
		Status:    b.Status,
		Step:      entity.BatchStep(b.Status),
	}
}
