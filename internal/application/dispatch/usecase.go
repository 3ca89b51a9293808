package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/billing"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// UseCase gestiona el ciclo de vida de los despachos: solicitado, agendado,
// embarcado, entregado, más los terminales cancelado y denegado.
type UseCase struct {
	txRunner     TxRunner
	dispatchRepo repository.DispatchRepository
	batchRepo    repository.BatchRepository
	receiverRepo repository.ReceiverRepository
}

// NewUseCase crea el caso de uso de despachos.
func NewUseCase(
	txRunner TxRunner,
	dispatchRepo repository.DispatchRepository,
	batchRepo repository.BatchRepository,
	receiverRepo repository.ReceiverRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		dispatchRepo: dispatchRepo,
		batchRepo:    batchRepo,
		receiverRepo: receiverRepo,
	}
}

// Create registra un despacho en estado solicitado descontando el stock de
// cada línea con la fila bloqueada. Si alguna línea no tiene stock suficiente
// la transacción completa se revierte con ErrInsufficientStock.
func (uc *UseCase) Create(ctx context.Context, userID, companyScope string, in dto.CreateDispatchRequest) (*dto.DispatchResponse, error) {
	companyID := companyScope
	if companyID == "" {
		companyID = in.CompanyID
	}
	if companyID == "" || in.ReceiverID == "" || len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Products {
		if line.CompanyProductID == "" || line.Qty <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	receiver, err := uc.receiverRepo.GetByID(in.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar receptor: %w", err)
	}
	if receiver == nil || receiver.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	d := &entity.Dispatch{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		UserID:     userID,
		ReceiverID: in.ReceiverID,
		Status:     entity.DispatchStatusSolicitado,
		Date:       date,
	}

	err = uc.txRunner.RunDispatch(ctx, func(
		dispatches repository.DispatchRepository,
		stock repository.CompanyProductRepository,
	) error {
		for _, line := range in.Products {
			cp, err := stock.GetByIDForUpdate(line.CompanyProductID)
			if err != nil {
				return fmt.Errorf("error al bloquear stock: %w", err)
			}
			if cp == nil || cp.CompanyID != companyID {
				return domain.ErrNotFound
			}
			if cp.Stock < line.Qty {
				return domain.ErrInsufficientStock
			}
			cp.Stock -= line.Qty
			if err := stock.Upsert(cp); err != nil {
				return fmt.Errorf("error al descontar stock: %w", err)
			}
			d.Products = append(d.Products, entity.DispatchProduct{
				ID:               uuid.New().String(),
				DispatchID:       d.ID,
				CompanyProductID: cp.ID,
				ProductID:        cp.ProductID,
				Qty:              line.Qty,
			})
		}
		if err := dispatches.Create(d); err != nil {
			return fmt.Errorf("error al crear despacho: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(d), nil
}

// Cancel pasa el despacho a cancelado y devuelve su stock. Solo el dueño (o el
// personal de la instalación, con companyScope vacío) puede cancelar, y nunca
// desde un estado terminal.
func (uc *UseCase) Cancel(ctx context.Context, id, companyScope string) error {
	return uc.close(ctx, id, companyScope, entity.DispatchStatusCancelado, "")
}

// Deny pasa el despacho a denegado con el motivo dado y devuelve su stock.
// Operación exclusiva del personal de la instalación.
func (uc *UseCase) Deny(ctx context.Context, id, comments string) error {
	return uc.close(ctx, id, "", entity.DispatchStatusDenegado, comments)
}

func (uc *UseCase) close(ctx context.Context, id, companyScope, status, comments string) error {
	return uc.txRunner.RunDispatch(ctx, func(
		dispatches repository.DispatchRepository,
		stock repository.CompanyProductRepository,
	) error {
		d, err := dispatches.GetByIDForUpdate(id)
		if err != nil {
			return fmt.Errorf("error al buscar despacho: %w", err)
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if companyScope != "" && d.CompanyID != companyScope {
			return domain.ErrNotFound
		}
		if entity.DispatchStatusTerminal(d.Status) {
			return domain.ErrConflict
		}
		// El stock descontado al crear vuelve a la empresa.
		for _, line := range d.Products {
			cp, err := stock.GetByIDForUpdate(line.CompanyProductID)
			if err != nil {
				return fmt.Errorf("error al bloquear stock: %w", err)
			}
			if cp == nil {
				return domain.ErrNotFound
			}
			cp.Stock += line.Qty
			if err := stock.Upsert(cp); err != nil {
				return fmt.Errorf("error al devolver stock: %w", err)
			}
		}
		if comments != "" {
			if err := dispatches.UpdateComments(id, comments); err != nil {
				return fmt.Errorf("error al guardar motivo: %w", err)
			}
		}
		if err := dispatches.UpdateStatus(id, status); err != nil {
			return fmt.Errorf("error al actualizar estado: %w", err)
		}
		return nil
	})
}

// AllocateBatch asigna el despacho a un lote de transporte pendiente y lo pasa
// a agendado.
func (uc *UseCase) AllocateBatch(ctx context.Context, id, batchID string) error {
	d, err := uc.dispatchRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al buscar despacho: %w", err)
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if d.Status != entity.DispatchStatusSolicitado && d.Status != entity.DispatchStatusAgendado {
		return domain.ErrConflict
	}
	b, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return fmt.Errorf("error al buscar lote de transporte: %w", err)
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if b.Status != entity.BatchStatusPendiente {
		return domain.ErrConflict
	}
	if err := uc.dispatchRepo.SetBatch(id, &batchID, entity.DispatchStatusAgendado); err != nil {
		return fmt.Errorf("error al asignar lote de transporte: %w", err)
	}
	return nil
}

// DeallocateBatch retira el despacho de su lote de transporte y lo devuelve a
// solicitado. Solo posible mientras el lote no ha salido.
func (uc *UseCase) DeallocateBatch(ctx context.Context, id string) error {
	d, err := uc.dispatchRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al buscar despacho: %w", err)
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if d.Status != entity.DispatchStatusAgendado || d.BatchID == nil {
		return domain.ErrConflict
	}
	if err := uc.dispatchRepo.SetBatch(id, nil, entity.DispatchStatusSolicitado); err != nil {
		return fmt.Errorf("error al retirar lote de transporte: %w", err)
	}
	return nil
}

// Deliver marca el despacho como entregado. En la misma transacción consume
// los lotes de almacenamiento abiertos de cada producto en orden FIFO y, si el
// despacho era el último embarcado de su lote de transporte, finaliza el lote.
func (uc *UseCase) Deliver(ctx context.Context, id string) error {
	return uc.txRunner.RunDelivery(ctx, func(
		dispatches repository.DispatchRepository,
		lots repository.LotRepository,
		batches repository.BatchRepository,
	) error {
		d, err := dispatches.GetByIDForUpdate(id)
		if err != nil {
			return fmt.Errorf("error al buscar despacho: %w", err)
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if d.Status != entity.DispatchStatusEmbarcado {
			return domain.ErrConflict
		}
		for _, line := range d.Products {
			open, err := lots.ListOpenByProductForUpdate(line.ProductID)
			if err != nil {
				return fmt.Errorf("error al bloquear lotes: %w", err)
			}
			updates, err := billing.Consume(open, line.Qty, d.Date)
			if err != nil {
				return err
			}
			if err := lots.ApplyUpdates(updates); err != nil {
				return fmt.Errorf("error al consumir lotes: %w", err)
			}
		}
		if err := dispatches.UpdateStatus(id, entity.DispatchStatusEntregado); err != nil {
			return fmt.Errorf("error al actualizar estado: %w", err)
		}
		if d.BatchID != nil {
			// El conteo ya no incluye este despacho dentro de la transacción.
			pending, err := dispatches.CountByBatchAndStatus(*d.BatchID, entity.DispatchStatusEmbarcado)
			if err != nil {
				return fmt.Errorf("error al contar despachos embarcados: %w", err)
			}
			if pending == 0 {
				if err := batches.UpdateStatus(*d.BatchID, entity.BatchStatusFinalizado); err != nil {
					return fmt.Errorf("error al finalizar lote de transporte: %w", err)
				}
			}
		}
		return nil
	})
}

// GetByID devuelve un despacho. companyScope limita la consulta a esa empresa.
func (uc *UseCase) GetByID(ctx context.Context, id, companyScope string) (*dto.DispatchResponse, error) {
	d, err := uc.dispatchRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al buscar despacho: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if companyScope != "" && d.CompanyID != companyScope {
		return nil, domain.ErrNotFound
	}
	return toResponse(d), nil
}

// List devuelve despachos paginados. companyScope fuerza el filtro de empresa.
func (uc *UseCase) List(ctx context.Context, f repository.DispatchFilter, companyScope string) (*dto.DispatchListResponse, error) {
	if companyScope != "" {
		f.CompanyID = companyScope
	}
	rows, count, err := uc.dispatchRepo.List(f)
	if err != nil {
		return nil, fmt.Errorf("error al listar despachos: %w", err)
	}
	out := &dto.DispatchListResponse{
		Rows: make([]dto.DispatchResponse, 0, len(rows)),
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

func toResponse(d *entity.Dispatch) *dto.DispatchResponse {
	resp := &dto.DispatchResponse{
		ID:         d.ID,
		CompanyID:  d.CompanyID,
		UserID:     d.UserID,
		ReceiverID: d.ReceiverID,
		BatchID:    d.BatchID,
		Status:     d.Status,
		Step:       entity.DispatchStep(d.Status),
		Date:       d.Date.Format(dto.DateLayout),
		Comments:   d.Comments,
		Products:   make([]dto.DispatchLineResponse, 0, len(d.Products)),
	}
	for _, line := range d.Products {
		resp.Products = append(resp.Products, dto.DispatchLineResponse{
			ID:               line.ID,
			CompanyProductID: line.CompanyProductID,
			ProductID:        line.ProductID,
			Qty:              line.Qty,
		})
	}
	return resp
}
