package reception

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

// UseCase registra y consulta recepciones de mercancía.
type UseCase struct {
	txRunner    TxRunner
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
	recRepo     repository.ReceptionRepository
}

// NewUseCase crea el caso de uso de recepciones.
func NewUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	recRepo repository.ReceptionRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		companyRepo: companyRepo,
		productRepo: productRepo,
		recRepo:     recRepo,
	}
}

// Create registra una recepción: inserta cabecera y líneas, incrementa el
// stock de cada (empresa, producto) en qty*qtyPerPallet con la fila bloqueada
// y materializa qty lotes por línea, cada uno con qtyLeft = qtyPerPallet y
// dateIn = fecha de la recepción.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateReceptionRequest) (*dto.ReceptionResponse, error) {
	if in.CompanyID == "" || len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	// Resolvemos qtyPerPallet de cada producto antes de abrir la transacción.
	products := make(map[string]*entity.Product, len(in.Products))
	for _, line := range in.Products {
		if line.ProductID == "" || line.Qty <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, ok := products[line.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("error al buscar producto: %w", err)
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		products[line.ProductID] = p
	}

	rec := &entity.Reception{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		UserID:    userID,
		Date:      date,
		Products:  make([]entity.ReceptionProduct, 0, len(in.Products)),
	}
	var lots []entity.ReceptionLot
	for _, line := range in.Products {
		rp := entity.ReceptionProduct{
			ID:          uuid.New().String(),
			ReceptionID: rec.ID,
			ProductID:   line.ProductID,
			Qty:         line.Qty,
		}
		rec.Products = append(rec.Products, rp)
		qpp := products[line.ProductID].QtyPerPallet
		for i := 0; i < line.Qty; i++ {
			lots = append(lots, entity.ReceptionLot{
				ID:                 uuid.New().String(),
				ReceptionProductID: rp.ID,
				ProductID:          line.ProductID,
				DateIn:             date,
				QtyLeft:            qpp,
			})
		}
	}

	err = uc.txRunner.RunReception(ctx, func(
		receptions repository.ReceptionRepository,
		lotRepo repository.LotRepository,
		stock repository.CompanyProductRepository,
	) error {
		if err := receptions.Create(rec); err != nil {
			return fmt.Errorf("error al crear recepción: %w", err)
		}
		for _, line := range rec.Products {
			qpp := products[line.ProductID].QtyPerPallet
			cp, err := stock.GetForUpdate(rec.CompanyID, line.ProductID)
			if err != nil {
				return fmt.Errorf("error al bloquear stock: %w", err)
			}
			if cp == nil {
				cp = &entity.CompanyProduct{
					ID:        uuid.New().String(),
					CompanyID: rec.CompanyID,
					ProductID: line.ProductID,
				}
			}
			cp.Stock += line.Qty * qpp
			if err := stock.Upsert(cp); err != nil {
				return fmt.Errorf("error al actualizar stock: %w", err)
			}
		}
		if err := lotRepo.CreateBatch(lots); err != nil {
			return fmt.Errorf("error al crear lotes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toResponse(rec, lots), nil
}

// GetByID devuelve una recepción. companyScope limita la consulta a esa
// empresa cuando no está vacío.
func (uc *UseCase) GetByID(ctx context.Context, id, companyScope string) (*dto.ReceptionResponse, error) {
	rec, err := uc.recRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al buscar recepción: %w", err)
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if companyScope != "" && rec.CompanyID != companyScope {
		return nil, domain.ErrNotFound
	}
	return toResponse(rec, nil), nil
}

// List devuelve recepciones paginadas. companyScope fuerza el filtro de
// empresa para usuarios cliente.
func (uc *UseCase) List(ctx context.Context, f repository.ReceptionFilter, companyScope string) (*dto.ReceptionListResponse, error) {
	if companyScope != "" {
		f.CompanyID = companyScope
	}
	rows, count, err := uc.recRepo.List(f)
	if err != nil {
		return nil, fmt.Errorf("error al listar recepciones: %w", err)
	}
	out := &dto.ReceptionListResponse{
		Rows: make([]dto.ReceptionResponse, 0, len(rows)),
		PageResponse: dto.PageResponse{
			Count: count,
			Pages: dto.Pages(count, f.Limit),
		},
	}
	for i := range rows {
		out.Rows = append(out.Rows, *toResponse(&rows[i], nil))
	}
	return out, nil
}

func toResponse(rec *entity.Reception, lots []entity.ReceptionLot) *dto.ReceptionResponse {
	resp := &dto.ReceptionResponse{
		ID:        rec.ID,
		CompanyID: rec.CompanyID,
		UserID:    rec.UserID,
		Date:      rec.Date.Format(dto.DateLayout),
		Products:  make([]dto.ReceptionLineResponse, 0, len(rec.Products)),
	}
	byLine := make(map[string][]dto.LotResponse)
	for _, l := range lots {
		byLine[l.ReceptionProductID] = append(byLine[l.ReceptionProductID], dto.LotResponse{
			ID:      l.ID,
			DateIn:  l.DateIn.Format(dto.DateLayout),
			QtyLeft: l.QtyLeft,
		})
	}
	for _, line := range rec.Products {
		resp.Products = append(resp.Products, dto.ReceptionLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Lots:      byLine[line.ID],
		})
	}
	return resp
}
