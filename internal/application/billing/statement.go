// Package billing arma el estado de cuenta de una empresa: deuda total de por
// vida, corte del mes consultado y detalle de lotes y despachos considerados.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/settings"
	"github.com/logisur/almacen-api/internal/domain"
	domainbilling "github.com/logisur/almacen-api/internal/domain/billing"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// StatementUseCase calcula estados de cuenta. El reloj es inyectable para que
// las pruebas fijen el "hoy" con el que se cobran los lotes abiertos.
type StatementUseCase struct {
	companyRepo  repository.CompanyRepository
	lotRepo      repository.LotRepository
	dispatchRepo repository.DispatchRepository
	paymentRepo  repository.PaymentRepository
	settings     *settings.Loader
	clock        func() time.Time
}

// NewStatementUseCase crea el agregador de facturación. Con clock nil se usa
// time.Now.
func NewStatementUseCase(
	companyRepo repository.CompanyRepository,
	lotRepo repository.LotRepository,
	dispatchRepo repository.DispatchRepository,
	paymentRepo repository.PaymentRepository,
	loader *settings.Loader,
	clock func() time.Time,
) *StatementUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &StatementUseCase{
		companyRepo:  companyRepo,
		lotRepo:      lotRepo,
		dispatchRepo: dispatchRepo,
		paymentRepo:  paymentRepo,
		settings:     loader,
		clock:        clock,
	}
}

// Statement calcula el estado de cuenta de la empresa para el mes consultado.
// Con month o year en cero se usa el mes o año actuales. Es una lectura pura:
// dos llamadas con los mismos datos y el mismo día devuelven lo mismo.
//
// La deuda total suma el costo de almacenamiento de por vida de cada lote (días
// sin el día de entrada) más las tarifas de reparto de los despachos entregados,
// menos los pagos aprobados. El corte mensual usa días inclusivos dentro de la
// ventana (con día de entrada) y no descuenta pagos.
func (uc *StatementUseCase) Statement(ctx context.Context, companyID string, month, year int) (*dto.StatementResponse, error) {
	if month < 0 || month > 12 || year < 0 {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, fmt.Errorf("error al buscar empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	snap, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	rate := snap.PalletDay
	today := uc.clock()

	if month == 0 {
		month = int(today.Month())
	}
	if year == 0 {
		year = today.Year()
	}
	window := domainbilling.NewMonthWindow(year, time.Month(month), today)

	lots, err := uc.lotRepo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("error al listar lotes: %w", err)
	}
	delivered, err := uc.dispatchRepo.ListDeliveredByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("error al listar despachos entregados: %w", err)
	}
	payments, err := uc.paymentRepo.ListApprovedByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("error al listar pagos aprobados: %w", err)
	}

	storageTotal := decimal.Zero
	monthStorage := decimal.Zero
	details := dto.BillingDetails{
		Lots:       []dto.LotCostResponse{},
		Dispatches: []dto.DispatchFeeResponse{},
	}
	for _, lot := range lots {
		storageTotal = storageTotal.Add(domainbilling.LotLifetimeCost(lot, rate, today))

		cost, ok := domainbilling.LotMonthCost(lot, window, today, rate)
		if !ok {
			continue
		}
		monthStorage = monthStorage.Add(cost)
		var dateOut *string
		if lot.DateOut != nil {
			s := lot.DateOut.Format(dto.DateLayout)
			dateOut = &s
		}
		details.Lots = append(details.Lots, dto.LotCostResponse{
			ID:        lot.ID,
			ProductID: lot.ProductID,
			DateIn:    lot.DateIn.Format(dto.DateLayout),
			DateOut:   dateOut,
			QtyLeft:   lot.QtyLeft,
			Cost:      cost,
		})
	}

	feesTotal := decimal.Zero
	monthFees := decimal.Zero
	for _, d := range delivered {
		feesTotal = feesTotal.Add(d.DeliveryPrice)
		if !window.Contains(d.Date) {
			continue
		}
		monthFees = monthFees.Add(d.DeliveryPrice)
		details.Dispatches = append(details.Dispatches, dto.DispatchFeeResponse{
			ID:            d.ID,
			Date:          d.Date.Format(dto.DateLayout),
			ReceiverName:  d.ReceiverName,
			CityName:      d.CityName,
			DeliveryPrice: d.DeliveryPrice,
		})
	}

	paymentsTotal := decimal.Zero
	for _, p := range payments {
		paymentsTotal = paymentsTotal.Add(p.Amount)
	}

	totalDebt := storageTotal.Add(feesTotal).Sub(paymentsTotal)
	positiveBalance := decimal.Zero
	if totalDebt.IsNegative() {
		positiveBalance = totalDebt.Neg()
	}

	return &dto.StatementResponse{
		CurrentMonthDebt: monthStorage.Add(monthFees),
		TotalDebt:        totalDebt,
		PositiveBalance:  positiveBalance,
		BillingDetails:   details,
	}, nil
}
