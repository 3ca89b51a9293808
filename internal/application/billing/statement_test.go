package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisur/almacen-api/internal/application/billing"
	"github.com/logisur/almacen-api/internal/application/settings"
	"github.com/logisur/almacen-api/internal/domain"
	domainbilling "github.com/logisur/almacen-api/internal/domain/billing"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

type fakeStore struct {
	companies map[string]*entity.Company
	lots      []entity.ReceptionLot
	delivered []entity.DeliveredDispatch
	payments  []entity.Payment
	settings  []entity.Setting
}

type companyRepo struct{ s *fakeStore }

func (r companyRepo) Create(c *entity.Company) error { return nil }
func (r companyRepo) GetByID(id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}
func (r companyRepo) List(limit, offset int) ([]entity.Company, error) { return nil, nil }

type lotRepo struct{ s *fakeStore }

func (r lotRepo) CreateBatch(lots []entity.ReceptionLot) error { return nil }
func (r lotRepo) ListOpenByProductForUpdate(productID string) ([]entity.ReceptionLot, error) {
	return nil, nil
}
func (r lotRepo) ApplyUpdates(updates []domainbilling.LotUpdate) error { return nil }
func (r lotRepo) ListByCompany(companyID string) ([]entity.ReceptionLot, error) {
	return r.s.lots, nil
}

type dispatchRepo struct{ s *fakeStore }

func (r dispatchRepo) Create(d *entity.Dispatch) error              { return nil }
func (r dispatchRepo) GetByID(id string) (*entity.Dispatch, error)  { return nil, nil }
func (r dispatchRepo) GetByIDForUpdate(id string) (*entity.Dispatch, error) { return nil, nil }
func (r dispatchRepo) List(f repository.DispatchFilter) ([]entity.Dispatch, int, error) {
	return nil, 0, nil
}
func (r dispatchRepo) UpdateStatus(id, status string) error               { return nil }
func (r dispatchRepo) UpdateComments(id, comments string) error           { return nil }
func (r dispatchRepo) SetBatch(id string, batchID *string, status string) error { return nil }
func (r dispatchRepo) UpdateStatusByBatch(batchID, status string) error   { return nil }
func (r dispatchRepo) ReleaseByBatch(batchID, status string) error        { return nil }
func (r dispatchRepo) CountByBatchAndStatus(batchID, status string) (int, error) {
	return 0, nil
}
func (r dispatchRepo) ListDeliveredByCompany(companyID string) ([]entity.DeliveredDispatch, error) {
	return r.s.delivered, nil
}

type paymentRepo struct{ s *fakeStore }

func (r paymentRepo) Create(p *entity.Payment) error             { return nil }
func (r paymentRepo) GetByID(id string) (*entity.Payment, error) { return nil, nil }
func (r paymentRepo) List(f repository.PaymentFilter) ([]entity.Payment, int, error) {
	return nil, 0, nil
}
func (r paymentRepo) UpdateStatus(id, status string) error { return nil }
func (r paymentRepo) ListApprovedByCompany(companyID string) ([]entity.Payment, error) {
	return r.s.payments, nil
}

type settingsRepo struct{ s *fakeStore }

func (r settingsRepo) All() ([]entity.Setting, error)  { return r.s.settings, nil }
func (r settingsRepo) Update(key, value string) error { return nil }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Escenario de referencia: tarifa 2, hoy 2024-01-31.
// Lote A abierto entra el 10 de enero; lote B entra el 20 de diciembre y sale
// el 5 de enero. Un despacho entregado el 20 de enero con tarifa 15.
func setup() (*billing.StatementUseCase, *fakeStore) {
	store := &fakeStore{
		companies: map[string]*entity.Company{
			"emp-1": {ID: "emp-1", Name: "Distribuidora Sur"},
		},
		lots: []entity.ReceptionLot{
			{ID: "lote-a", ProductID: "prod-1", DateIn: day(2024, time.January, 10), QtyLeft: 48},
			{ID: "lote-b", ProductID: "prod-1", DateIn: day(2023, time.December, 20), DateOut: ptr(day(2024, time.January, 5)), QtyLeft: 0},
		},
		delivered: []entity.DeliveredDispatch{
			{ID: "desp-1", Date: day(2024, time.January, 20), ReceiverName: "Bodega Norte", CityName: "Valencia", DeliveryPrice: dec("15")},
		},
		settings: []entity.Setting{{Key: entity.SettingPalletDay, Value: "2"}},
	}
	clock := func() time.Time { return day(2024, time.January, 31) }
	uc := billing.NewStatementUseCase(
		companyRepo{store}, lotRepo{store}, dispatchRepo{store}, paymentRepo{store},
		settings.NewLoader(settingsRepo{store}), clock,
	)
	return uc, store
}

func TestStatement_EscenarioReferencia(t *testing.T) {
	uc, _ := setup()

	st, err := uc.Statement(context.Background(), "emp-1", 1, 2024)
	require.NoError(t, err)

	// De por vida: lote A 21 días, lote B 16 días, a tarifa 2 son 74; más 15 de
	// reparto y sin pagos.
	assert.True(t, st.TotalDebt.Equal(dec("89")), "TotalDebt = %s", st.TotalDebt)
	// Corte de enero: lote A 22 días inclusivos (44), lote B 5 (10), reparto 15.
	assert.True(t, st.CurrentMonthDebt.Equal(dec("69")), "CurrentMonthDebt = %s", st.CurrentMonthDebt)
	assert.True(t, st.PositiveBalance.IsZero())

	require.Len(t, st.BillingDetails.Lots, 2)
	require.Len(t, st.BillingDetails.Dispatches, 1)
	assert.True(t, st.BillingDetails.Dispatches[0].DeliveryPrice.Equal(dec("15")))
}

func TestStatement_PagosAprobadosDescuentanSoloDeLaDeudaTotal(t *testing.T) {
	uc, store := setup()
	store.payments = []entity.Payment{
		{ID: "pago-1", Amount: dec("50"), Status: entity.PaymentStatusAprobado},
	}

	st, err := uc.Statement(context.Background(), "emp-1", 1, 2024)
	require.NoError(t, err)

	assert.True(t, st.TotalDebt.Equal(dec("39")), "TotalDebt = %s", st.TotalDebt)
	assert.True(t, st.CurrentMonthDebt.Equal(dec("69")), "el corte mensual no descuenta pagos")
}

func TestStatement_SobrepagoGeneraSaldoAFavor(t *testing.T) {
	uc, store := setup()
	store.payments = []entity.Payment{
		{ID: "pago-1", Amount: dec("200"), Status: entity.PaymentStatusAprobado},
	}

	st, err := uc.Statement(context.Background(), "emp-1", 1, 2024)
	require.NoError(t, err)

	assert.True(t, st.TotalDebt.Equal(dec("-111")), "la deuda total conserva el signo")
	assert.True(t, st.PositiveBalance.Equal(dec("111")), "el saldo a favor refleja el exceso")
}

func TestStatement_MesFueraDeVentanaExcluyeDetalles(t *testing.T) {
	uc, _ := setup()

	st, err := uc.Statement(context.Background(), "emp-1", 11, 2023)
	require.NoError(t, err)

	// Noviembre 2023: ningún lote ni despacho intersecta la ventana.
	assert.True(t, st.CurrentMonthDebt.IsZero())
	assert.Empty(t, st.BillingDetails.Lots)
	assert.Empty(t, st.BillingDetails.Dispatches)
	// La deuda de por vida no depende del mes consultado.
	assert.True(t, st.TotalDebt.Equal(dec("89")))
}

func TestStatement_MesYAnioCeroUsanElReloj(t *testing.T) {
	uc, _ := setup()

	conDefecto, err := uc.Statement(context.Background(), "emp-1", 0, 0)
	require.NoError(t, err)
	explicito, err := uc.Statement(context.Background(), "emp-1", 1, 2024)
	require.NoError(t, err)

	assert.True(t, conDefecto.CurrentMonthDebt.Equal(explicito.CurrentMonthDebt))
	assert.True(t, conDefecto.TotalDebt.Equal(explicito.TotalDebt))
}

func TestStatement_EsIdempotente(t *testing.T) {
	uc, _ := setup()

	primero, err := uc.Statement(context.Background(), "emp-1", 1, 2024)
	require.NoError(t, err)
	segundo, err := uc.Statement(context.Background(), "emp-1", 1, 2024)
	require.NoError(t, err)

	assert.True(t, primero.TotalDebt.Equal(segundo.TotalDebt))
	assert.True(t, primero.CurrentMonthDebt.Equal(segundo.CurrentMonthDebt))
	assert.Equal(t, len(primero.BillingDetails.Lots), len(segundo.BillingDetails.Lots))
}

func TestStatement_MesInvalido(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Statement(context.Background(), "emp-1", 13, 2024)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatement_EmpresaInexistente(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Statement(context.Background(), "no-existe", 1, 2024)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatement_TarifaAusenteEsError(t *testing.T) {
	uc, store := setup()
	store.settings = nil

	_, err := uc.Statement(context.Background(), "emp-1", 1, 2024)
	assert.Error(t, err, "sin palletDay el estado de cuenta no se calcula")
}
