package reception_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/reception"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/billing"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// fakeStore guarda todo en memoria; los adaptadores de abajo lo exponen como
// los distintos repositorios que el caso de uso necesita.
type fakeStore struct {
	companies  map[string]*entity.Company
	products   map[string]*entity.Product
	receptions []*entity.Reception
	lots       []entity.ReceptionLot
	stock      map[string]*entity.CompanyProduct // clave companyID|productID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies: map[string]*entity.Company{},
		products:  map[string]*entity.Product{},
		stock:     map[string]*entity.CompanyProduct{},
	}
}

func (s *fakeStore) RunReception(ctx context.Context, fn func(
	repository.ReceptionRepository,
	repository.LotRepository,
	repository.CompanyProductRepository,
) error) error {
	return fn(receptionRepo{s}, lotRepo{s}, stockRepo{s})
}

type companyRepo struct{ s *fakeStore }

func (r companyRepo) Create(c *entity.Company) error                  { return nil }
func (r companyRepo) GetByID(id string) (*entity.Company, error)      { return r.s.companies[id], nil }
func (r companyRepo) List(limit, offset int) ([]entity.Company, error) { return nil, nil }

type productRepo struct{ s *fakeStore }

func (r productRepo) Create(p *entity.Product) error                  { return nil }
func (r productRepo) GetByID(id string) (*entity.Product, error)      { return r.s.products[id], nil }
func (r productRepo) List(limit, offset int) ([]entity.Product, error) { return nil, nil }

type receptionRepo struct{ s *fakeStore }

func (r receptionRepo) Create(rec *entity.Reception) error {
	r.s.receptions = append(r.s.receptions, rec)
	return nil
}

func (r receptionRepo) GetByID(id string) (*entity.Reception, error) {
	for _, rec := range r.s.receptions {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r receptionRepo) List(f repository.ReceptionFilter) ([]entity.Reception, int, error) {
	var out []entity.Reception
	for _, rec := range r.s.receptions {
		if f.CompanyID != "" && rec.CompanyID != f.CompanyID {
			continue
		}
		out = append(out, *rec)
	}
	return out, len(out), nil
}

type lotRepo struct{ s *fakeStore }

func (r lotRepo) CreateBatch(lots []entity.ReceptionLot) error {
	r.s.lots = append(r.s.lots, lots...)
	return nil
}

func (r lotRepo) ListOpenByProductForUpdate(productID string) ([]entity.ReceptionLot, error) {
	var out []entity.ReceptionLot
	for _, l := range r.s.lots {
		if l.ProductID == productID && l.QtyLeft > 0 {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r lotRepo) ApplyUpdates(updates []billing.LotUpdate) error { return nil }

func (r lotRepo) ListByCompany(companyID string) ([]entity.ReceptionLot, error) {
	return r.s.lots, nil
}

type stockRepo struct{ s *fakeStore }

func (r stockRepo) Get(companyID, productID string) (*entity.CompanyProduct, error) {
	return r.s.stock[companyID+"|"+productID], nil
}

func (r stockRepo) GetForUpdate(companyID, productID string) (*entity.CompanyProduct, error) {
	return r.Get(companyID, productID)
}

func (r stockRepo) GetByIDForUpdate(id string) (*entity.CompanyProduct, error) {
	for _, cp := range r.s.stock {
		if cp.ID == id {
			return cp, nil
		}
	}
	return nil, nil
}

func (r stockRepo) Upsert(cp *entity.CompanyProduct) error {
	r.s.stock[cp.CompanyID+"|"+cp.ProductID] = cp
	return nil
}

func (r stockRepo) ListByCompany(companyID string) ([]entity.CompanyProduct, error) {
	var out []entity.CompanyProduct
	for _, cp := range r.s.stock {
		if cp.CompanyID == companyID {
			out = append(out, *cp)
		}
	}
	return out, nil
}

func setup() (*reception.UseCase, *fakeStore) {
	store := newFakeStore()
	store.companies["emp-1"] = &entity.Company{ID: "emp-1", Name: "Distribuidora Sur"}
	store.products["prod-1"] = &entity.Product{ID: "prod-1", Name: "Harina", QtyPerPallet: 48}
	store.products["prod-2"] = &entity.Product{ID: "prod-2", Name: "Aceite", QtyPerPallet: 30}

	uc := reception.NewUseCase(store, companyRepo{store}, productRepo{store}, receptionRepo{store})
	return uc, store
}

func TestCreate_MaterializaUnLotePorPaleta(t *testing.T) {
	uc, store := setup()

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateReceptionRequest{
		CompanyID: "emp-1",
		Date:      "2024-03-10",
		Products: []dto.ReceptionLineRequest{
			{ProductID: "prod-1", Qty: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, store.lots, 3, "debe crearse un lote por paleta")
	for _, l := range store.lots {
		assert.Equal(t, 48, l.QtyLeft, "cada lote arranca con qtyPerPallet")
		assert.Nil(t, l.DateOut)
		assert.Equal(t, "2024-03-10", l.DateIn.Format(dto.DateLayout))
	}
	require.Len(t, resp.Products, 1)
	assert.Len(t, resp.Products[0].Lots, 3)
}

func TestCreate_ConservacionEntreStockYLotes(t *testing.T) {
	uc, store := setup()

	_, err := uc.Create(context.Background(), "user-1", dto.CreateReceptionRequest{
		CompanyID: "emp-1",
		Date:      "2024-03-10",
		Products: []dto.ReceptionLineRequest{
			{ProductID: "prod-1", Qty: 2},
			{ProductID: "prod-2", Qty: 5},
		},
	})
	require.NoError(t, err)

	// El stock incrementado debe coincidir con la suma de qtyLeft de los lotes.
	totalStock := 0
	for _, cp := range store.stock {
		totalStock += cp.Stock
	}
	totalLots := 0
	for _, l := range store.lots {
		totalLots += l.QtyLeft
	}
	assert.Equal(t, totalStock, totalLots, "stock y lotes deben conservar las mismas unidades")
	assert.Equal(t, 2*48+5*30, totalStock)
}

func TestCreate_AcumulaStockSobreExistente(t *testing.T) {
	uc, store := setup()
	store.stock["emp-1|prod-1"] = &entity.CompanyProduct{
		ID: "cp-1", CompanyID: "emp-1", ProductID: "prod-1", Stock: 10,
	}

	_, err := uc.Create(context.Background(), "user-1", dto.CreateReceptionRequest{
		CompanyID: "emp-1",
		Date:      "2024-03-10",
		Products:  []dto.ReceptionLineRequest{{ProductID: "prod-1", Qty: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 10+48, store.stock["emp-1|prod-1"].Stock)
}

func TestCreate_EmpresaInexistente(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Create(context.Background(), "user-1", dto.CreateReceptionRequest{
		CompanyID: "no-existe",
		Date:      "2024-03-10",
		Products:  []dto.ReceptionLineRequest{{ProductID: "prod-1", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	uc, _ := setup()
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", dto.CreateReceptionRequest{
		CompanyID: "emp-1", Date: "2024-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.CreateReceptionRequest{
		CompanyID: "emp-1", Date: "10/03/2024",
		Products: []dto.ReceptionLineRequest{{ProductID: "prod-1", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha mal formada debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.CreateReceptionRequest{
		CompanyID: "emp-1", Date: "2024-03-10",
		Products: []dto.ReceptionLineRequest{{ProductID: "prod-1", Qty: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "qty cero debe rechazarse")
}

func TestGetByID_RespetaAlcanceDeEmpresa(t *testing.T) {
	uc, _ := setup()
	resp, err := uc.Create(context.Background(), "user-1", dto.CreateReceptionRequest{
		CompanyID: "emp-1",
		Date:      "2024-03-10",
		Products:  []dto.ReceptionLineRequest{{ProductID: "prod-1", Qty: 1}},
	})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), resp.ID, "otra-empresa")
	assert.ErrorIs(t, err, domain.ErrNotFound, "una empresa no ve recepciones ajenas")

	got, err := uc.GetByID(context.Background(), resp.ID, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}
