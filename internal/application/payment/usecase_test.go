package payment_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/payment"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

type fakeStore struct {
	companies map[string]*entity.Company
	payments  map[string]*entity.Payment
}

type paymentRepo struct{ s *fakeStore }

func (r paymentRepo) Create(p *entity.Payment) error {
	r.s.payments[p.ID] = p
	return nil
}
func (r paymentRepo) GetByID(id string) (*entity.Payment, error) {
	return r.s.payments[id], nil
}
func (r paymentRepo) List(f repository.PaymentFilter) ([]entity.Payment, int, error) {
	var out []entity.Payment
	for _, p := range r.s.payments {
		if f.CompanyID != "" && p.CompanyID != f.CompanyID {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}
func (r paymentRepo) UpdateStatus(id, status string) error {
	r.s.payments[id].Status = status
	return nil
}
func (r paymentRepo) ListApprovedByCompany(companyID string) ([]entity.Payment, error) {
	return nil, nil
}

type companyRepo struct{ s *fakeStore }

func (r companyRepo) Create(c *entity.Company) error { return nil }
func (r companyRepo) GetByID(id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}
func (r companyRepo) List(limit, offset int) ([]entity.Company, error) { return nil, nil }

func setup() (*payment.UseCase, *fakeStore) {
	store := &fakeStore{
		companies: map[string]*entity.Company{"emp-1": {ID: "emp-1"}},
		payments:  map[string]*entity.Payment{},
	}
	return payment.NewUseCase(paymentRepo{store}, companyRepo{store}), store
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func create(t *testing.T, uc *payment.UseCase) *dto.PaymentResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), "emp-1", dto.CreatePaymentRequest{
		Method: "transferencia",
		Amount: dec("150.50"),
		Date:   "2024-03-01",
	})
	require.NoError(t, err)
	return resp
}

func TestCreate_ArrancaPendiente(t *testing.T) {
	uc, _ := setup()

	resp := create(t, uc)
	assert.Equal(t, entity.PaymentStatusPendiente, resp.Status)
	assert.True(t, resp.Amount.Equal(dec("150.50")))
}

func TestCreate_MontoNoPositivo(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Create(context.Background(), "emp-1", dto.CreatePaymentRequest{
		Method: "transferencia",
		Amount: dec("0"),
		Date:   "2024-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "emp-1", dto.CreatePaymentRequest{
		Method: "transferencia",
		Amount: dec("-10"),
		Date:   "2024-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApprove_SoloDesdePendiente(t *testing.T) {
	uc, store := setup()
	resp := create(t, uc)

	require.NoError(t, uc.Approve(context.Background(), resp.ID))
	assert.Equal(t, entity.PaymentStatusAprobado, store.payments[resp.ID].Status)

	err := uc.Approve(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "un pago resuelto no se vuelve a resolver")
}

func TestDeny_SoloDesdePendiente(t *testing.T) {
	uc, store := setup()
	resp := create(t, uc)

	require.NoError(t, uc.Deny(context.Background(), resp.ID))
	assert.Equal(t, entity.PaymentStatusDenegado, store.payments[resp.ID].Status)

	err := uc.Approve(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "denegado es terminal")
}

func TestGetByID_RespetaAlcanceDeEmpresa(t *testing.T) {
	uc, _ := setup()
	resp := create(t, uc)

	_, err := uc.GetByID(context.Background(), resp.ID, "otra-empresa")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID(context.Background(), resp.ID, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}
