package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisur/almacen-api/internal/application/batch"
	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

type fakeStore struct {
	batches    map[string]*entity.Batch
	dispatches map[string]*entity.Dispatch
	users      map[string]*entity.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		batches:    map[string]*entity.Batch{},
		dispatches: map[string]*entity.Dispatch{},
		users:      map[string]*entity.User{},
	}
}

func (s *fakeStore) RunBatch(ctx context.Context, fn func(
	repository.BatchRepository,
	repository.DispatchRepository,
) error) error {
	return fn(batchRepo{s}, dispatchRepo{s})
}

type batchRepo struct{ s *fakeStore }

func (r batchRepo) Create(b *entity.Batch) error { r.s.batches[b.ID] = b; return nil }
func (r batchRepo) GetByID(id string) (*entity.Batch, error) {
	return r.s.batches[id], nil
}
func (r batchRepo) List(f repository.BatchFilter) ([]entity.Batch, int, error) {
	var out []entity.Batch
	for _, b := range r.s.batches {
		out = append(out, *b)
	}
	return out, len(out), nil
}
func (r batchRepo) UpdateCarrier(id, carrierID string) error {
	r.s.batches[id].CarrierID = carrierID
	return nil
}
func (r batchRepo) UpdateStatus(id, status string) error {
	r.s.batches[id].Status = status
	return nil
}
func (r batchRepo) Delete(id string) error { delete(r.s.batches, id); return nil }

type dispatchRepo struct{ s *fakeStore }

func (r dispatchRepo) Create(d *entity.Dispatch) error { return nil }
func (r dispatchRepo) GetByID(id string) (*entity.Dispatch, error) {
	return r.s.dispatches[id], nil
}
func (r dispatchRepo) GetByIDForUpdate(id string) (*entity.Dispatch, error) {
	return r.s.dispatches[id], nil
}
func (r dispatchRepo) List(f repository.DispatchFilter) ([]entity.Dispatch, int, error) {
	return nil, 0, nil
}
func (r dispatchRepo) UpdateStatus(id, status string) error { return nil }
func (r dispatchRepo) UpdateComments(id, comments string) error { return nil }
func (r dispatchRepo) SetBatch(id string, batchID *string, status string) error {
	r.s.dispatches[id].BatchID = batchID
	r.s.dispatches[id].Status = status
	return nil
}
func (r dispatchRepo) UpdateStatusByBatch(batchID, status string) error {
	for _, d := range r.s.dispatches {
		if d.BatchID != nil && *d.BatchID == batchID {
			d.Status = status
		}
	}
	return nil
}
func (r dispatchRepo) ReleaseByBatch(batchID, status string) error {
	for _, d := range r.s.dispatches {
		if d.BatchID != nil && *d.BatchID == batchID {
			d.BatchID = nil
			d.Status = status
		}
	}
	return nil
}
func (r dispatchRepo) CountByBatchAndStatus(batchID, status string) (int, error) {
	return 0, nil
}
func (r dispatchRepo) ListDeliveredByCompany(companyID string) ([]entity.DeliveredDispatch, error) {
	return nil, nil
}

type userRepo struct{ s *fakeStore }

func (r userRepo) Create(u *entity.User) error { return nil }
func (r userRepo) GetByID(id string) (*entity.User, error) {
	return r.s.users[id], nil
}
func (r userRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }

func setup() (*batch.UseCase, *fakeStore) {
	store := newFakeStore()
	store.users["carrier-1"] = &entity.User{ID: "carrier-1", Name: "Pedro"}
	store.dispatches["d-1"] = &entity.Dispatch{ID: "d-1", Status: entity.DispatchStatusSolicitado}
	store.dispatches["d-2"] = &entity.Dispatch{ID: "d-2", Status: entity.DispatchStatusSolicitado}
	uc := batch.NewUseCase(store, batchRepo{store}, userRepo{store})
	return uc, store
}

func TestCreate_AgendaLosDespachos(t *testing.T) {
	uc, store := setup()

	resp, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		CarrierID:  "carrier-1",
		Date:       "2024-03-20",
		Dispatches: []string{"d-1", "d-2"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BatchStatusPendiente, resp.Status)
	for _, id := range []string{"d-1", "d-2"} {
		d := store.dispatches[id]
		assert.Equal(t, entity.DispatchStatusAgendado, d.Status)
		require.NotNil(t, d.BatchID)
		assert.Equal(t, resp.ID, *d.BatchID)
	}
}

func TestCreate_DespachoNoSolicitadoRechazado(t *testing.T) {
	uc, store := setup()
	store.dispatches["d-1"].Status = entity.DispatchStatusEntregado

	_, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		CarrierID:  "carrier-1",
		Date:       "2024-03-20",
		Dispatches: []string{"d-1"},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_TransportistaInexistente(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		CarrierID: "no-existe",
		Date:      "2024-03-20",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransit_EmbarcaTodosLosDespachos(t *testing.T) {
	uc, store := setup()
	resp, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		CarrierID:  "carrier-1",
		Date:       "2024-03-20",
		Dispatches: []string{"d-1", "d-2"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Transit(context.Background(), resp.ID))

	assert.Equal(t, entity.BatchStatusEnTransito, store.batches[resp.ID].Status)
	for _, id := range []string{"d-1", "d-2"} {
		assert.Equal(t, entity.DispatchStatusEmbarcado, store.dispatches[id].Status)
	}
}

func TestTransit_SoloDesdePendiente(t *testing.T) {
	uc, store := setup()
	store.batches["b-1"] = &entity.Batch{ID: "b-1", Status: entity.BatchStatusEnTransito}

	err := uc.Transit(context.Background(), "b-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_LiberaLosDespachos(t *testing.T) {
	uc, store := setup()
	resp, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		CarrierID:  "carrier-1",
		Date:       "2024-03-20",
		Dispatches: []string{"d-1"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), resp.ID))

	_, ok := store.batches[resp.ID]
	assert.False(t, ok, "el lote debe eliminarse")
	d := store.dispatches["d-1"]
	assert.Equal(t, entity.DispatchStatusSolicitado, d.Status)
	assert.Nil(t, d.BatchID, "el despacho liberado queda sin lote")
}

func TestDelete_EnTransitoRechazado(t *testing.T) {
	uc, store := setup()
	store.batches["b-1"] = &entity.Batch{ID: "b-1", Status: entity.BatchStatusEnTransito}

	err := uc.Delete(context.Background(), "b-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdate_CambiaTransportista(t *testing.T) {
	uc, store := setup()
	store.users["carrier-2"] = &entity.User{ID: "carrier-2", Name: "Laura"}
	resp, err := uc.Create(context.Background(), dto.CreateBatchRequest{
		CarrierID: "carrier-1",
		Date:      "2024-03-20",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Update(context.Background(), resp.ID, dto.UpdateBatchRequest{CarrierID: "carrier-2"}))
	assert.Equal(t, "carrier-2", store.batches[resp.ID].CarrierID)
}
