package reservations

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/availability"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/optimistic"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, r)
	if res := args.Get(0); res != nil {
		return res.(*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id int64, patch domain.ReservationPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type countingNotifier struct {
	success, errors, warnings int
}

func (n *countingNotifier) Success(string, string) { n.success++ }
func (n *countingNotifier) Error(string, string)   { n.errors++ }
func (n *countingNotifier) Warning(string, string) { n.warnings++ }

func setup(t *testing.T) (*Service, *mockRepo, *availability.Store, *optimistic.Coordinator, *countingNotifier) {
	t.Helper()
	log := logger.NewWithZerolog(zerolog.New(io.Discard))
	n := &countingNotifier{}
	repo := &mockRepo{}
	store := availability.NewStore()
	coord := optimistic.NewCoordinator(n, nil, log, time.Minute)
	return NewService(repo, store, coord, n, log), repo, store, coord, n
}

func existing() *domain.Reservation {
	return &domain.Reservation{
		ID:          10,
		RoomID:      101,
		GuestName:   "Ana Horvat",
		CheckIn:     time.Date(2025, time.July, 20, 14, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, time.July, 23, 10, 0, 0, 0, time.UTC),
		Status:      domain.StatusConfirmed,
		Adults:      2,
		TotalAmount: 549.6,
		VATAmount:   62.12,
	}
}

func TestCreate_ReplacesTemporaryRecord(t *testing.T) {
	svc, repo, store, coord, n := setup(t)

	draft := existing()
	draft.ID = 0

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		// временная запись уже видна в коллекции во время записи
		assert.Equal(t, 1, store.Len())
		return r.ID == 0 && r.RoomID == 101
	})).Return(func() *domain.Reservation {
		stored := existing()
		stored.ID = 55
		return stored
	}(), nil).Once()

	created, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(55), created.ID)

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(55)
	assert.True(t, ok)
	for _, r := range store.All() {
		assert.False(t, r.IsTemporary())
	}
	assert.False(t, coord.HasPending())
	assert.Equal(t, 1, n.success)
	repo.AssertExpectations(t)
}

func TestCreate_FailureRemovesTemporaryRecord(t *testing.T) {
	svc, repo, store, coord, n := setup(t)

	draft := existing()
	draft.ID = 0
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	_, err := svc.Create(context.Background(), draft)
	require.ErrorIs(t, err, ErrCommitFailed)

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, n.errors)
	assert.Equal(t, domain.OperationRolledBack, coord.Operations()[0].Status)
}

func TestCreate_TemporaryIDsAreNegativeAndUnique(t *testing.T) {
	svc, _, _, _, _ := setup(t)

	a, b := svc.nextTempID(), svc.nextTempID()
	assert.Less(t, a, int64(0))
	assert.Less(t, b, int64(0))
	assert.NotEqual(t, a, b)
}

func TestMove_Success(t *testing.T) {
	svc, repo, store, _, _ := setup(t)
	store.Load([]*domain.Reservation{existing()})

	in := time.Date(2025, time.July, 21, 14, 0, 0, 0, time.UTC)
	out := time.Date(2025, time.July, 24, 10, 0, 0, 0, time.UTC)
	repo.On("Update", mock.Anything, int64(10), mock.Anything).Return(nil).Once()

	moved, err := svc.Move(context.Background(), 10, 102, in, out, &domain.InvoiceAmounts{TotalAmount: 600, VATAmount: 70})
	require.NoError(t, err)
	assert.Equal(t, int64(102), moved.RoomID)

	got, _ := store.Get(10)
	assert.Equal(t, int64(102), got.RoomID)
	assert.True(t, got.CheckIn.Equal(in))
	assert.Equal(t, 600.0, got.TotalAmount)
	assert.Equal(t, 70.0, got.VATAmount)
}

func TestMove_FailureRestoresOriginal(t *testing.T) {
	svc, repo, store, coord, n := setup(t)
	original := existing()
	store.Load([]*domain.Reservation{original})

	repo.On("Update", mock.Anything, int64(10), mock.Anything).Return(errors.New("timeout")).Once()

	_, err := svc.Move(context.Background(), 10, 102,
		time.Date(2025, time.July, 25, 14, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 27, 10, 0, 0, 0, time.UTC), nil)
	require.ErrorIs(t, err, ErrCommitFailed)

	got, ok := store.Get(10)
	require.True(t, ok)
	assert.Equal(t, original, got)
	assert.Equal(t, 1, n.errors)

	ops := coord.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, domain.OperationRolledBack, ops[0].Status)

	// повторный откат уже завершенной операции ничего не меняет
	assert.Error(t, coord.ForceRollback(ops[0].ID))
	got, _ = store.Get(10)
	assert.Equal(t, original, got)
}

func TestMove_CheckedOutCannotMove(t *testing.T) {
	svc, _, store, _, _ := setup(t)
	r := existing()
	r.Status = domain.StatusCheckedOut
	store.Load([]*domain.Reservation{r})

	_, err := svc.Move(context.Background(), 10, 102, r.CheckIn, r.CheckOut, nil)
	assert.ErrorIs(t, err, ErrCannotMove)
}

func TestMove_NotFound(t *testing.T) {
	svc, _, _, _, _ := setup(t)

	_, err := svc.Move(context.Background(), 99, 102, time.Now(), time.Now().Add(48*time.Hour), nil)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdate_Validation(t *testing.T) {
	svc, _, store, _, _ := setup(t)
	store.Load([]*domain.Reservation{existing()})

	_, err := svc.Update(context.Background(), 10, domain.ReservationPatch{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := domain.ReservationStatus("lost")
	_, err = svc.Update(context.Background(), 10, domain.ReservationPatch{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	early := time.Date(2025, time.July, 24, 10, 0, 0, 0, time.UTC)
	_, err = svc.Update(context.Background(), 10, domain.ReservationPatch{CheckIn: &early})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_StatusChange(t *testing.T) {
	svc, repo, store, _, _ := setup(t)
	store.Load([]*domain.Reservation{existing()})

	status := domain.StatusCheckedIn
	repo.On("Update", mock.Anything, int64(10), domain.ReservationPatch{Status: &status}).Return(nil).Once()

	updated, err := svc.Update(context.Background(), 10, domain.ReservationPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, updated.Status)
	repo.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo, store, _, _ := setup(t)
		store.Load([]*domain.Reservation{existing()})
		repo.On("Delete", mock.Anything, int64(10)).Return(nil).Once()

		require.NoError(t, svc.Delete(context.Background(), 10))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("failure restores reservation", func(t *testing.T) {
		svc, repo, store, _, _ := setup(t)
		store.Load([]*domain.Reservation{existing()})
		repo.On("Delete", mock.Anything, int64(10)).Return(errors.New("forbidden")).Once()

		require.ErrorIs(t, svc.Delete(context.Background(), 10), ErrCommitFailed)
		got, ok := store.Get(10)
		require.True(t, ok)
		assert.Equal(t, existing(), got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, _, _, _ := setup(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrReservationNotFound)
	})
}

func TestList(t *testing.T) {
	svc, _, store, _, _ := setup(t)
	other := existing()
	other.ID = 11
	other.RoomID = 102
	late := existing()
	late.ID = 12
	late.CheckIn = time.Date(2025, time.August, 10, 14, 0, 0, 0, time.UTC)
	late.CheckOut = time.Date(2025, time.August, 12, 10, 0, 0, 0, time.UTC)
	store.Load([]*domain.Reservation{existing(), other, late})

	from := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	all, err := svc.List(context.Background(), &models.ListReservationsRequest{From: from, To: to})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	room := int64(101)
	one, err := svc.List(context.Background(), &models.ListReservationsRequest{From: from, To: to, RoomID: &room})
	require.NoError(t, err)
	require.Equal(t, 1, one.Total)
	assert.Equal(t, int64(10), one.Reservations[0].ID)
	assert.Equal(t, 3, one.Reservations[0].Nights)

	_, err = svc.List(context.Background(), &models.ListReservationsRequest{From: to, To: from})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
