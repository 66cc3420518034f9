package get_availability

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/availability"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

func date(m time.Month, d, h int) time.Time {
	return time.Date(2025, m, d, h, 0, 0, 0, time.UTC)
}

func setup(t *testing.T) *UseCase {
	t.Helper()
	log := logger.NewWithZerolog(zerolog.New(io.Discard))

	catalog := rooms.NewService(rooms.StaticSource{{ID: 101, Number: "101", MaxOccupancy: 2}}, log)
	require.NoError(t, catalog.Reload(context.Background()))

	store := availability.NewStore()
	store.Load([]*domain.Reservation{
		{ID: 1, RoomID: 101, CheckIn: date(time.July, 20, 14), CheckOut: date(time.July, 22, 10), Status: domain.StatusConfirmed},
		{ID: 2, RoomID: 101, CheckIn: date(time.July, 25, 14), CheckOut: date(time.July, 26, 10), Status: domain.StatusCheckedOut},
		{ID: 3, RoomID: 101, CheckIn: date(time.July, 28, 14), CheckOut: date(time.July, 30, 10), Status: domain.StatusRoomClosure},
	})

	uc := NewUseCase(catalog, store, log)
	uc.timeProvider = fixedTime(date(time.July, 15, 9))
	return uc
}

func TestExecute_OccupiedDates(t *testing.T) {
	uc := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 101})
	require.NoError(t, err)

	assert.Equal(t, date(time.July, 15, 0), resp.From)
	assert.Equal(t, date(time.August, 15, 0), resp.To)
	assert.Equal(t, []time.Time{
		date(time.July, 20, 0), date(time.July, 21, 0),
		date(time.July, 28, 0), date(time.July, 29, 0),
	}, resp.OccupiedDates)
	assert.Nil(t, resp.MaxCheckout)
	assert.Nil(t, resp.CheckInFree)
}

func TestExecute_CheckInProjection(t *testing.T) {
	uc := setup(t)
	checkIn := date(time.July, 23, 14)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: 101, From: date(time.July, 1, 0), To: date(time.August, 1, 0), CheckIn: &checkIn,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckInFree)
	assert.True(t, *resp.CheckInFree)
	require.NotNil(t, resp.MaxCheckout)
	assert.Equal(t, date(time.July, 28, 0), *resp.MaxCheckout, "checked-out stays do not bound the checkout")

	busy := date(time.July, 21, 14)
	resp, err = uc.Execute(context.Background(), &Request{RoomID: 101, CheckIn: &busy})
	require.NoError(t, err)
	assert.False(t, *resp.CheckInFree)
}

func TestExecute_Errors(t *testing.T) {
	uc := setup(t)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 101, From: date(time.July, 2, 0), To: date(time.July, 1, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 101, From: date(time.January, 1, 0), To: date(time.January, 1, 0).AddDate(2, 0, 0)})
	assert.ErrorIs(t, err, ErrRangeTooLarge)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 202})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
