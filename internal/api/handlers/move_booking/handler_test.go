package move_booking

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	moveBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/move_booking"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *moveBooking.Request) (*moveBooking.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*moveBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func patch(uc MoveBookingUseCase, path, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, handlers.NewStayClock(time.UTC, 14, 10), logger.NewWithZerolog(zerolog.New(io.Discard)))
	r := mux.NewRouter()
	r.HandleFunc("/reservations/{id}/move", h.Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body)))
	return rec
}

func TestHandle_Moved(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *moveBooking.Request) bool {
		return r.ReservationID == 5 && r.RoomID == 102 && r.CheckIn.IsZero() &&
			r.CheckOut.Equal(time.Date(2025, 7, 24, 10, 0, 0, 0, time.UTC)) && !r.KeepPrice
	})).Return(&moveBooking.Response{
		Reservation: &domain.Reservation{ID: 5, RoomID: 102, Status: domain.StatusConfirmed},
		Quote:       &domain.PricingBreakdown{Total: 732.8},
	}, nil)

	rec := patch(uc, "/reservations/5/move", `{"roomId":102,"checkOut":"2025-07-24"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"roomId":102`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	conflict := domain.ValidationErrors{}
	conflict.Add(domain.ValidationDateConflict, "Room is booked", nil)

	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{"bad id", "/reservations/x/move", nil, http.StatusBadRequest},
		{"conflict", "/reservations/5/move", conflict, http.StatusUnprocessableEntity},
		{"not found", "/reservations/5/move", moveBooking.ErrReservationNotFound, http.StatusNotFound},
		{"room not found", "/reservations/5/move", moveBooking.ErrRoomNotFound, http.StatusNotFound},
		{"checked out", "/reservations/5/move", moveBooking.ErrCannotMove, http.StatusConflict},
		{"store rejected", "/reservations/5/move", fmt.Errorf("%w: timeout", moveBooking.ErrStoreRejected), http.StatusBadGateway},
		{"internal", "/reservations/5/move", moveBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := patch(uc, tt.path, `{"roomId":102}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
