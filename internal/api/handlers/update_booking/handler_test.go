package update_booking

import (
	"context"
	"encoding/json"
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
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
	updateBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/update_booking"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*updateBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func call(uc UpdateBookingUseCase, id, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithZerolog(zerolog.New(io.Discard)))
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservations/{id}", h.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/"+id, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *updateBooking.Request) bool {
		return r.ReservationID == 10 && r.Patch.AdditionalCharges != nil && *r.Patch.AdditionalCharges == 20 &&
			r.Patch.Status == nil && r.Tier == "agency"
	})).Return(&updateBooking.Response{
		Reservation: &domain.Reservation{
			ID: 10, RoomID: 101, GuestName: "Ana Horvat",
			CheckIn:  time.Date(2025, 7, 20, 14, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 7, 23, 10, 0, 0, 0, time.UTC),
			Status:   domain.StatusConfirmed, Adults: 2,
			AdditionalCharges: 20, TotalAmount: 569.6,
		},
		Quote: &domain.PricingBreakdown{Total: 569.6},
	}, nil)

	rec := call(uc, "10", `{"additionalCharges": 20, "tier": "agency"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 569.6, resp.TotalAmount)
	uc.AssertExpectations(t)
}

func TestHandle_ReactivationConflict(t *testing.T) {
	errs := domain.ValidationErrors{}
	errs.Add(domain.ValidationDateConflict, "Room 101 is already booked", map[string]interface{}{"reservationId": int64(11)})

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errs)

	rec := call(uc, "10", `{"status": "confirmed"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp handlers.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, domain.ValidationDateConflict, resp.Errors[0].Type)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
	}{
		{"bad id", "abc", `{"notes": "x"}`, nil, http.StatusBadRequest},
		{"unknown status", "10", `{"status": "gone"}`, nil, http.StatusBadRequest},
		{"negative charges", "10", `{"additionalCharges": -5}`, nil, http.StatusBadRequest},
		{"not found", "10", `{"notes": "x"}`, updateBooking.ErrReservationNotFound, http.StatusNotFound},
		{"invalid", "10", `{"notes": "x"}`, updateBooking.ErrInvalidInput, http.StatusBadRequest},
		{"store rejected", "10", `{"notes": "x"}`, fmt.Errorf("%w: timeout", updateBooking.ErrStoreRejected), http.StatusBadGateway},
		{"internal", "10", `{"notes": "x"}`, updateBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := call(uc, tt.id, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
