package validate_booking

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/availability"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/pricing"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/seasons"
	validateBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	log := logger.NewWithZerolog(zerolog.New(io.Discard))

	catalog := rooms.NewService(rooms.StaticSource{
		{ID: 101, Number: "101", Type: domain.RoomTypeDouble, MaxOccupancy: 2, Rates: domain.SeasonalRates{
			domain.PeriodA: 47, domain.PeriodB: 57, domain.PeriodC: 69, domain.PeriodD: 90,
		}},
	}, log)
	require.NoError(t, catalog.Reload(context.Background()))

	calc := pricing.NewCalculator(seasons.NewDefaultClassifier(), pricing.DefaultConfig())
	uc := validateBooking.NewUseCase(catalog, availability.NewStore(), calc, nil, log)
	return NewHandler(uc, handlers.NewStayClock(time.UTC, 14, 10), log)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func formFields(errs []domain.BookingValidationError) []string {
	var fields []string
	for _, e := range errs {
		if e.Type == domain.ValidationFormInvalid {
			if f, ok := e.Details["field"].(string); ok {
				fields = append(fields, f)
			}
		}
	}
	return fields
}

func TestHandle_Valid(t *testing.T) {
	rec := post(newHandler(t), `{
		"roomId": 101,
		"checkIn": "2025-07-20",
		"checkOut": "2025-07-23",
		"guest": {"kind": "new", "firstName": "Ana", "lastName": "Horvat"},
		"adults": 2
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, 549.6, resp.Quote.Total)
}

func TestHandle_MissingDatesAreReportedWithOtherFormErrors(t *testing.T) {
	rec := post(newHandler(t), `{
		"roomId": 101,
		"guest": {"kind": "new", "firstName": "Ana", "lastName": "Horvat"},
		"adults": 0
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Valid)
	assert.ElementsMatch(t, []string{"checkIn", "adults"}, formFields(resp.Errors))
	assert.Nil(t, resp.Quote)
}

func TestHandle_MalformedDateIsBadRequest(t *testing.T) {
	rec := post(newHandler(t), `{"roomId": 101, "checkIn": "20.07.2025", "checkOut": "2025-07-23", "adults": 2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
