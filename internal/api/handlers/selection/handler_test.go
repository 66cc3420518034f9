package selection

import (
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
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	rangeSelection "github.com/sokol-matija/hotel-inventory-sub003/internal/selection"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

func newHandler() *Handler {
	sessions := rangeSelection.NewSessionStore(time.Hour, time.UTC, 14, 10)
	return NewHandler(sessions, handlers.NewStayClock(time.UTC, 14, 10), logger.NewWithZerolog(zerolog.New(io.Discard)))
}

func send(t *testing.T, h *Handler, body string) (int, StateResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/selection/events", strings.NewReader(body))
	req = req.WithContext(middleware.WithOperatorID(req.Context(), "desk-1"))
	rec := httptest.NewRecorder()
	h.HandleEvent(rec, req)

	var resp StateResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func TestHandleEvent_ClickHoverClick(t *testing.T) {
	h := newHandler()

	code, resp := send(t, h, `{"type":"click","roomId":101,"date":"2025-07-20","half":"pm"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "selecting", resp.State)

	code, resp = send(t, h, `{"type":"hover","roomId":101,"date":"2025-07-22"}`)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Preview)
	assert.Equal(t, 2, resp.Preview.Nights)

	code, resp = send(t, h, `{"type":"click","roomId":101,"date":"2025-07-23","half":"am"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "committed", resp.State)
	require.NotNil(t, resp.Committed)
	assert.Equal(t, "2025-07-20T14:00:00Z", resp.Committed.CheckIn)
	assert.Equal(t, "2025-07-23T10:00:00Z", resp.Committed.CheckOut)
	assert.Equal(t, 3, resp.Committed.Nights)

	code, _ = send(t, h, `{"type":"click","roomId":101,"date":"2025-07-25"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, resp = send(t, h, `{"type":"reset"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "idle", resp.State)
}

func TestHandleEvent_Invalid(t *testing.T) {
	h := newHandler()

	code, _ := send(t, h, `{"type":"drag"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = send(t, h, `{"type":"click","roomId":1,"date":"2025-07-20","half":"noon"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = send(t, h, `{"type":"cancel"}`)
	assert.Equal(t, http.StatusConflict, code)
}
