package notifyservice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

type dropCounter struct {
	mu      sync.Mutex
	dropped int
}

func (d *dropCounter) IncNotificationDropped() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dropped++
}

func quiet() Logger {
	return logger.NewWithZerolog(zerolog.New(io.Discard))
}

func TestClient_DeliversNotification(t *testing.T) {
	var (
		mu       sync.Mutex
		received []Notification
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var n Notification
		require.NoError(t, json.NewDecoder(r.Body).Decode(&n))
		mu.Lock()
		received = append(received, n)
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "front-desk", time.Second, 0, 1, quiet(), nil)
	c.Error("Move failed", "room 101: timeout")
	c.Success("Reservation created", "Ana Horvat, room 101")
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	levels := []Level{received[0].Level, received[1].Level}
	assert.ElementsMatch(t, []Level{LevelError, LevelSuccess}, levels)
	assert.Equal(t, "front-desk", received[0].Source)
}

func TestClient_RateLimitDropsNotifications(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
	}))
	defer srv.Close()

	drops := &dropCounter{}
	c := NewClient(srv.URL, "front-desk", time.Second, 0.001, 2, quiet(), drops)
	for i := 0; i < 5; i++ {
		c.Warning("Operation rolled back", "op")
	}
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 3, drops.dropped)
}

func TestClient_Send_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "front-desk", time.Second, 0, 1, quiet(), nil)
	err := c.Send(context.Background(), Notification{Level: LevelError, Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidResponse)

	unreachable := NewClient("http://127.0.0.1:1", "front-desk", 200*time.Millisecond, 0, 1, quiet(), nil)
	err = unreachable.Send(context.Background(), Notification{})
	assert.ErrorIs(t, err, ErrInternal)
}
