package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Client отправляет уведомления оператора на вебхук.
// Success/Error/Warning не блокируют вызывающего: запрос уходит в отдельной горутине.
type Client struct {
	url        string
	source     string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	log        Logger
	metrics    Metrics
	wg         sync.WaitGroup
}

// NewClient создает клиент; ratePerSecond <= 0 отключает ограничение
func NewClient(url, source string, timeout time.Duration, ratePerSecond float64, burst int, log Logger, metrics Metrics) *Client {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		url:        url,
		source:     source,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		timeout:    timeout,
		log:        log,
		metrics:    metrics,
	}
}

func (c *Client) Success(title, message string) { c.dispatch(LevelSuccess, title, message) }
func (c *Client) Error(title, message string)   { c.dispatch(LevelError, title, message) }
func (c *Client) Warning(title, message string) { c.dispatch(LevelWarning, title, message) }

// Wait блокируется до завершения отправки всех уведомлений (graceful shutdown)
func (c *Client) Wait() {
	c.wg.Wait()
}

func (c *Client) dispatch(level Level, title, message string) {
	if !c.limiter.Allow() {
		c.log.Warn("Notification %q dropped: %v", title, ErrRateLimited)
		if c.metrics != nil {
			c.metrics.IncNotificationDropped()
		}
		return
	}

	n := Notification{Level: level, Title: title, Message: message, Source: c.source, SentAt: time.Now()}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		if err := c.Send(ctx, n); err != nil {
			c.log.Error("Failed to deliver %s notification %q: %v", level, title, err)
		}
	}()
}

// Send синхронно отправляет уведомление
func (c *Client) Send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to encode notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(data))
	}
	return nil
}
