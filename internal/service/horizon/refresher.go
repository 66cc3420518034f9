// Package horizon держит в хранилище занятости бронирования скользящего окна вокруг сегодняшнего дня.
package horizon

import (
	"context"
	"fmt"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

// Refresher перезагружает окно [today - past, today + future] в Store
type Refresher struct {
	lister   ReservationLister
	store    Store
	pending  PendingChecker
	clock    TimeProvider
	loc      *time.Location
	pastDays int
	nextDays int
	logger   Logger
}

// NewRefresher создает Refresher. clock == nil означает системное время.
func NewRefresher(
	lister ReservationLister,
	store Store,
	pending PendingChecker,
	clock TimeProvider,
	loc *time.Location,
	pastDays, futureDays int,
	logger Logger,
) *Refresher {
	if clock == nil {
		clock = realTime{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Refresher{
		lister:   lister,
		store:    store,
		pending:  pending,
		clock:    clock,
		loc:      loc,
		pastDays: pastDays,
		nextDays: futureDays,
		logger:   logger,
	}
}

// Window возвращает текущее окно [from, to)
func (r *Refresher) Window() (time.Time, time.Time) {
	today := domain.StartOfDay(r.clock.Now().In(r.loc))
	return today.AddDate(0, 0, -r.pastDays), today.AddDate(0, 0, r.nextDays+1)
}

// Refresh загружает окно в Store; пропускается, пока есть pending операции
func (r *Refresher) Refresh(ctx context.Context) error {
	// 1. Не затираем оптимистичное состояние
	if r.pending != nil && r.pending.HasPending() {
		r.logger.Info("Horizon refresh skipped: optimistic operations are pending")
		return ErrPendingOperations
	}

	// 2. Читаем окно из хранилища
	from, to := r.Window()
	reservations, err := r.lister.ListInRange(ctx, domain.ReservationsFilter{From: from, To: to})
	if err != nil {
		r.logger.Error("Failed to load reservations for horizon %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	// 3. Повторная проверка: операция могла начаться во время чтения
	if r.pending != nil && r.pending.HasPending() {
		r.logger.Info("Horizon refresh discarded: an operation started during load")
		return ErrPendingOperations
	}

	r.store.Load(reservations)
	r.logger.Info("Horizon loaded: %d reservations (%s..%s)",
		len(reservations), from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	return nil
}

// Run обновляет окно каждые interval до отмены ctx
func (r *Refresher) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = r.Refresh(ctx)
		}
	}
}
