package reservations

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/optimistic"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
)

// Service оптимистичные изменения бронирований поверх координатора
type Service struct {
	repo        ReservationRepository
	store       Store
	coordinator *optimistic.Coordinator
	notifier    Notifier
	logger      Logger
	lastTempID  atomic.Int64
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo ReservationRepository,
	store Store,
	coordinator *optimistic.Coordinator,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		repo:        repo,
		store:       store,
		coordinator: coordinator,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование из живой коллекции
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	r, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn("GetByID: reservation id=%d not found", id)
		return nil, ErrReservationNotFound
	}
	return models.FromDomainReservation(r), nil
}

// List возвращает бронирования, пересекающие период (лента таймлайна)
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	if !req.From.Before(req.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	var items []*domain.Reservation
	if req.RoomID != nil {
		for _, r := range s.store.ForRoom(*req.RoomID) {
			if r.CheckOut.After(req.From) && r.CheckIn.Before(req.To) {
				items = append(items, r)
			}
		}
	} else {
		items = s.store.InRange(req.From, req.To)
	}

	s.logger.Info("List: %d reservations between %s and %s",
		len(items), req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
	return models.FromDomainReservationList(items), nil
}

// Create вставляет временную запись с отрицательным id и заменяет ее сохраненной
func (s *Service) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if !reservation.CheckIn.Before(reservation.CheckOut) {
		return nil, fmt.Errorf("%w: check-in must be before check-out", ErrInvalidInput)
	}

	temp := reservation.Clone()
	temp.ID = s.nextTempID()
	now := time.Now()
	temp.CreatedAt, temp.UpdatedAt = now, now

	s.logger.Info("Create: room=%d guest=%q temp_id=%d", temp.RoomID, temp.GuestName, temp.ID)

	res := optimistic.Execute(ctx, s.coordinator, optimistic.Mutation[*domain.Reservation]{
		Kind:     domain.OperationCreate,
		New:      temp,
		Apply:    func() { s.store.Upsert(temp) },
		Rollback: func() { s.store.Remove(temp.ID) },
		Commit: func(ctx context.Context) (*domain.Reservation, error) {
			toStore := temp.Clone()
			toStore.ID = 0
			return s.repo.Create(ctx, toStore)
		},
	})
	if !res.Success {
		s.logger.Error("Create: store rejected reservation for room=%d: %v", temp.RoomID, res.Err)
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, res.Err)
	}

	// Заменяем временную запись на сохраненную
	s.store.Remove(temp.ID)
	s.store.Upsert(res.Data)

	s.logger.Info("Create: reservation id=%d stored (temp_id=%d)", res.Data.ID, temp.ID)
	s.notifier.Success("Reservation created", fmt.Sprintf("%s, room %d", res.Data.GuestName, res.Data.RoomID))
	return res.Data.Clone(), nil
}

// Update применяет частичное изменение локально и сохраняет его
func (s *Service) Update(ctx context.Context, id int64, patch domain.ReservationPatch) (*domain.Reservation, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *patch.Status)
	}
	return s.mutate(ctx, domain.OperationUpdate, id, patch)
}

// Move меняет номер и/или даты (и длительность). amounts, если задан,
// заменяет сохраненные суммы пересчитанными.
func (s *Service) Move(ctx context.Context, id int64, roomID int64, checkIn, checkOut time.Time, amounts *domain.InvoiceAmounts) (*domain.Reservation, error) {
	patch := domain.ReservationPatch{RoomID: &roomID, CheckIn: &checkIn, CheckOut: &checkOut}
	if amounts != nil {
		patch.TotalAmount = &amounts.TotalAmount
		patch.VATAmount = &amounts.VATAmount
	}
	return s.mutate(ctx, domain.OperationMove, id, patch)
}

// Delete удаляет бронирование локально и в хранилище
func (s *Service) Delete(ctx context.Context, id int64) error {
	original, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn("Delete: reservation id=%d not found", id)
		return ErrReservationNotFound
	}

	res := optimistic.Execute(ctx, s.coordinator, optimistic.Mutation[struct{}]{
		Kind:     domain.OperationDelete,
		Original: original,
		Apply:    func() { s.store.Remove(id) },
		Rollback: func() { s.store.Upsert(original) },
		Commit: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repo.Delete(ctx, id)
		},
	})
	if !res.Success {
		s.logger.Error("Delete: store rejected deletion of reservation id=%d: %v", id, res.Err)
		return fmt.Errorf("%w: %v", ErrCommitFailed, res.Err)
	}

	s.store.Remove(id)
	s.logger.Info("Delete: reservation id=%d deleted", id)
	s.notifier.Success("Reservation deleted", fmt.Sprintf("%s, room %d", original.GuestName, original.RoomID))
	return nil
}

func (s *Service) mutate(ctx context.Context, kind domain.OperationKind, id int64, patch domain.ReservationPatch) (*domain.Reservation, error) {
	// 1. Снимок текущего состояния
	original, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn("%s: reservation id=%d not found", kind, id)
		return nil, ErrReservationNotFound
	}
	if kind == domain.OperationMove && !original.CanBeMoved() {
		return nil, ErrCannotMove
	}

	// 2. Новое состояние
	updated := original.Clone()
	patch.ApplyTo(updated)
	updated.UpdatedAt = time.Now()
	if !updated.CheckIn.Before(updated.CheckOut) {
		return nil, fmt.Errorf("%w: check-in must be before check-out", ErrInvalidInput)
	}

	// 3. Оптимистичное применение
	res := optimistic.Execute(ctx, s.coordinator, optimistic.Mutation[struct{}]{
		Kind:     kind,
		Original: original,
		New:      updated,
		Apply:    func() { s.store.Upsert(updated) },
		Rollback: func() { s.store.Upsert(original) },
		Commit: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repo.Update(ctx, id, patch)
		},
	})
	if !res.Success {
		s.logger.Error("%s: store rejected change of reservation id=%d: %v", kind, id, res.Err)
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, res.Err)
	}

	// Ответ хранилища применяется при получении, даже если оператор успел откатить операцию
	s.store.Upsert(updated)
	s.logger.Info("%s: reservation id=%d saved", kind, id)
	return updated, nil
}

func (s *Service) nextTempID() int64 {
	return -s.lastTempID.Add(1)
}
