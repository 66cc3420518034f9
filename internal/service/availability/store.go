// Package availability keeps the live reservation set of the visible horizon and
// answers occupancy questions over it. Every query is recomputed from the current set.
package availability

import (
	"sort"
	"sync"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// Store in-memory reservation collection, safe for concurrent use.
// Values are copied on the way in and on the way out.
type Store struct {
	mu    sync.RWMutex
	items map[int64]*domain.Reservation
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{items: make(map[int64]*domain.Reservation)}
}

// Load replaces the whole collection
func (s *Store) Load(reservations []*domain.Reservation) {
	items := make(map[int64]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		items[r.ID] = r.Clone()
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Upsert inserts or replaces a reservation by ID
func (s *Store) Upsert(r *domain.Reservation) {
	c := r.Clone()
	s.mu.Lock()
	s.items[c.ID] = c
	s.mu.Unlock()
}

// Remove deletes a reservation and returns the removed value
func (s *Store) Remove(id int64) (*domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return nil, false
	}
	delete(s.items, id)
	return r, true
}

// Get returns a copy of the reservation
func (s *Store) Get(id int64) (*domain.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// Snapshot deep copy used by the optimistic coordinator
func (s *Store) Snapshot(id int64) (*domain.Reservation, bool) {
	return s.Get(id)
}

// Len number of reservations in the store
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// All returns copies of every reservation ordered by check-in, then ID
func (s *Store) All() []*domain.Reservation {
	return s.collect(func(*domain.Reservation) bool { return true })
}

// ForRoom returns copies of the room's reservations ordered by check-in
func (s *Store) ForRoom(roomID int64) []*domain.Reservation {
	return s.collect(func(r *domain.Reservation) bool { return r.RoomID == roomID })
}

// InRange returns reservations intersecting [from, to)
func (s *Store) InRange(from, to time.Time) []*domain.Reservation {
	return s.collect(func(r *domain.Reservation) bool {
		return r.CheckOut.After(from) && r.CheckIn.Before(to)
	})
}

// HasConflict returns the active reservation of the room whose half-day interval
// overlaps [checkIn, checkOut). excludeID is ignored (0 excludes nothing).
// When several overlap, the one with the earliest check-in is returned.
func (s *Store) HasConflict(roomID int64, checkIn, checkOut time.Time, excludeID int64) (*domain.Reservation, bool) {
	for _, r := range s.ForRoom(roomID) {
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if r.ConflictsWith(roomID, checkIn, checkOut) {
			return r, true
		}
	}
	return nil, false
}

// OccupiedDates calendar days in [from, to) covered by active reservations of the room.
// A stay covers its check-in day up to, but not including, its check-out day.
func (s *Store) OccupiedDates(roomID int64, from, to time.Time) []time.Time {
	fromDay, toDay := domain.DayIndex(from), domain.DayIndex(to)
	seen := make(map[int64]time.Time)

	for _, r := range s.ForRoom(roomID) {
		if !r.IsActive() {
			continue
		}
		day := domain.StartOfDay(r.CheckIn)
		last := domain.DayIndex(r.CheckOut)
		for idx := domain.DayIndex(day); idx < last; idx++ {
			if idx >= fromDay && idx < toDay {
				if _, ok := seen[idx]; !ok {
					seen[idx] = day
				}
			}
			day = day.AddDate(0, 0, 1)
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// MaxCheckoutFor the calendar day of the first active reservation checking in after
// checkIn, i.e. the latest possible check-out for a stay starting at checkIn.
// Nil when nothing follows.
func (s *Store) MaxCheckoutFor(roomID int64, checkIn time.Time) *time.Time {
	for _, r := range s.ForRoom(roomID) {
		if r.IsActive() && r.CheckIn.After(checkIn) {
			day := domain.StartOfDay(r.CheckIn)
			return &day
		}
	}
	return nil
}

// IsDateFree returns true if no active reservation of the room covers the calendar day
func (s *Store) IsDateFree(roomID int64, date time.Time) bool {
	idx := domain.DayIndex(date)
	for _, r := range s.ForRoom(roomID) {
		if r.IsActive() && domain.DayIndex(r.CheckIn) <= idx && idx < domain.DayIndex(r.CheckOut) {
			return false
		}
	}
	return true
}

func (s *Store) collect(keep func(*domain.Reservation) bool) []*domain.Reservation {
	s.mu.RLock()
	result := make([]*domain.Reservation, 0, len(s.items))
	for _, r := range s.items {
		if keep(r) {
			result = append(result, r.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CheckIn.Equal(result[j].CheckIn) {
			return result[i].CheckIn.Before(result[j].CheckIn)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
