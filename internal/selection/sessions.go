package selection

import (
	"sync"
	"time"
)

// SessionStore keeps one selection machine per operator.
type SessionStore struct {
	mu       sync.RWMutex
	machines map[string]*Machine
	timeout  time.Duration

	loc          *time.Location
	checkInHour  int
	checkOutHour int
}

// NewSessionStore creates a store; machines idle for longer than timeout are replaced.
func NewSessionStore(timeout time.Duration, loc *time.Location, checkInHour, checkOutHour int) *SessionStore {
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return &SessionStore{
		machines:     make(map[string]*Machine),
		timeout:      timeout,
		loc:          loc,
		checkInHour:  checkInHour,
		checkOutHour: checkOutHour,
	}
}

// GetOrCreate returns the operator's machine or a new idle one.
func (s *SessionStore) GetOrCreate(operatorID string) *Machine {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.machines[operatorID]
	if ok && !m.IsExpired(s.timeout) {
		return m
	}
	m = NewMachine(s.loc, s.checkInHour, s.checkOutHour)
	s.machines[operatorID] = m
	return m
}

// Delete removes the operator's machine.
func (s *SessionStore) Delete(operatorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.machines, operatorID)
}

// Cleanup removes expired machines.
func (s *SessionStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, m := range s.machines {
		if m.IsExpired(s.timeout) {
			delete(s.machines, id)
			removed++
		}
	}
	return removed
}
