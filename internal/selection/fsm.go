// Package selection models the two-click date-range selection on the room timeline
// as an explicit state machine. Only a committed (room, check-in, check-out) triple
// leaves the machine; availability and pricing never see partial selections.
package selection

import (
	"errors"
	"sync"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// State represents the current state of the selection.
type State string

const (
	StateIdle      State = "idle"
	StateSelecting State = "selecting"
	StateCommitted State = "committed"
)

// ErrTransitionNotAllowed is returned for events that are invalid in the current state.
var ErrTransitionNotAllowed = errors.New("selection: transition not allowed")

// Cell is a half-day slot of the timeline (see domain.HalfDay).
type Cell int64

// CellOf returns the cell that contains t.
func CellOf(t time.Time) Cell {
	return Cell(domain.HalfDay(t))
}

// Day returns the day index of the cell.
func (c Cell) Day() int64 {
	d := int64(c) / 2
	if c < 0 && int64(c)%2 != 0 {
		d--
	}
	return d
}

// Range is a committed or previewed selection.
type Range struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the number of nights of the range.
func (r Range) Nights() int {
	return domain.NightsBetween(r.CheckIn, r.CheckOut)
}

// FSM holds the allowed transitions.
type FSM struct {
	transitions map[State][]State
}

// NewFSM creates a new FSM with predefined transitions.
func NewFSM() *FSM {
	return &FSM{
		transitions: map[State][]State{
			StateIdle:      {StateSelecting},
			StateSelecting: {StateSelecting, StateCommitted, StateIdle},
			StateCommitted: {StateIdle},
		},
	}
}

// CanTransition checks if transition is allowed.
func (f *FSM) CanTransition(from, to State) bool {
	for _, s := range f.transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Machine is one operator's selection. Safe for concurrent use.
type Machine struct {
	fsm          *FSM
	loc          *time.Location
	checkInHour  int
	checkOutHour int

	mu        sync.Mutex
	state     State
	roomID    int64
	anchor    Cell
	hover     *Cell
	committed *Range
	updatedAt time.Time
}

// NewMachine creates an idle machine. Check-in and check-out times of the produced
// ranges use the given hours in loc.
func NewMachine(loc *time.Location, checkInHour, checkOutHour int) *Machine {
	if loc == nil {
		loc = time.UTC
	}
	return &Machine{
		fsm:          NewFSM(),
		loc:          loc,
		checkInHour:  checkInHour,
		checkOutHour: checkOutHour,
		state:        StateIdle,
		updatedAt:    time.Now(),
	}
}

// State returns current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Click handles a click on a cell of a room row.
//
// idle: the cell becomes the check-in anchor.
// selecting, same room, later day: the range is committed.
// selecting, other room or not a later day: the cell becomes the new anchor.
// committed: not allowed until Reset.
func (m *Machine) Click(roomID int64, cell Cell) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateIdle:
		m.anchorAt(roomID, cell)
	case StateSelecting:
		if roomID == m.roomID && cell.Day() > m.anchor.Day() {
			r := m.rangeTo(cell)
			m.set(StateCommitted)
			m.committed = &r
			m.hover = nil
			break
		}
		m.anchorAt(roomID, cell)
	default:
		return m.state, ErrTransitionNotAllowed
	}
	return m.state, nil
}

// Hover updates the preview while selecting and returns it. No preview is
// returned in other states, for other rooms or for cells not after the anchor day.
func (m *Machine) Hover(roomID int64, cell Cell) (Range, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelecting || roomID != m.roomID || cell.Day() <= m.anchor.Day() {
		m.hover = nil
		return Range{}, false
	}
	c := cell
	m.hover = &c
	m.updatedAt = time.Now()
	return m.rangeTo(cell), true
}

// Preview returns the range under the last valid hover.
func (m *Machine) Preview() (Range, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelecting || m.hover == nil {
		return Range{}, false
	}
	return m.rangeTo(*m.hover), true
}

// Cancel abandons an in-progress selection.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelecting {
		return ErrTransitionNotAllowed
	}
	m.clear()
	return nil
}

// Reset returns the machine to idle from any state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clear()
}

// Committed returns the finished selection.
func (m *Machine) Committed() (Range, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateCommitted || m.committed == nil {
		return Range{}, false
	}
	return *m.committed, true
}

// IsExpired checks if the machine has not been touched for longer than timeout.
func (m *Machine) IsExpired(timeout time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.updatedAt) > timeout
}

func (m *Machine) anchorAt(roomID int64, cell Cell) {
	m.set(StateSelecting)
	m.roomID = roomID
	m.anchor = cell
	m.hover = nil
	m.committed = nil
}

func (m *Machine) clear() {
	m.state = StateIdle
	m.roomID = 0
	m.anchor = 0
	m.hover = nil
	m.committed = nil
	m.updatedAt = time.Now()
}

func (m *Machine) set(to State) {
	if m.fsm.CanTransition(m.state, to) {
		m.state = to
		m.updatedAt = time.Now()
	}
}

func (m *Machine) rangeTo(end Cell) Range {
	return Range{
		RoomID:   m.roomID,
		CheckIn:  m.atDay(m.anchor.Day(), m.checkInHour),
		CheckOut: m.atDay(end.Day(), m.checkOutHour),
	}
}

func (m *Machine) atDay(day int64, hour int) time.Time {
	y, mo, d := time.Unix(day*86400, 0).UTC().Date()
	return time.Date(y, mo, d, hour, 0, 0, 0, m.loc)
}
