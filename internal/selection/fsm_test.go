package selection

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellAt(m time.Month, d, h int) Cell {
	return CellOf(time.Date(2025, m, d, h, 0, 0, 0, time.UTC))
}

func newMachine() *Machine {
	return NewMachine(time.UTC, 14, 10)
}

func TestFSM_CanTransition(t *testing.T) {
	f := NewFSM()

	assert.True(t, f.CanTransition(StateIdle, StateSelecting))
	assert.True(t, f.CanTransition(StateSelecting, StateCommitted))
	assert.True(t, f.CanTransition(StateSelecting, StateIdle))
	assert.True(t, f.CanTransition(StateCommitted, StateIdle))

	assert.False(t, f.CanTransition(StateIdle, StateCommitted))
	assert.False(t, f.CanTransition(StateCommitted, StateSelecting))
}

func TestCell_Day(t *testing.T) {
	morning := cellAt(time.July, 20, 9)
	afternoon := cellAt(time.July, 20, 15)

	assert.Equal(t, afternoon, morning+1)
	assert.Equal(t, morning.Day(), afternoon.Day())
	assert.Equal(t, int64(-1), Cell(-1).Day())
	assert.Equal(t, int64(-1), Cell(-2).Day())
}

func TestMachine_TwoClicksCommit(t *testing.T) {
	m := newMachine()
	assert.Equal(t, StateIdle, m.State())

	state, err := m.Click(101, cellAt(time.July, 20, 9))
	require.NoError(t, err)
	assert.Equal(t, StateSelecting, state)

	_, ok := m.Committed()
	assert.False(t, ok, "nothing leaves the machine before the second click")

	state, err = m.Click(101, cellAt(time.July, 23, 16))
	require.NoError(t, err)
	assert.Equal(t, StateCommitted, state)

	r, ok := m.Committed()
	require.True(t, ok)
	assert.Equal(t, int64(101), r.RoomID)
	assert.Equal(t, time.Date(2025, time.July, 20, 14, 0, 0, 0, time.UTC), r.CheckIn)
	assert.Equal(t, time.Date(2025, time.July, 23, 10, 0, 0, 0, time.UTC), r.CheckOut)
	assert.Equal(t, 3, r.Nights())
}

func TestMachine_ReanchorOnEarlierDayOrOtherRoom(t *testing.T) {
	m := newMachine()
	_, _ = m.Click(101, cellAt(time.July, 20, 9))

	state, _ := m.Click(101, cellAt(time.July, 18, 9))
	assert.Equal(t, StateSelecting, state, "earlier day restarts the selection")

	state, _ = m.Click(101, cellAt(time.July, 18, 15))
	assert.Equal(t, StateSelecting, state, "same day is not a stay")

	state, _ = m.Click(102, cellAt(time.July, 21, 9))
	assert.Equal(t, StateSelecting, state, "other room restarts the selection")

	_, _ = m.Click(102, cellAt(time.July, 22, 9))
	r, ok := m.Committed()
	require.True(t, ok)
	assert.Equal(t, int64(102), r.RoomID)
	assert.Equal(t, 1, r.Nights())
}

func TestMachine_Hover(t *testing.T) {
	m := newMachine()

	_, ok := m.Hover(101, cellAt(time.July, 22, 9))
	assert.False(t, ok, "no preview while idle")

	_, _ = m.Click(101, cellAt(time.July, 20, 9))

	r, ok := m.Hover(101, cellAt(time.July, 22, 9))
	require.True(t, ok)
	assert.Equal(t, 2, r.Nights())

	p, ok := m.Preview()
	require.True(t, ok)
	assert.Equal(t, r, p)

	_, ok = m.Hover(102, cellAt(time.July, 22, 9))
	assert.False(t, ok)
	_, ok = m.Preview()
	assert.False(t, ok)

	assert.Equal(t, StateSelecting, m.State(), "hover never changes the state")
}

func TestMachine_CancelAndReset(t *testing.T) {
	m := newMachine()
	assert.ErrorIs(t, m.Cancel(), ErrTransitionNotAllowed)

	_, _ = m.Click(101, cellAt(time.July, 20, 9))
	require.NoError(t, m.Cancel())
	assert.Equal(t, StateIdle, m.State())

	_, _ = m.Click(101, cellAt(time.July, 20, 9))
	_, _ = m.Click(101, cellAt(time.July, 21, 9))
	require.Equal(t, StateCommitted, m.State())

	_, err := m.Click(101, cellAt(time.July, 25, 9))
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	assert.ErrorIs(t, m.Cancel(), ErrTransitionNotAllowed)

	m.Reset()
	assert.Equal(t, StateIdle, m.State())
	_, ok := m.Committed()
	assert.False(t, ok)
}

func TestMachine_Location(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Zagreb")
	if err != nil {
		t.Skip("tzdata not available")
	}
	m := NewMachine(loc, 14, 10)
	_, _ = m.Click(1, cellAt(time.July, 20, 9))
	_, _ = m.Click(1, cellAt(time.July, 21, 9))

	r, ok := m.Committed()
	require.True(t, ok)
	assert.Equal(t, loc, r.CheckIn.Location())
	assert.Equal(t, 14, r.CheckIn.Hour())
	assert.Equal(t, 20, r.CheckIn.Day())
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(time.Minute, time.UTC, 14, 10)

	a := store.GetOrCreate("desk-1")
	assert.Same(t, a, store.GetOrCreate("desk-1"))
	assert.NotSame(t, a, store.GetOrCreate("desk-2"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.GetOrCreate("desk-1").Hover(1, Cell(10))
		}()
	}
	wg.Wait()

	assert.Zero(t, store.Cleanup())
	store.Delete("desk-1")
	assert.NotSame(t, a, store.GetOrCreate("desk-1"))
}
