// Package board holds what the price board currently shows.
package board

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"bullion/internal/model"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusOK      Status = "ok"
	StatusError   Status = "error"
)

// Region describes one area of the board.
type Region struct {
	ID    model.Region
	Title string
}

type RegionState struct {
	Region    model.Region  `json:"region"`
	Title     string        `json:"title"`
	Status    Status        `json:"status"`
	Report    *model.Report `json:"report,omitempty"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt time.Time     `json:"updated_at,omitzero"`
}

type Snapshot struct {
	Busy    bool          `json:"busy"`
	Regions []RegionState `json:"regions"`
}

// Region returns the state of one region.
func (s Snapshot) Region(id model.Region) (RegionState, bool) {
	for _, r := range s.Regions {
		if r.Region == id {
			return r, true
		}
	}

	return RegionState{}, false
}

// Ready reports whether any region holds a report.
func (s Snapshot) Ready() bool {
	for _, r := range s.Regions {
		if r.Report != nil {
			return true
		}
	}

	return false
}

type Listener func(Snapshot)

type Board struct {
	busy *atomic.Bool
	now  func() time.Time

	mu        sync.RWMutex
	order     []model.Region
	regions   map[model.Region]*RegionState
	listeners []Listener
}

func New(regions ...Region) *Board {
	b := &Board{
		busy:    atomic.NewBool(false),
		now:     time.Now,
		regions: make(map[model.Region]*RegionState, len(regions)),
	}

	for _, r := range regions {
		b.order = append(b.order, r.ID)
		b.regions[r.ID] = &RegionState{Region: r.ID, Title: r.Title, Status: StatusLoading}
	}

	return b
}

// OnChange registers a listener called after every change, outside the board lock.
func (b *Board) OnChange(listener Listener) {
	b.mu.Lock()
	b.listeners = append(b.listeners, listener)
	b.mu.Unlock()
}

func (b *Board) SetBusy(busy bool) {
	if b.busy.Swap(busy) == busy {
		return
	}

	b.notify()
}

func (b *Board) Busy() bool {
	return b.busy.Load()
}

func (b *Board) Publish(region model.Region, report *model.Report) {
	b.update(region, func(state *RegionState) {
		state.Status = StatusOK
		state.Report = report
		state.Error = ""
	})
}

func (b *Board) Fail(region model.Region, err error) {
	b.update(region, func(state *RegionState) {
		state.Status = StatusError
		state.Report = nil
		state.Error = err.Error()
	})
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.snapshotLocked()
}

func (b *Board) update(region model.Region, apply func(state *RegionState)) {
	b.mu.Lock()
	state, ok := b.regions[region]
	if !ok {
		state = &RegionState{Region: region, Title: string(region)}
		b.order = append(b.order, region)
		b.regions[region] = state
	}

	apply(state)
	state.UpdatedAt = b.now()
	b.mu.Unlock()

	b.notify()
}

func (b *Board) notify() {
	b.mu.RLock()
	snapshot := b.snapshotLocked()
	listeners := append([]Listener(nil), b.listeners...)
	b.mu.RUnlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}

func (b *Board) snapshotLocked() Snapshot {
	snapshot := Snapshot{Busy: b.busy.Load(), Regions: make([]RegionState, 0, len(b.order))}
	for _, id := range b.order {
		snapshot.Regions = append(snapshot.Regions, *b.regions[id])
	}

	return snapshot
}
