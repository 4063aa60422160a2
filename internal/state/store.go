package state

import (
	"log"
	"sync"

	"github.com/wavecast/dial/internal/radio"
)

// Snapshot is the authoritative view of remote playout state. It is replaced
// wholesale on every full refresh; individual fields are never patched.
type Snapshot struct {
	Now     radio.NowPlaying
	Library radio.LibraryStats
	Uptime  string
}

// Store coordinates concurrent updates to the snapshot and fans change
// notifications out to observers. The zero value is ready to use: no
// snapshot yet, connectivity optimistically up.
type Store struct {
	mu        sync.Mutex
	snapshot  *Snapshot
	lost      bool // inverted so the zero value starts connected
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func()
}

// Subscribe registers a change callback and returns its unsubscribe
// function. Observers are notified in insertion order, synchronously, after
// each applied change. Unsubscribe is idempotent.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the current snapshot, or nil before the first
// successful read.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	snap := *s.snapshot
	snap.Now.History = cloneHistory(s.snapshot.Now.History)
	return &snap
}

// Connected reports the push-channel connectivity state.
func (s *Store) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.lost
}

// ApplyFull replaces the entire snapshot. Updates are last-write-wins: a
// stale read applied after a fresher push overwrites it until the next
// refresh. That staleness window is accepted; there is no field merging.
func (s *Store) ApplyFull(snap Snapshot) {
	s.mu.Lock()
	snap.Now.History = cloneHistory(snap.Now.History)
	s.snapshot = &snap
	obs := s.observerList()
	s.mu.Unlock()

	notify(obs)
}

// ApplyNowPlaying replaces only the now-playing fragment. Push events carry
// no library stats or uptime, so those keep their values from the last full
// read.
func (s *Store) ApplyNowPlaying(now radio.NowPlaying) {
	s.mu.Lock()
	if s.snapshot == nil {
		s.snapshot = &Snapshot{}
	}
	now.History = cloneHistory(now.History)
	s.snapshot.Now = now
	obs := s.observerList()
	s.mu.Unlock()

	notify(obs)
}

// SetConnected records push-channel connectivity. Observers are only
// notified when the value actually changes.
func (s *Store) SetConnected(connected bool) {
	s.mu.Lock()
	if s.lost == !connected {
		s.mu.Unlock()
		return
	}
	s.lost = !connected
	obs := s.observerList()
	s.mu.Unlock()

	notify(obs)
}

// observerList copies the observer slice under the lock so callbacks run
// without holding it. Observers may therefore call back into the store.
func (s *Store) observerList() []observer {
	obs := make([]observer, len(s.observers))
	copy(obs, s.observers)
	return obs
}

func notify(obs []observer) {
	for _, o := range obs {
		safeNotify(o.fn)
	}
}

// safeNotify isolates observer failures so one bad callback cannot starve
// the rest of the list.
func safeNotify(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("state observer panicked: %v", r)
		}
	}()
	fn()
}

func cloneHistory(entries []radio.HistoryEntry) []radio.HistoryEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]radio.HistoryEntry, len(entries))
	copy(dup, entries)
	return dup
}
