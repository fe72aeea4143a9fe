package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/passport/internal/countries"
)

// Phase is the lifecycle of the single countries fetch.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Phase     Phase
	Countries []countries.Country
	Err       error
	StartedAt time.Time
	SettledAt time.Time
}

// Loading reports whether the fetch is still outstanding.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// Elapsed returns how long the fetch took, or has taken so far.
func (s Snapshot) Elapsed() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	if s.SettledAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.SettledAt.Sub(s.StartedAt)
}

// Store coordinates the loader goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin records the start of the fetch. It is a no-op once settled.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseLoading || !s.snapshot.StartedAt.IsZero() {
		return
	}
	s.snapshot.StartedAt = time.Now()
}

// Resolve settles the fetch. A non-nil err moves to PhaseError, otherwise to
// PhaseReady with a private copy of list. Both phases are terminal: Resolve
// reports false and changes nothing once the store has settled.
func (s *Store) Resolve(list []countries.Country, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != PhaseLoading {
		return false
	}
	now := time.Now()
	if s.snapshot.StartedAt.IsZero() {
		s.snapshot.StartedAt = now
	}
	s.snapshot.SettledAt = now

	if err != nil {
		s.snapshot.Phase = PhaseError
		s.snapshot.Err = err
		return true
	}
	s.snapshot.Phase = PhaseReady
	s.snapshot.Countries = cloneCountries(list)
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Countries = cloneCountries(s.snapshot.Countries)
	return snap
}

func cloneCountries(items []countries.Country) []countries.Country {
	if len(items) == 0 {
		return nil
	}
	dup := make([]countries.Country, len(items))
	copy(dup, items)
	return dup
}
