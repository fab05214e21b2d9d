package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/metrics"
)

var _ Registry = (*MemStore)(nil)

// MemStore is the in-memory Registry implementation. A single RWMutex guards
// the whole catalog; rosters are short and mutations are rare, so finer
// locking buys nothing here.
type MemStore struct {
	mu sync.RWMutex

	// names preserves seed insertion order; byName owns the records.
	names  []string
	byName map[string]*model.Activity

	enforceCapacity bool
}

// NewMemStore builds a store from the seed catalog. Each seed activity is
// validated, deep-copied and normalized so the store never aliases caller
// slices and rosters always marshal as JSON arrays.
func NewMemStore(seed []model.Activity, opts ...Option) (*MemStore, error) {
	s := &MemStore{
		byName: make(map[string]*model.Activity, len(seed)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i := range seed {
		if err := seed[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byName[seed[i].Name]; dup {
			return nil, fmt.Errorf("duplicate activity %q in seed", seed[i].Name)
		}
		a := seed[i].Clone()
		if a.Participants == nil {
			a.Participants = []string{}
		}
		s.names = append(s.names, a.Name)
		s.byName[a.Name] = &a

		metrics.UpdateRosterSize(a.Name, len(a.Participants))
		metrics.UpdateRosterCapacity(a.Name, a.MaxParticipants)
	}
	return s, nil
}

// List returns every activity in insertion order.
func (s *MemStore) List(_ context.Context) (model.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog := make(model.Catalog, 0, len(s.names))
	for _, name := range s.names {
		catalog = append(catalog, s.byName[name].Clone())
	}
	return catalog, nil
}

// Get returns a single activity by name.
func (s *MemStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byName[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the named activity's roster.
func (s *MemStore) Signup(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byName[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	if a.Registered(email) {
		return model.Activity{}, ErrAlreadySignedUp
	}
	if s.enforceCapacity && a.SpotsLeft() <= 0 {
		return model.Activity{}, ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	metrics.UpdateRosterSize(a.Name, len(a.Participants))
	return a.Clone(), nil
}

// Unregister removes email from the named activity's roster.
func (s *MemStore) Unregister(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byName[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return model.Activity{}, ErrNotSignedUp
	}

	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	metrics.UpdateRosterSize(a.Name, len(a.Participants))
	return a.Clone(), nil
}

// Count returns the number of activities tracked.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}
