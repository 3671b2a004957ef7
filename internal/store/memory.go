package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/parser"
)

// ErrNoData no roster has been loaded yet
var ErrNoData = errors.New("no roster loaded")

// Snapshot one imported roster, immutable once stored
type Snapshot struct {
	ID         string           `json:"id"`
	SourceName string           `json:"sourceName"`
	Format     parser.Format    `json:"format"`
	Sheet      string           `json:"sheet,omitempty"`
	LoadedAt   time.Time        `json:"loadedAt"`
	Rows       int              `json:"rows"` // data rows read from the file
	Employees  []model.Employee `json:"-"`
	Warnings   []parser.Warning `json:"warnings"`
}

// NewSnapshot builds a snapshot with a fresh id
func NewSnapshot(source string, res *parser.Result, emps []model.Employee, loadedAt time.Time) *Snapshot {
	s := &Snapshot{
		ID:         uuid.New().String(),
		SourceName: source,
		LoadedAt:   loadedAt,
		Employees:  emps,
		Warnings:   []parser.Warning{},
	}
	if res != nil {
		s.Format = res.Format
		s.Sheet = res.Sheet
		s.Rows = len(res.Rows)
		if res.Warnings != nil {
			s.Warnings = res.Warnings
		}
	}
	return s
}

// MemoryStore current roster snapshot
type MemoryStore struct {
	current *Snapshot
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace swaps in a new snapshot; nil clears the store
func (s *MemoryStore) Replace(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snap
}

// Snapshot returns the current snapshot or ErrNoData
func (s *MemoryStore) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoData
	}
	return s.current, nil
}

// Employees returns a copy of the current employee set (empty when nothing is loaded)
func (s *MemoryStore) Employees() []model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return []model.Employee{}
	}
	out := make([]model.Employee, len(s.current.Employees))
	copy(out, s.current.Employees)
	return out
}

// Count number of employees in the current snapshot
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return 0
	}
	return len(s.current.Employees)
}

// Loaded reports whether a snapshot is present
func (s *MemoryStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Clear drops the current snapshot
func (s *MemoryStore) Clear() {
	s.Replace(nil)
}
