// Package store provides the generic in-memory collection backing every
// entity kind jarvis manages: tasks, reminders, schedule events and
// smart-home devices.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// Config describes how a Store stamps and copies its records.
type Config[T any] struct {
	// Prefix is prepended to generated ids, e.g. "task_". Optional.
	Prefix string

	// AssignID stamps a freshly generated id onto a record before insert.
	AssignID func(rec *T, id string)

	// Clone copies a record on every read. Optional; record types without
	// reference fields can leave it nil and rely on plain value copies.
	Clone func(rec T) T
}

// Store is a keyed, insertion-ordered, in-memory collection. Records are
// never deleted, so an id stays valid for the process lifetime. All
// methods are safe for concurrent use.
type Store[T any] struct {
	mu    sync.RWMutex
	cfg   Config[T]
	byID  map[string]*T
	order []string
}

// New creates an empty Store.
func New[T any](cfg Config[T]) (*Store[T], error) {
	if cfg.AssignID == nil {
		return nil, fmt.Errorf("assign-id function is required")
	}
	return &Store[T]{
		cfg:  cfg,
		byID: make(map[string]*T),
	}, nil
}

// Create stamps a fresh id onto rec, inserts it and returns the stored
// record. Generated ids are unique for the lifetime of the store.
func (s *Store[T]) Create(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.cfg.Prefix + uuid.NewString()
	s.cfg.AssignID(&rec, id)
	stored := rec
	s.byID[id] = &stored
	s.order = append(s.order, id)
	return s.read(&stored)
}

// Get returns the record carrying id, or ErrNotFound.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.read(rec), nil
}

// List returns records in insertion order. When predicates are given, a
// record is included only if every predicate accepts it.
func (s *Store[T]) List(preds ...func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		rec := s.byID[id]
		if !matches(*rec, preds) {
			continue
		}
		out = append(out, s.read(rec))
	}
	return out
}

// Update applies fn to the record carrying id and returns the updated
// record. The closure sees the live record, so fields it does not touch
// keep their values. That is what gives partial updates their merge
// semantics.
func (s *Store[T]) Update(id string, fn func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	fn(rec)
	return s.read(rec), nil
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// read returns a caller-safe copy of rec.
func (s *Store[T]) read(rec *T) T {
	if s.cfg.Clone != nil {
		return s.cfg.Clone(*rec)
	}
	return *rec
}

func matches[T any](rec T, preds []func(T) bool) bool {
	for _, pred := range preds {
		if !pred(rec) {
			return false
		}
	}
	return true
}
