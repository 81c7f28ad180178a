// Package store provides the in-memory data layer: a generic entity
// collection and the DB aggregate holding one collection per entity kind.
//
// The store is deliberately dumb. It knows how to insert, look up, replace,
// and delete records of a single type — nothing else. It performs no
// referential-integrity checks and knows nothing about other collections;
// all cross-entity rules (profile uniqueness, foreign-key validation) and
// all joins live in the service layer on top of it.
package store

import (
	"sync"

	"github.com/rs/xid"

	"github.com/kmalikov/social-api/internal/apperror"
)

// Entity is the constraint every stored record type satisfies. WithEntityID
// returns a copy rather than mutating in place so the store can stamp ids on
// value types.
type Entity[T any] interface {
	EntityID() string
	WithEntityID(id string) T
}

// EntityStore is an in-memory collection of records keyed by id, kept in
// insertion order.
//
// Every operation takes the store's lock for its full duration, so each
// call is atomic with respect to every other call on the same store. Reads
// return copies (value semantics), never views into internal state, so a
// result slice stays valid however the store is mutated afterwards.
type EntityStore[T Entity[T]] struct {
	mu      sync.RWMutex
	name    string // resource name used in error messages, e.g. "user"
	records []T
}

// NewEntityStore creates an empty store. The name identifies the resource in
// NotFound messages.
func NewEntityStore[T Entity[T]](name string) *EntityStore[T] {
	return &EntityStore[T]{name: name}
}

// GetByID returns the record with the given id, or false if no such record
// exists. A miss is a valid result, not an error.
func (s *EntityStore[T]) GetByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.EntityID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// FindOne returns the first record matching the predicate, in insertion
// order, or false if nothing matches.
func (s *EntityStore[T]) FindOne(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// FindMany returns every record matching the predicate, preserving insertion
// order. A nil predicate matches everything. The result is a fresh slice on
// every call — the store never hands out cached or shared results.
func (s *EntityStore[T]) FindMany(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		if match == nil || match(rec) {
			result = append(result, rec)
		}
	}
	return result
}

// List returns all records in insertion order.
func (s *EntityStore[T]) List() []T {
	return s.FindMany(nil)
}

// Len returns the number of records currently stored.
func (s *EntityStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Create stamps the record with a freshly generated id, appends it, and
// returns the stored value. Generated ids are unique for the life of the
// process — xid encodes a timestamp plus a per-process counter.
func (s *EntityStore[T]) Create(rec T) T {
	rec = rec.WithEntityID(xid.New().String())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return rec
}

// Put appends the record under the id it already carries. Used for seeding
// collections whose ids come from a closed set (member types) rather than
// from the generator.
func (s *EntityStore[T]) Put(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return rec
}

// Change replaces the record with the given id by apply(old), keeping its
// position in insertion order, and returns the new value. Fails with
// NotFound if the id is absent, leaving the store untouched.
//
// The store replaces whole records; field-level merge semantics belong to
// the caller (the services apply typed patches inside apply).
func (s *EntityStore[T]) Change(id string, apply func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.EntityID() == id {
			updated := apply(rec)
			s.records[i] = updated
			return updated, nil
		}
	}
	var zero T
	return zero, apperror.NotFound(s.name, id)
}

// Delete removes the record with the given id and returns its prior value.
// Fails with NotFound if the id is absent. Deletion never cascades: records
// in other stores referencing this id keep their now-dangling keys, which
// later resolve to absent on read.
func (s *EntityStore[T]) Delete(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.EntityID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return rec, nil
		}
	}
	var zero T
	return zero, apperror.NotFound(s.name, id)
}
