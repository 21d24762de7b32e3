// Package property provides observable values for keeping dock node
// state in sync with title bars and floating windows. Every write
// notifies subscribers synchronously and exactly once per change.
package property

import "sync"

// Value wraps a comparable value and notifies subscribers when it changes.
// Writes from the UI thread are expected; the mutex guards subscriber
// bookkeeping, not ordering.
type Value[T comparable] struct {
	mu    sync.Mutex
	value T
	subs  map[uint64]func(old, new T)
	next  uint64
}

// New creates a Value holding the given initial value.
func New[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores a new value. Subscribers are invoked synchronously, in
// subscription order, only when the value actually changed.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	old := v.value
	if old == value {
		v.mu.Unlock()
		return
	}
	v.value = value
	subs := v.snapshotLocked()
	v.mu.Unlock()

	for _, fn := range subs {
		fn(old, value)
	}
}

// Subscribe registers a callback invoked on every change. The returned
// cancel function removes the subscription.
func (v *Value[T]) Subscribe(fn func(old, new T)) (cancel func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.subs == nil {
		v.subs = make(map[uint64]func(old, new T))
	}
	id := v.next
	v.next++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

// snapshotLocked copies subscribers in registration order so callbacks
// run outside the lock. Must be called with the lock held.
func (v *Value[T]) snapshotLocked() []func(old, new T) {
	if len(v.subs) == 0 {
		return nil
	}
	out := make([]func(old, new T), 0, len(v.subs))
	for id := uint64(0); id < v.next; id++ {
		if fn, ok := v.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
