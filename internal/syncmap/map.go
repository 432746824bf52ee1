package syncmap

import "sync"

// Map is a thread-safe generic map that remembers insertion order so that
// listings stay deterministic.
type Map[T any] struct {
	mux   sync.RWMutex
	m     map[string]T
	order []string
}

// NewMap creates a new instance of Map
func NewMap[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name
func (r *Map[T]) Get(name string) T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	if v, ok := r.m[name]; ok {
		return v
	}
	var zero T
	return zero
}

// Set adds or updates an item by name
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		r.order = append(r.order, name)
	}
	r.m[name] = value
}

// Delete removes an item by name
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		return
	}
	delete(r.m, name)
	for i, key := range r.order {
		if key == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Keys returns all names in insertion order
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// List returns all items in insertion order
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	out := make([]T, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.m[key])
	}
	return out
}

// Size returns the number of items
func (r *Map[T]) Size() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}
