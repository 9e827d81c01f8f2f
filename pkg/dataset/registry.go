package dataset

// Registry maps identity keys to entities and remembers insertion order so
// that iteration is deterministic.
type Registry[T any] struct {
	marker string
	keys   []string
	items  map[string]T
}

// NewRegistry returns an empty Registry that resolves key collisions by
// appending marker.
func NewRegistry[T any](marker string) *Registry[T] {
	return &Registry[T]{
		marker: marker,
		items:  make(map[string]T),
	}
}

// Put stores v under key. An existing entry is never overwritten: the marker
// is appended until the key is free. The key actually used is returned.
func (r *Registry[T]) Put(key string, v T) string {
	for {
		if _, taken := r.items[key]; !taken {
			break
		}
		key += r.marker
	}
	r.keys = append(r.keys, key)
	r.items[key] = v
	return key
}

// Get returns the entity stored under key.
func (r *Registry[T]) Get(key string) (T, bool) {
	v, ok := r.items[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Registry[T]) Has(key string) bool {
	_, ok := r.items[key]
	return ok
}

// Keys returns keys in insertion order.
func (r *Registry[T]) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns entities in insertion order.
func (r *Registry[T]) Values() []T {
	out := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.items[k])
	}
	return out
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	return len(r.keys)
}
