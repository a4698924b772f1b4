package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key/value pairs and iterates over them in insertion order.
// It is a typed wrapper around wk8/go-ordered-map.
type OrderedMap[K comparable, V any] struct {
	om *wk8.OrderedMap
}

// NewOrderedMap creates a new empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{om: wk8.New()}
}

// Set stores value under key. Returns true when the key was not already present.
func (o *OrderedMap[K, V]) Set(key K, value V) bool {
	_, present := o.om.Set(key, value)

	return !present
}

// Get returns the value stored under key and true when present
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := o.om.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	return v.(V), true
}

// Delete removes the value stored under key. Returns true when the key was present.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	_, present := o.om.Delete(key)

	return present
}

// Count returns the number of stored pairs
func (o *OrderedMap[K, V]) Count() int {
	return o.om.Len()
}

// Entry is an iteration handle starting at OrderedMap.Front or OrderedMap.Back
type Entry[K comparable, V any] struct {
	Key   *K
	Value V
	pair  *wk8.Pair
}

// Front returns the oldest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Entry[K, V] {
	return entryOf[K, V](o.om.Oldest())
}

// Back returns the newest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Entry[K, V] {
	return entryOf[K, V](o.om.Newest())
}

// Next returns the entry which was inserted after the current one or nil
func (e *Entry[K, V]) Next() *Entry[K, V] {
	return entryOf[K, V](e.pair.Next())
}

// Prev returns the entry which was inserted before the current one or nil
func (e *Entry[K, V]) Prev() *Entry[K, V] {
	return entryOf[K, V](e.pair.Prev())
}

func entryOf[K comparable, V any](p *wk8.Pair) *Entry[K, V] {
	if p == nil {
		return nil
	}
	key := p.Key.(K)

	return &Entry[K, V]{Key: &key, Value: p.Value.(V), pair: p}
}
