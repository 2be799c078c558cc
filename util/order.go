package util

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/daedaleanai/lcc/log"
)

// OrderedMap is a map supporting iteration ordered by the key.
//
// The key set is fixed by the inserts: `Insert` aborts on an attempt to add a key twice, and
// `Replace` only ever updates keys that are already present.
type OrderedMap[K constraints.Ordered, V any] struct {
	data map[K]V
}

// OrderedMapEntry is an accessor into a single (key, value) pair of the map.
type OrderedMapEntry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Instantiates an empty OrderedMap object.
func NewOrderedMap[K constraints.Ordered, V any]() OrderedMap[K, V] {
	return OrderedMap[K, V]{
		data: map[K]V{},
	}
}

// Insert a new (key, value) pair.
func (m *OrderedMap[K, V]) Insert(key K, value V) {
	if val, ok := m.data[key]; ok {
		log.Fatal(
			"Attempting to override a value with key: %v; old value: %v; new value: %v\n",
			key, val, value)
	}
	m.data[key] = value
}

// Replace overwrites the value of an existing key. It reports false, leaving the map
// untouched, if the key is not present.
func (m *OrderedMap[K, V]) Replace(key K, value V) bool {
	if _, ok := m.data[key]; !ok {
		return false
	}
	m.data[key] = value
	return true
}

// Performs a lookup of the key, similar to `v, ok := m[k]`.
func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := m.data[key]
	return val, ok
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.data)
}

// Returns the list of entries ordered by keys.
func (m *OrderedMap[K, V]) Entries() []OrderedMapEntry[K, V] {
	keys := m.Keys()

	result := make([]OrderedMapEntry[K, V], 0, len(m.data))
	for _, k := range keys {
		result = append(result, OrderedMapEntry[K, V]{
			Key:   k,
			Value: m.data[k],
		})
	}
	return result
}

// Returns the ordered list of map keys.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
