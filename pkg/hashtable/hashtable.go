// Package hashtable implements a hash table with linearly chained buckets.
// Like heap, it is a standalone utility and shares nothing with the suffix
// tree packages.
package hashtable

import "hash/maphash"

const defaultBuckets = 64

type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Table maps keys to values using one chain per bucket. Missing keys are a
// (zero, false) return, not a fault. The zero Table is not ready for use;
// construct with New or NewWithBuckets.
type Table[K comparable, V any] struct {
	buckets []*entry[K, V]
	size    int
	seed    maphash.Seed
}

// New returns an empty table with a default bucket count.
func New[K comparable, V any]() *Table[K, V] {
	return NewWithBuckets[K, V](defaultBuckets)
}

// NewWithBuckets returns an empty table with at least n buckets.
func NewWithBuckets[K comparable, V any](n int) *Table[K, V] {
	if n < 1 {
		n = 1
	}
	return &Table[K, V]{
		buckets: make([]*entry[K, V], n),
		seed:    maphash.MakeSeed(),
	}
}

// Len reports the number of stored keys.
func (t *Table[K, V]) Len() int { return t.size }

// IsEmpty reports whether the table holds no keys.
func (t *Table[K, V]) IsEmpty() bool { return t.size == 0 }

// Put stores value under key, replacing any previous value for the key.
func (t *Table[K, V]) Put(key K, value V) {
	idx := t.index(key)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}
	t.buckets[idx] = &entry[K, V]{key: key, value: value, next: t.buckets[idx]}
	t.size++
	if t.size > len(t.buckets) {
		t.grow()
	}
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	for e := t.buckets[t.index(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Pop removes key and returns its value. Only the matched entry is
// unlinked; the rest of the chain stays intact.
func (t *Table[K, V]) Pop(key K) (V, bool) {
	idx := t.index(key)
	var prev *entry[K, V]
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key != key {
			prev = e
			continue
		}
		if prev == nil {
			t.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		t.size--
		return e.value, true
	}
	var zero V
	return zero, false
}

func (t *Table[K, V]) index(key K) int {
	return int(maphash.Comparable(t.seed, key) % uint64(len(t.buckets)))
}

// grow doubles the bucket count and rehashes every chain.
func (t *Table[K, V]) grow() {
	old := t.buckets
	t.buckets = make([]*entry[K, V], 2*len(old))
	for _, e := range old {
		for e != nil {
			next := e.next
			idx := t.index(e.key)
			e.next = t.buckets[idx]
			t.buckets[idx] = e
			e = next
		}
	}
}
