package status

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// Family holds metrics of one kind keyed by dotted name ("rhythm.beats")
// Writers cache the pointer returned by Get and update it without locking
type Family[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

func newFamily[T any]() *Family[T] {
	return &Family[T]{metrics: make(map[string]*T)}
}

// Get returns the metric named key, registering it on first use
func (f *Family[T]) Get(key string) *T {
	f.mu.RLock()
	m, ok := f.metrics[key]
	f.mu.RUnlock()
	if ok {
		return m
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok = f.metrics[key]; !ok {
		m = new(T)
		f.metrics[key] = m
	}
	return m
}

func (f *Family[T]) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.metrics[key]
	return ok
}

func (f *Family[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.metrics)
}

// Each visits metrics whose name starts with prefix, in name order
func (f *Family[T]) Each(prefix string, fn func(key string, m *T)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(f.metrics)) {
		if strings.HasPrefix(k, prefix) {
			fn(k, f.metrics[k])
		}
	}
}
