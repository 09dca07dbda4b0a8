// Package cache provides the time-bounded memo used for upstream fetches.
// The site tolerates stale data for a revalidation window (minutes), so the
// memo serves stale values while refreshing in the background and collapses
// concurrent fetches into one upstream call.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Memo caches the result of a single fetch function for a fixed TTL.
// A failed upstream fetch stores whatever the fetcher degrades to (typically
// an empty value); retrying before the window expires would only hammer an
// unavailable upstream.
type Memo[T any] struct {
	ttl   time.Duration
	fetch func() T

	group singleflight.Group

	mu        sync.Mutex
	value     T
	have      bool
	fetchedAt time.Time
}

func NewMemo[T any](ttl time.Duration, fetch func() T) *Memo[T] {
	return &Memo[T]{ttl: ttl, fetch: fetch}
}

// Get returns the cached value. A fresh value is returned as-is; a stale one
// is returned immediately while a single background refresh runs; a cold
// memo fetches synchronously, with concurrent callers sharing one fetch.
func (m *Memo[T]) Get() T {
	m.mu.Lock()
	value, have := m.value, m.have
	fresh := have && time.Since(m.fetchedAt) < m.ttl
	m.mu.Unlock()

	if fresh {
		return value
	}
	if have {
		go m.refresh()
		return value
	}
	return m.refresh()
}

func (m *Memo[T]) refresh() T {
	v, _, _ := m.group.Do("refresh", func() (any, error) {
		value := m.fetch()
		m.mu.Lock()
		m.value = value
		m.have = true
		m.fetchedAt = time.Now()
		m.mu.Unlock()
		return value, nil
	})
	return v.(T)
}
