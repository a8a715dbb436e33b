// Package resultcache memoizes (domain, query) → SearchResponse. Two
// backends share one contract: an in-process map for the default
// single-node deployment and Redis for deployments that want cache
// sharing across replicas.
package resultcache

import (
	"context"
	"sync"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// cacheKey joins domain and the raw query. No normalization: queries
// differing only in case are distinct entries.
func cacheKey(domainName, query string) string {
	return domainName + ":" + query
}

// Memory is an unbounded in-process cache. Safe for concurrent use;
// entries live until Clear.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]domain.SearchResponse
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]domain.SearchResponse)}
}

// Get returns the cached response for (domain, query), if present.
func (m *Memory) Get(_ context.Context, domainName, query string) (domain.SearchResponse, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp, ok := m.entries[cacheKey(domainName, query)]
	return resp, ok
}

// Put stores a response. The response must not be mutated afterwards.
func (m *Memory) Put(_ context.Context, domainName, query string, resp domain.SearchResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[cacheKey(domainName, query)] = resp
}

// Clear drops every entry. The only invalidation path; call it after
// any corpus refresh.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]domain.SearchResponse)
	return nil
}

// Len returns the number of cached responses.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
