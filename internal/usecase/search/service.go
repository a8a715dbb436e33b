// Package search is the corpus index: it resolves domains, builds and
// caches per-domain BM25 rankers, and materializes ranked results into
// search responses.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/domain"
	"github.com/kailas-cloud/designdex/internal/index"
	"github.com/kailas-cloud/designdex/internal/metrics"
	"github.com/kailas-cloud/designdex/internal/router"
)

// Tuning defaults; all overridable via WithTuning.
const (
	defaultMaxResults      = 5
	defaultHighThreshold   = 2.0
	defaultMediumThreshold = 1.0
)

// noteDataUnavailable marks a normal empty response for a known domain
// whose corpus has no backing data.
const noteDataUnavailable = "data unavailable"

// snapshot pairs a fitted ranker with the records it was built from.
// Immutable once published.
type snapshot struct {
	ranker  *index.Ranker
	records []domain.Record
}

// indexHandle is the lazily-built index for one domain. The handle is
// created cheaply; the snapshot is built under the handle's own lock
// so cold domains don't serialize behind each other.
type indexHandle struct {
	mu   sync.RWMutex
	snap *snapshot
}

// Engine executes domain searches. Safe for concurrent use.
type Engine struct {
	corpus CorpusProvider
	cache  ResultCache
	logger *zap.Logger

	maxResults      int
	phraseBoost     float64
	highThreshold   float64
	mediumThreshold float64

	mu      sync.Mutex
	handles map[string]*indexHandle
}

// New creates a search engine.
func New(corpus CorpusProvider, cache ResultCache, logger *zap.Logger) *Engine {
	return &Engine{
		corpus:          corpus,
		cache:           cache,
		logger:          logger,
		maxResults:      defaultMaxResults,
		phraseBoost:     index.DefaultPhraseBoost,
		highThreshold:   defaultHighThreshold,
		mediumThreshold: defaultMediumThreshold,
		handles:         make(map[string]*indexHandle),
	}
}

// WithTuning overrides the result limit, phrase boost, and relevance
// thresholds. Non-positive values keep the current setting.
func (e *Engine) WithTuning(maxResults int, phraseBoost, highThreshold, mediumThreshold float64) *Engine {
	if maxResults > 0 {
		e.maxResults = maxResults
	}
	if phraseBoost > 0 {
		e.phraseBoost = phraseBoost
	}
	if highThreshold > 0 {
		e.highThreshold = highThreshold
	}
	if mediumThreshold > 0 {
		e.mediumThreshold = mediumThreshold
	}
	return e
}

// Search ranks the domain's corpus against the query and returns the
// top maxResults positive-score hits. An empty domainName is resolved
// by the router. maxResults <= 0 uses the configured default. Unknown
// domains are the only error; an unprovisioned corpus and a query with
// no matches are both normal empty responses.
func (e *Engine) Search(
	ctx context.Context, domainName, query string, maxResults int, useCache bool,
) (domain.SearchResponse, error) {
	if domainName == "" {
		domainName = router.DetectDomain(query)
	}

	cfg, ok := domain.LookupDomain(domainName)
	if !ok {
		metrics.SearchRequestsTotal.WithLabelValues(domainName, "error").Inc()
		return domain.SearchResponse{}, fmt.Errorf("%w: %s", domain.ErrUnknownDomain, domainName)
	}

	if useCache {
		if resp, hit := e.cache.Get(ctx, domainName, query); hit {
			metrics.ResultCacheTotal.WithLabelValues("hit").Inc()
			metrics.SearchRequestsTotal.WithLabelValues(domainName, "ok").Inc()
			return resp, nil
		}
		metrics.ResultCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()

	snap, err := e.snapshotFor(cfg)
	if err != nil {
		if errors.Is(err, domain.ErrCorpusUnavailable) {
			metrics.SearchRequestsTotal.WithLabelValues(domainName, "empty").Inc()
			return domain.SearchResponse{
				Domain:  domainName,
				Query:   query,
				Count:   0,
				Results: []domain.ScoredResult{},
				Note:    noteDataUnavailable,
			}, nil
		}
		metrics.SearchRequestsTotal.WithLabelValues(domainName, "error").Inc()
		return domain.SearchResponse{}, err
	}

	if maxResults <= 0 {
		maxResults = e.maxResults
	}

	results := make([]domain.ScoredResult, 0, maxResults)
	for _, hit := range snap.ranker.Score(query) {
		if len(results) == maxResults {
			break
		}
		if hit.Score <= 0 {
			break // hits are sorted descending; nothing positive remains
		}
		results = append(results, domain.ScoredResult{
			Score:     roundScore(hit.Score),
			Relevance: domain.RelevanceForScore(hit.Score, e.highThreshold, e.mediumThreshold),
			Fields:    snap.records[hit.Doc].Project(cfg.OutputFields()),
		})
	}

	resp := domain.SearchResponse{
		Domain:  domainName,
		Query:   query,
		Count:   len(results),
		Results: results,
	}

	if useCache {
		e.cache.Put(ctx, domainName, query, resp)
	}

	status := "ok"
	if resp.Count == 0 {
		status = "empty"
	}
	metrics.SearchRequestsTotal.WithLabelValues(domainName, status).Inc()
	metrics.SearchDuration.WithLabelValues(domainName).Observe(time.Since(start).Seconds())

	return resp, nil
}

// snapshotFor returns the domain's index snapshot, building it on
// first use. Building holds only this domain's lock; a race between
// two cold callers can at worst build twice.
func (e *Engine) snapshotFor(cfg domain.Config) (*snapshot, error) {
	h := e.handle(cfg.Name())

	h.mu.RLock()
	snap := h.snap
	h.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.snap != nil {
		return h.snap, nil
	}

	records, err := e.corpus.Load(cfg.Name())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	docs := make([][]string, len(records))
	for i, rec := range records {
		docs[i] = index.Tokenize(rec.SearchText(cfg.SearchFields()))
	}
	snap = &snapshot{
		ranker:  index.Fit(docs).WithPhraseBoost(e.phraseBoost),
		records: records,
	}
	h.snap = snap

	metrics.IndexBuildsTotal.WithLabelValues(cfg.Name()).Inc()
	metrics.IndexBuildDuration.WithLabelValues(cfg.Name()).Observe(time.Since(start).Seconds())
	e.logger.Info("Built domain index",
		zap.String("domain", cfg.Name()),
		zap.Int("records", len(records)),
		zap.Duration("took", time.Since(start)),
	)
	return snap, nil
}

func (e *Engine) handle(domainName string) *indexHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.handles[domainName]
	if !ok {
		h = &indexHandle{}
		e.handles[domainName] = h
	}
	return h
}

// Invalidate drops the domain's index handle so the next search
// rebuilds from the provider's current records. Call after a corpus
// refresh; cached responses must be cleared separately.
func (e *Engine) Invalidate(domainName string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.handles, domainName)
}

// InvalidateAll drops every domain's index handle.
func (e *Engine) InvalidateAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handles = make(map[string]*indexHandle)
}

// ClearCache drops every cached response.
func (e *Engine) ClearCache(ctx context.Context) error {
	if err := e.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Domains returns the searchable domain names in table order.
func (e *Engine) Domains() []string {
	return domain.DomainNames()
}

// Stats describes the engine's current state.
type Stats struct {
	Domains          int      `json:"domains"`
	AvailableDomains []string `json:"available_domains"`
	BuiltIndexes     int      `json:"built_indexes"`
	CachedResults    int      `json:"cached_results"` // -1 when the cache backend cannot count
	CorpusDir        string   `json:"corpus_dir,omitempty"`
}

// Stats reports domain, index, and cache counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	built := 0
	for _, h := range e.handles {
		h.mu.RLock()
		if h.snap != nil {
			built++
		}
		h.mu.RUnlock()
	}
	e.mu.Unlock()

	cached := -1
	if sizer, ok := e.cache.(cacheSizer); ok {
		cached = sizer.Len()
	}
	dir := ""
	if dp, ok := e.corpus.(dirProvider); ok {
		dir = dp.Dir()
	}

	return Stats{
		Domains:          len(domain.Domains()),
		AvailableDomains: domain.DomainNames(),
		BuiltIndexes:     built,
		CachedResults:    cached,
		CorpusDir:        dir,
	}
}

// roundScore keeps response payloads stable across float formatting.
func roundScore(s float64) float64 {
	return math.Round(s*1000) / 1000
}
