package search

import (
	"context"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// CorpusProvider supplies the ordered record set for a domain. The
// engine only reads records; a missing corpus is reported as
// domain.ErrCorpusUnavailable.
type CorpusProvider interface {
	Load(domainName string) ([]domain.Record, error)
}

// ResultCache memoizes (domain, raw query) → SearchResponse. A cached
// response is returned verbatim and must never be partially visible to
// concurrent readers. Clear is the only invalidation path.
type ResultCache interface {
	Get(ctx context.Context, domainName, query string) (domain.SearchResponse, bool)
	Put(ctx context.Context, domainName, query string, resp domain.SearchResponse)
	Clear(ctx context.Context) error
}

// cacheSizer is an optional cache capability used for statistics.
type cacheSizer interface {
	Len() int
}

// dirProvider is an optional corpus capability used for statistics.
type dirProvider interface {
	Dir() string
}
