package recommend

import (
	"context"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// Searcher runs one domain search. The composer passes maxResults=0 to
// accept the searcher's configured default.
type Searcher interface {
	Search(ctx context.Context, domainName, query string, maxResults int, useCache bool) (domain.SearchResponse, error)
}

// AestheticGenerator produces one design direction per call.
type AestheticGenerator interface {
	Generate(ctx context.Context) (domain.AestheticDirection, error)
}
