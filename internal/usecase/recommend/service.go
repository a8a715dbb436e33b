// Package recommend composes several domain searches, one aesthetic
// generator call, and a platform stack lookup into a single design
// system recommendation.
package recommend

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// Input describes the product being designed.
type Input struct {
	ProductType string   `json:"product_type"`
	Industry    string   `json:"industry"`
	Keywords    []string `json:"keywords"`
	Platform    string   `json:"platform"`
}

// Composer assembles recommendations. Safe for concurrent use.
type Composer struct {
	searcher  Searcher
	aesthetic AestheticGenerator
	logger    *zap.Logger
}

// New creates a composer.
func New(searcher Searcher, aesthetic AestheticGenerator, logger *zap.Logger) *Composer {
	return &Composer{searcher: searcher, aesthetic: aesthetic, logger: logger}
}

// Recommend runs five domain searches and one aesthetic call, all
// concurrently, and merges the first hit of each facet search plus the
// full UX guideline list into one Recommendation. A facet whose search
// returns nothing stays empty; Recommend itself never fails.
func (c *Composer) Recommend(ctx context.Context, in Input) domain.Recommendation {
	styleQuery := strings.Join(headKeywords(in.Keywords, 3), " ")

	var (
		wg        sync.WaitGroup
		product   domain.ScoredResult
		style     domain.ScoredResult
		color     domain.ScoredResult
		typog     domain.ScoredResult
		ux        []domain.ScoredResult
		direction domain.AestheticDirection
	)

	facet := func(domainName, query string, dst *domain.ScoredResult) {
		defer wg.Done()
		*dst = c.firstHit(ctx, domainName, query)
	}

	wg.Add(6)
	go facet("product", in.ProductType+" "+in.Industry, &product)
	go facet("style", styleQuery, &style)
	go facet("color", in.Industry+" "+in.ProductType, &color)
	go facet("typography", styleQuery, &typog)
	go func() {
		defer wg.Done()
		resp, err := c.searcher.Search(ctx, "ux", in.ProductType+" best practices", 0, true)
		if err != nil {
			c.logger.Warn("UX guideline search failed", zap.Error(err))
			return
		}
		ux = resp.Results
	}()
	go func() {
		defer wg.Done()
		dir, err := c.aesthetic.Generate(ctx)
		if err != nil {
			c.logger.Warn("Aesthetic generation failed", zap.Error(err))
			return
		}
		direction = dir
	}()
	wg.Wait()

	if ux == nil {
		ux = []domain.ScoredResult{}
	}

	return domain.Recommendation{
		Product:      product,
		Style:        style,
		Color:        color,
		Typography:   typog,
		Aesthetic:    direction,
		UXGuidelines: ux,
		Stack:        StackFor(in.Platform),
	}
}

// firstHit returns the top result of a domain search, or a zero result
// when the search errs or matches nothing.
func (c *Composer) firstHit(ctx context.Context, domainName, query string) domain.ScoredResult {
	resp, err := c.searcher.Search(ctx, domainName, query, 0, true)
	if err != nil {
		c.logger.Warn("Facet search failed",
			zap.String("domain", domainName),
			zap.String("query", query),
			zap.Error(err),
		)
		return domain.ScoredResult{}
	}
	if len(resp.Results) == 0 {
		return domain.ScoredResult{}
	}
	return resp.Results[0]
}

func headKeywords(keywords []string, n int) []string {
	if len(keywords) > n {
		return keywords[:n]
	}
	return keywords
}
