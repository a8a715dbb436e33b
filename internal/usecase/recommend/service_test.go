package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/domain"
)

type searchCall struct {
	domain string
	query  string
}

type mockSearcher struct {
	mu        sync.Mutex
	calls     []searchCall
	responses map[string]domain.SearchResponse // keyed by domain
	err       error
}

func (m *mockSearcher) Search(
	_ context.Context, domainName, query string, _ int, _ bool,
) (domain.SearchResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, searchCall{domain: domainName, query: query})
	m.mu.Unlock()
	if m.err != nil {
		return domain.SearchResponse{}, m.err
	}
	return m.responses[domainName], nil
}

func (m *mockSearcher) queryFor(t *testing.T, domainName string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.calls {
		if c.domain == domainName {
			return c.query
		}
	}
	t.Fatalf("no search issued for domain %q", domainName)
	return ""
}

type mockAesthetic struct {
	dir domain.AestheticDirection
	err error
}

func (m *mockAesthetic) Generate(_ context.Context) (domain.AestheticDirection, error) {
	return m.dir, m.err
}

func hit(name string, score float64) domain.ScoredResult {
	return domain.ScoredResult{
		Score:     score,
		Relevance: domain.RelevanceHigh,
		Fields:    domain.Record{"name": name},
	}
}

func respWith(d string, results ...domain.ScoredResult) domain.SearchResponse {
	return domain.SearchResponse{Domain: d, Count: len(results), Results: results}
}

func TestRecommend_MergesAllFacets(t *testing.T) {
	searcher := &mockSearcher{responses: map[string]domain.SearchResponse{
		"product":    respWith("product", hit("SaaS Dashboard", 3.2), hit("Admin Panel", 1.1)),
		"style":      respWith("style", hit("Minimal", 2.8)),
		"color":      respWith("color", hit("Midnight Ocean", 2.1)),
		"typography": respWith("typography", hit("Geometric Sans", 1.9)),
		"ux":         respWith("ux", hit("Progressive disclosure", 2.4), hit("Empty states", 1.2)),
	}}
	gen := &mockAesthetic{dir: domain.AestheticDirection{
		Name:            "brutalist_minimal",
		Description:     "Raw minimalism",
		Differentiation: "Heavy type",
	}}

	rec := New(searcher, gen, zap.NewNop()).Recommend(context.Background(), Input{
		ProductType: "SaaS",
		Industry:    "Fintech",
		Keywords:    []string{"minimal", "calm", "trustworthy", "ignored"},
		Platform:    "web",
	})

	if got := rec.Product.Fields.Get("name"); got != "SaaS Dashboard" {
		t.Errorf("product facet should be the first hit, got %q", got)
	}
	if got := rec.Style.Fields.Get("name"); got != "Minimal" {
		t.Errorf("unexpected style facet %q", got)
	}
	if got := rec.Color.Fields.Get("name"); got != "Midnight Ocean" {
		t.Errorf("unexpected color facet %q", got)
	}
	if len(rec.UXGuidelines) != 2 {
		t.Errorf("ux guidelines keep the full result list, got %d", len(rec.UXGuidelines))
	}
	if rec.Aesthetic.Name != "brutalist_minimal" {
		t.Errorf("unexpected aesthetic %q", rec.Aesthetic.Name)
	}
	if rec.Stack.DefaultFramework != "nextjs" {
		t.Errorf("unexpected web stack %+v", rec.Stack)
	}
}

func TestRecommend_QueryShapes(t *testing.T) {
	searcher := &mockSearcher{responses: map[string]domain.SearchResponse{}}
	gen := &mockAesthetic{}

	New(searcher, gen, zap.NewNop()).Recommend(context.Background(), Input{
		ProductType: "Portfolio",
		Industry:    "Education",
		Keywords:    []string{"playful", "bright", "bold", "extra"},
		Platform:    "web",
	})

	if got := searcher.queryFor(t, "product"); got != "Portfolio Education" {
		t.Errorf("product query = %q", got)
	}
	if got := searcher.queryFor(t, "color"); got != "Education Portfolio" {
		t.Errorf("color query = %q", got)
	}
	// Style and typography share the first three keywords.
	want := "playful bright bold"
	if got := searcher.queryFor(t, "style"); got != want {
		t.Errorf("style query = %q, want %q", got, want)
	}
	if got := searcher.queryFor(t, "typography"); got != want {
		t.Errorf("typography query = %q, want %q", got, want)
	}
	if got := searcher.queryFor(t, "ux"); got != "Portfolio best practices" {
		t.Errorf("ux query = %q", got)
	}
}

func TestRecommend_EmptyFacetsStayEmpty(t *testing.T) {
	searcher := &mockSearcher{responses: map[string]domain.SearchResponse{}}
	gen := &mockAesthetic{}

	rec := New(searcher, gen, zap.NewNop()).Recommend(context.Background(), Input{
		ProductType: "SaaS",
		Industry:    "Gaming",
	})

	if !rec.Product.IsZero() || !rec.Style.IsZero() || !rec.Color.IsZero() || !rec.Typography.IsZero() {
		t.Errorf("facets without hits must stay zero: %+v", rec)
	}
	if rec.UXGuidelines == nil || len(rec.UXGuidelines) != 0 {
		t.Errorf("ux guidelines should be an empty list, got %#v", rec.UXGuidelines)
	}
}

func TestRecommend_NeverFailsOutright(t *testing.T) {
	searcher := &mockSearcher{err: errors.New("corpus exploded")}
	gen := &mockAesthetic{err: errors.New("provider down")}

	rec := New(searcher, gen, zap.NewNop()).Recommend(context.Background(), Input{
		ProductType: "Dashboard",
		Industry:    "Healthcare",
		Platform:    "desktop",
	})

	if !rec.Product.IsZero() {
		t.Errorf("failed facet must be empty, got %+v", rec.Product)
	}
	if rec.Aesthetic != (domain.AestheticDirection{}) {
		t.Errorf("failed aesthetic must be empty, got %+v", rec.Aesthetic)
	}
	if rec.Stack.DefaultFramework != "electron" {
		t.Errorf("stack lookup must still run, got %+v", rec.Stack)
	}
}

func TestStackFor(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"web", "nextjs"},
		{"mobile", "react-native"},
		{"desktop", "electron"},
		{"watch", "nextjs"}, // unknown platforms fall back to web
		{"", "nextjs"},
	}
	for _, tc := range tests {
		if got := StackFor(tc.platform).DefaultFramework; got != tc.want {
			t.Errorf("StackFor(%q).DefaultFramework = %q, want %q", tc.platform, got, tc.want)
		}
	}
}

func TestRecommend_FewerThanThreeKeywords(t *testing.T) {
	searcher := &mockSearcher{responses: map[string]domain.SearchResponse{}}
	New(searcher, &mockAesthetic{}, zap.NewNop()).Recommend(context.Background(), Input{
		ProductType: "Blog",
		Industry:    "Media",
		Keywords:    []string{"clean"},
	})

	if got := searcher.queryFor(t, "style"); got != "clean" {
		t.Errorf("style query = %q, want %q", got, "clean")
	}
}
