package sdk

// SearchResult is one ranked hit. The domain's output fields are
// flattened next to "score" and "relevance", so the result is exposed
// as a map with typed accessors.
type SearchResult map[string]any

// Score returns the BM25 score of the hit.
func (r SearchResult) Score() float64 {
	f, _ := r["score"].(float64)
	return f
}

// Relevance returns the relevance tier ("high", "medium", "low").
func (r SearchResult) Relevance() string {
	s, _ := r["relevance"].(string)
	return s
}

// Field returns a projected output field by name.
func (r SearchResult) Field(name string) string {
	s, _ := r[name].(string)
	return s
}

// IsZero reports whether the result carries no data.
func (r SearchResult) IsZero() bool {
	return len(r) == 0
}

// SearchRequest describes one domain search.
type SearchRequest struct {
	// Domain to search; auto-detected from the query when empty.
	Domain string
	Query  string
	// Limit caps the number of results; the server default applies
	// when zero.
	Limit int
	// NoCache bypasses the server's result cache.
	NoCache bool
}

// SearchResponse is the result of one domain search.
type SearchResponse struct {
	Domain  string         `json:"domain"`
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
	Note    string         `json:"note,omitempty"`
}

// RecommendRequest describes the product a design system is composed for.
type RecommendRequest struct {
	ProductType string   `json:"product_type"`
	Industry    string   `json:"industry,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Platform    string   `json:"platform,omitempty"`
}

// AestheticDirection is a named design direction.
type AestheticDirection struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Differentiation string `json:"differentiation"`
}

// Stack is the implementation-stack hint for the target platform.
type Stack struct {
	DefaultFramework     string `json:"default_framework"`
	AlternativeFramework string `json:"alternative_framework"`
	Styling              string `json:"styling"`
	UILibrary            string `json:"ui_library"`
}

// Recommendation is a composed design system recommendation.
type Recommendation struct {
	Product      SearchResult       `json:"product"`
	Style        SearchResult       `json:"style"`
	Color        SearchResult       `json:"color"`
	Typography   SearchResult       `json:"typography"`
	Aesthetic    AestheticDirection `json:"aesthetic"`
	UXGuidelines []SearchResult     `json:"ux_guidelines"`
	Stack        Stack              `json:"stack"`
}

// Stats describes the server's engine state.
type Stats struct {
	Domains          int      `json:"domains"`
	AvailableDomains []string `json:"available_domains"`
	BuiltIndexes     int      `json:"built_indexes"`
	CachedResults    int      `json:"cached_results"`
	CorpusDir        string   `json:"corpus_dir,omitempty"`
}
