package domain

import (
	"encoding/json"
	"fmt"
)

// Relevance is a coarse tier derived from a BM25 score.
type Relevance string

// Relevance tiers.
const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

// RelevanceForScore maps a score onto a tier using the configured
// thresholds. The thresholds are tuning knobs, not invariants.
func RelevanceForScore(score, high, medium float64) Relevance {
	switch {
	case score > high:
		return RelevanceHigh
	case score > medium:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}

// ScoredResult is one ranked hit: the score, its relevance tier, and
// the record projected onto the domain's output fields. On the wire the
// output fields are flattened next to score and relevance, matching the
// response shape consumers expect.
type ScoredResult struct {
	Score     float64
	Relevance Relevance
	Fields    Record
}

// IsZero reports whether the result carries no data. A zero result
// serializes as an empty JSON object.
func (r ScoredResult) IsZero() bool {
	return r.Score == 0 && r.Relevance == "" && len(r.Fields) == 0
}

// MarshalJSON flattens the projected fields next to score and relevance.
func (r ScoredResult) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("{}"), nil
	}
	flat := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		flat[k] = v
	}
	flat["score"] = r.Score
	flat["relevance"] = string(r.Relevance)
	return json.Marshal(flat)
}

// UnmarshalJSON reverses MarshalJSON. Needed for cache round-trips.
func (r *ScoredResult) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("unmarshal scored result: %w", err)
	}
	*r = ScoredResult{}
	if len(flat) == 0 {
		return nil
	}
	r.Fields = make(Record, len(flat))
	for k, v := range flat {
		switch k {
		case "score":
			if f, ok := v.(float64); ok {
				r.Score = f
			}
		case "relevance":
			if s, ok := v.(string); ok {
				r.Relevance = Relevance(s)
			}
		default:
			if s, ok := v.(string); ok {
				r.Fields[k] = s
			}
		}
	}
	if len(r.Fields) == 0 {
		r.Fields = nil
	}
	return nil
}

// SearchResponse is the result of one domain search. It is the unit
// stored in the result cache and must not be mutated after creation.
type SearchResponse struct {
	Domain  string         `json:"domain"`
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []ScoredResult `json:"results"`
	Note    string         `json:"note,omitempty"`
}
