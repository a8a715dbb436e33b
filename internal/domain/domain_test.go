package domain

import (
	"encoding/json"
	"testing"
)

func TestLookupDomain(t *testing.T) {
	cfg, ok := LookupDomain("color")
	if !ok {
		t.Fatal("color should be a known domain")
	}
	if cfg.Name() != "color" || cfg.File() != "colors.yaml" {
		t.Errorf("unexpected config: name=%q file=%q", cfg.Name(), cfg.File())
	}

	if _, ok := LookupDomain("sound"); ok {
		t.Error("sound should not be a known domain")
	}
}

func TestDomainNamesOrder(t *testing.T) {
	names := DomainNames()
	if len(names) != 10 {
		t.Fatalf("expected 10 domains, got %d", len(names))
	}
	// Declaration order is the router's tie-break order.
	if names[0] != "color" {
		t.Errorf("expected color first, got %q", names[0])
	}
	if names[len(names)-1] != "stack" {
		t.Errorf("expected stack last, got %q", names[len(names)-1])
	}
}

func TestRelevanceForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Relevance
	}{
		{3.1, RelevanceHigh},
		{2.0, RelevanceMedium}, // thresholds are strict
		{1.5, RelevanceMedium},
		{1.0, RelevanceLow},
		{0.2, RelevanceLow},
	}
	for _, tt := range tests {
		if got := RelevanceForScore(tt.score, 2.0, 1.0); got != tt.want {
			t.Errorf("RelevanceForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoredResultJSONFlattens(t *testing.T) {
	r := ScoredResult{
		Score:     2.847,
		Relevance: RelevanceHigh,
		Fields:    Record{"name": "Midnight Ocean", "primary": "#1B264F"},
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("Unmarshal flat: %v", err)
	}
	if flat["name"] != "Midnight Ocean" || flat["primary"] != "#1B264F" {
		t.Errorf("output fields not flattened: %v", flat)
	}
	if flat["score"] != 2.847 || flat["relevance"] != "high" {
		t.Errorf("score/relevance missing: %v", flat)
	}
	if _, ok := flat["fields"]; ok {
		t.Error("nested fields key must not appear on the wire")
	}
}

func TestScoredResultJSONZero(t *testing.T) {
	data, err := json.Marshal(ScoredResult{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("zero result = %s, want {}", data)
	}
}

func TestScoredResultJSONRoundTrip(t *testing.T) {
	orig := ScoredResult{
		Score:     1.234,
		Relevance: RelevanceMedium,
		Fields:    Record{"name": "Forest Green"},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back ScoredResult
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if back.Score != orig.Score || back.Relevance != orig.Relevance {
		t.Errorf("round trip lost score/relevance: %+v", back)
	}
	if back.Fields["name"] != "Forest Green" {
		t.Errorf("round trip lost fields: %+v", back.Fields)
	}
}

func TestRecordProject(t *testing.T) {
	rec := Record{"name": "Minimal Swiss", "keywords": "minimal grid", "internal": "x"}

	out := rec.Project([]string{"name", "keywords", "missing"})
	if len(out) != 2 {
		t.Fatalf("expected 2 projected fields, got %d", len(out))
	}
	if _, ok := out["internal"]; ok {
		t.Error("unlisted field leaked through projection")
	}
	if _, ok := out["missing"]; ok {
		t.Error("absent field must be skipped, not emptied")
	}
}

func TestRecordSearchText(t *testing.T) {
	rec := Record{"name": "Minimal Swiss", "mood": "calm"}

	got := rec.SearchText([]string{"name", "mood"})
	if got != "Minimal Swiss calm" {
		t.Errorf("SearchText = %q", got)
	}
}
