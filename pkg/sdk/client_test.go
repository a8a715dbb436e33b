package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("domain") != "color" || q.Get("q") != "calm corporate" || q.Get("limit") != "3" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"domain": "color",
			"query":  "calm corporate",
			"count":  1,
			"results": []map[string]any{
				{"name": "Midnight Ocean", "score": 2.847, "relevance": "high"},
			},
		})
	}))
	defer server.Close()

	client := New(server.URL, WithAPIKey("secret"))
	resp, err := client.Search(context.Background(), SearchRequest{
		Domain: "color",
		Query:  "calm corporate",
		Limit:  3,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if resp.Count != 1 {
		t.Fatalf("count = %d", resp.Count)
	}
	got := resp.Results[0]
	if got.Field("name") != "Midnight Ocean" {
		t.Errorf("name = %q", got.Field("name"))
	}
	if got.Score() != 2.847 {
		t.Errorf("score = %f", got.Score())
	}
	if got.Relevance() != "high" {
		t.Errorf("relevance = %q", got.Relevance())
	}
}

func TestClient_Search_NoCacheParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("no_cache") != "true" {
			t.Errorf("no_cache param missing: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"count": 0, "results": []any{}})
	}))
	defer server.Close()

	_, err := New(server.URL).Search(context.Background(), SearchRequest{Query: "x", NoCache: true})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
}

func TestClient_Search_UnknownDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "unknown_domain",
			"message": "unknown domain",
		})
	}))
	defer server.Close()

	_, err := New(server.URL).Search(context.Background(), SearchRequest{Domain: "poetry", Query: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("expected ErrUnknownDomain, got %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Errorf("expected APIError with 404, got %v", err)
	}
}

func TestClient_Recommend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/recommend" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}

		var req RecommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ProductType != "SaaS" || req.Platform != "mobile" {
			t.Errorf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"product":       map[string]any{"name": "Admin Dashboard", "score": 1.2, "relevance": "medium"},
			"style":         map[string]any{},
			"color":         map[string]any{},
			"typography":    map[string]any{},
			"aesthetic":     map[string]string{"name": "cyberpunk", "description": "d", "differentiation": "x"},
			"ux_guidelines": []any{},
			"stack": map[string]string{
				"default_framework":     "react-native",
				"alternative_framework": "flutter",
				"styling":               "styled-components",
				"ui_library":            "react-native-paper",
			},
		})
	}))
	defer server.Close()

	rec, err := New(server.URL).Recommend(context.Background(), RecommendRequest{
		ProductType: "SaaS",
		Platform:    "mobile",
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if rec.Product.Field("name") != "Admin Dashboard" {
		t.Errorf("product = %v", rec.Product)
	}
	if !rec.Style.IsZero() {
		t.Errorf("style should be zero, got %v", rec.Style)
	}
	if rec.Aesthetic.Name != "cyberpunk" {
		t.Errorf("aesthetic = %+v", rec.Aesthetic)
	}
	if rec.Stack.DefaultFramework != "react-native" {
		t.Errorf("stack = %+v", rec.Stack)
	}
}

func TestClient_Domains(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"domains": []string{"color", "typography"},
			"count":   2,
		})
	}))
	defer server.Close()

	domains, err := New(server.URL).Domains(context.Background())
	if err != nil {
		t.Fatalf("Domains failed: %v", err)
	}
	if len(domains) != 2 || domains[0] != "color" {
		t.Errorf("domains = %v", domains)
	}
}

func TestClient_ClearCacheAndInvalidate(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)
	if err := client.ClearCache(context.Background()); err != nil {
		t.Fatalf("ClearCache failed: %v", err)
	}
	if err := client.InvalidateDomain(context.Background(), "color"); err != nil {
		t.Fatalf("InvalidateDomain failed: %v", err)
	}

	want := []string{"DELETE /v1/cache", "POST /v1/domains/color/invalidate"}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, calls[i], w)
		}
	}
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "bad_request", "message": "invalid api key"})
	}))
	defer server.Close()

	err := New(server.URL, WithAPIKey("wrong")).Ping(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}
