package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/domain"
	"github.com/kailas-cloud/designdex/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/designdex/internal/usecase/search"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest    = "bad_request"
	codeUnknownDomain = "unknown_domain"
	codeProviderError = "aesthetic_provider_error"
	codeInternalError = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SearchService is the search engine surface the transport consumes.
type SearchService interface {
	Search(ctx context.Context, domainName, query string, maxResults int, useCache bool) (domain.SearchResponse, error)
	Domains() []string
	Stats() searchuc.Stats
	Invalidate(domainName string)
	ClearCache(ctx context.Context) error
}

// Recommender composes design system recommendations.
type Recommender interface {
	Recommend(ctx context.Context, in recommend.Input) domain.Recommendation
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API server.
type Server struct {
	search        SearchService
	recommender   Recommender
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search SearchService, recommender Recommender, logger *zap.Logger) *Server {
	s := &Server{
		search:      search,
		recommender: recommender,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrUnknownDomain, http.StatusNotFound, codeUnknownDomain),
		sentinelHandler(domain.ErrAestheticProviderError, http.StatusBadGateway, codeProviderError),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/v1/search", s.handleSearch)
	r.Post("/v1/recommend", s.handleRecommend)
	r.Get("/v1/domains", s.handleDomains)
	r.Post("/v1/domains/{domain}/invalidate", s.handleInvalidate)
	r.Get("/v1/stats", s.handleStats)
	r.Delete("/v1/cache", s.handleClearCache)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// handleSearch handles GET /v1/search?domain=&q=&limit=&no_cache=.
// An omitted domain is auto-detected from the query text.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	useCache := true
	if raw := q.Get("no_cache"); raw != "" {
		noCache, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "no_cache must be a boolean")
			return
		}
		useCache = !noCache
	}

	resp, err := s.search.Search(r.Context(), q.Get("domain"), q.Get("q"), limit, useCache)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleRecommend handles POST /v1/recommend.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var in recommend.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if in.ProductType == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "product_type is required")
		return
	}

	writeJSON(w, http.StatusOK, s.recommender.Recommend(r.Context(), in))
}

// handleDomains handles GET /v1/domains.
func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	names := s.search.Domains()
	writeJSON(w, http.StatusOK, map[string]any{
		"domains": names,
		"count":   len(names),
	})
}

// handleInvalidate handles POST /v1/domains/{domain}/invalidate. The
// result cache is cleared as a whole: cached responses carry no
// per-domain index version, so a stale entry for the refreshed domain
// cannot be told apart from a live one.
func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	domainName := chi.URLParam(r, "domain")
	if _, ok := domain.LookupDomain(domainName); !ok {
		writeError(w, http.StatusNotFound, codeUnknownDomain, domain.ErrUnknownDomain.Error())
		return
	}

	s.search.Invalidate(domainName)
	if err := s.search.ClearCache(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleStats handles GET /v1/stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.search.Stats())
}

// handleClearCache handles DELETE /v1/cache.
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.search.ClearCache(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrUnknownDomain,
		domain.ErrAestheticProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
