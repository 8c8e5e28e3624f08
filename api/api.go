package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/hupe1980/aerodex"
)

// Server exposes the lookup engine over HTTP.
//
// Routes:
//
//	GET /airports         — paginated listing in load order
//	GET /airports/search  — paginated case-insensitive substring search
//	GET /healthz          — liveness and record count
//	GET /metrics          — Prometheus metrics (when enabled)
//
// Both data endpoints accept optional offset and limit query parameters.
// Numeric parameters are clamped, never rejected; only the presence of q
// on the search endpoint is enforced.
type Server struct {
	lk      *aerodex.Lookup
	handler http.Handler
}

// New creates a Server for the given Lookup.
func New(lk *aerodex.Lookup, optFns ...Option) *Server {
	o := applyOptions(optFns)

	s := &Server{lk: lk}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /airports", s.handleList)
	mux.HandleFunc("GET /airports/search", s.handleSearch)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	if o.registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{}))
	}

	var h http.Handler = mux
	if o.registry != nil {
		h = instrumentHTTP(o.registry, h)
	}
	if o.rateLimit > 0 {
		h = rateLimitHandler(rate.NewLimiter(o.rateLimit, o.rateBurst), h)
	}
	if o.gzip {
		h = gzhttp.GzipHandler(h)
	}
	h = requestLogger(o.logger, h)

	s.handler = h
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page := s.lk.List(queryInt(r, "offset"), queryInt(r, "limit"))
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("q") {
		writeError(w, http.StatusBadRequest, "missing required query parameter: q")
		return
	}

	page, err := s.lk.Search(r.URL.Query().Get("q")).
		Window(queryInt(r, "offset"), queryInt(r, "limit")).
		Execute(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": s.lk.Len(),
	})
}

// queryInt parses an unsigned numeric query parameter. Absent or
// unparsable values mean "not provided": pagination inputs are clamped
// downstream, never rejected here.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	n := int(v)
	return &n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
