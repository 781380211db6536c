// Package server exposes dispatcher health, metrics and error classification
// over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/rpcerr"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/transport"
)

// SystemStatus represents the overall health state of the process.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusDegraded SystemStatus = "degraded"
	StatusCritical SystemStatus = "critical"
)

// StatsSource reports dispatcher activity.
type StatsSource interface {
	Stats() rpc.Stats
}

// CheckFunc probes a dependency such as a description store.
type CheckFunc func(ctx context.Context) error

// Report is the detailed health response.
type Report struct {
	Status       SystemStatus      `json:"status"`
	Links        []transport.Stats `json:"links"`
	Queued       map[string]int    `json:"queued"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Classification is the /classify response.
type Classification struct {
	Kind        string `json:"kind"`
	Code        int    `json:"code"`
	Identifier  string `json:"identifier"`
	Method      string `json:"method"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
	WaitSeconds int64  `json:"wait_seconds,omitempty"`
	Datacenter  int    `json:"datacenter,omitempty"`
	GRPCCode    string `json:"grpc_code"`
}

// Server provides HTTP endpoints for health monitoring and classification.
type Server struct {
	stats      StatsSource
	classifier rpc.Classifier
	checks     map[string]CheckFunc
	server     *http.Server
}

// New creates a new server. stats may be nil when no dispatcher runs.
func New(stats StatsSource, classifier rpc.Classifier, checks map[string]CheckFunc, port int) *Server {
	mux := http.NewServeMux()
	s := &Server{
		stats:      stats,
		classifier: classifier,
		checks:     checks,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /health/detailed", s.handleDetailed)
	mux.HandleFunc("GET /classify", s.handleClassify)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Handler returns the routing handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) report(ctx context.Context) Report {
	r := Report{Status: StatusHealthy, Queued: map[string]int{}}
	if s.stats != nil {
		st := s.stats.Stats()
		r.Links, r.Queued = st.Links, st.Queued
	}

	// Aggregate status (worst case wins)
	for _, link := range r.Links {
		if link.Status != transport.StatusHealthy {
			r.Status = StatusDegraded
		}
	}
	if len(s.checks) > 0 {
		r.Dependencies = make(map[string]string, len(s.checks))
		for name, check := range s.checks {
			if err := check(ctx); err != nil {
				r.Dependencies[name] = err.Error()
				r.Status = StatusCritical
				continue
			}
			r.Dependencies[name] = "ok"
		}
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.report(r.Context())
	code := http.StatusOK
	if report.Status == StatusCritical {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]string{"status": string(report.Status)})
}

func (s *Server) handleDetailed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.report(r.Context()))
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := domain.RawError{Identifier: q.Get("error"), Method: q.Get("method")}
	if raw.Identifier == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing error parameter"})
		return
	}
	if c := q.Get("code"); c != "" {
		code, err := strconv.Atoi(c)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid code parameter"})
			return
		}
		raw.Code = code
	}

	writeJSON(w, http.StatusOK, Describe(s.classifier.Classify(r.Context(), raw)))
}

// Describe flattens a classified error for display.
func Describe(e *rpcerr.Error) Classification {
	c := Classification{
		Kind:        e.Kind.String(),
		Code:        e.Code,
		Identifier:  e.Identifier,
		Method:      e.Method,
		Description: e.Description,
		WaitSeconds: int64(e.Wait / time.Second),
		Datacenter:  int(e.Datacenter),
		GRPCCode:    e.GRPCStatus().Code().String(),
	}
	if v, ok := e.Named(); ok {
		c.Variant = string(v)
	}
	return c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
