// Package server exposes the simulator over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/pricing"
	"github.com/xtding233/skyblock-rng/internal/service"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 64 << 10

type errResp struct {
	Err string `json:"err"`
}

// Server handles HTTP requests.
type Server struct {
	svc     *service.Service
	metrics *Metrics
	logger  *log.Logger
}

// New creates a Server. metrics may be nil, which disables /metrics.
func New(svc *service.Service, metrics *Metrics, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{svc: svc, metrics: metrics, logger: logger}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/drops", s.handleDrops)
	r.Post("/simulate", s.handleSimulate)
	r.Get("/skull/plan", s.handleSkullPlan)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDrops(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.Drops(r.Context())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req service.SimulateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Err: "invalid body: " + err.Error()})
		return
	}

	resp, err := s.svc.Simulate(r.Context(), req)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSkullPlan(w http.ResponseWriter, r *http.Request) {
	current, msg := parseInt(r, "current")
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, errResp{Err: msg})
		return
	}
	target, msg := parseInt(r, "target")
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, errResp{Err: msg})
		return
	}

	resp, err := s.svc.PlanSkull(r.Context(), current, target)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseInt(r *http.Request, key string) (int, string) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, "missing param " + key
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, "invalid " + key
	}
	return n, ""
}

// writeErr maps service errors to status codes.
func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case service.IsClientError(err):
		status = http.StatusBadRequest
	case errors.Is(err, catalog.ErrUnknownDrop), errors.Is(err, pricing.ErrNoListings):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoPriceSource):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	writeJSON(w, status, errResp{Err: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
