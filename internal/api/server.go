package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mohinik7/Metro-Route-Optimization/internal/cache"
	"github.com/mohinik7/Metro-Route-Optimization/internal/planner"
	"github.com/mohinik7/Metro-Route-Optimization/internal/session"
)

type Options struct {
	CORSOrigins   []string
	RouteCacheCap int
}

type Server struct {
	Mux      chi.Router
	Planner  *planner.Planner
	RC       *cache.RouteCache
	Sessions *session.Store
}

func New(p *planner.Planner, opts Options) *Server {
	s := &Server{
		Mux:      chi.NewRouter(),
		Planner:  p,
		RC:       cache.NewRouteCache(opts.RouteCacheCap),
		Sessions: session.NewStore(),
	}

	s.Mux.Use(middleware.RequestID)
	s.Mux.Use(middleware.Logger)
	s.Mux.Use(middleware.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		s.Mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	s.Mux.Get("/stations", s.handleStations)
	s.Mux.Get("/route", s.handleRoute)
	s.Mux.Get("/alternatives", s.handleAlternatives)

	s.Mux.Post("/passengers", s.handleCreatePassenger)
	s.Mux.Route("/passengers/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetPassenger)
		r.Post("/bill", s.handleBill)
		r.Post("/transfer", s.handleTransfer)
		r.Post("/change", s.handleChange)
	})

	s.Mux.Get("/debug/clear_cache", func(w http.ResponseWriter, _ *http.Request) {
		s.RC.BumpEpoch()
		s.RC.Clear()
		w.Write([]byte("cleared"))
	})
	s.Mux.Get("/debug/routecache_stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.RC.Stats())
	})
}

type ErrorResponse struct {
	Error    string   `json:"error"`
	Stations []string `json:"stations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps planner and session errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var se *planner.StationError
	switch {
	case errors.As(err, &se):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Stations: se.Names})
	case errors.Is(err, planner.ErrMidwayOffRoute):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}
