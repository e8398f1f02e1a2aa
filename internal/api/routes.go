package api

import (
	"net/http"

	"github.com/mohinik7/Metro-Route-Optimization/internal/algo"
	"github.com/mohinik7/Metro-Route-Optimization/internal/cache"
	"github.com/mohinik7/Metro-Route-Optimization/internal/fare"
	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
	"github.com/mohinik7/Metro-Route-Optimization/internal/planner"
)

func (s *Server) handleStations(w http.ResponseWriter, _ *http.Request) {
	stations := s.Planner.Net.Stations()
	writeJSON(w, http.StatusOK, map[string]any{
		"stations": stations,
		"count":    len(stations),
	})
}

// resolvePair returns the ids for from and to, or writes the planner's
// station error and reports false.
func (s *Server) resolvePair(w http.ResponseWriter, from, to string) (int, int, bool) {
	src, okS := s.Planner.Net.ID(from)
	dst, okD := s.Planner.Net.ID(to)
	if okS && okD {
		return src, dst, true
	}

	var bad []string
	if !okS {
		bad = append(bad, from)
	}
	if !okD {
		bad = append(bad, to)
	}
	writeError(w, &planner.StationError{Names: bad})
	return 0, 0, false
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	src, dst, ok := s.resolvePair(w, from, to)
	if !ok {
		return
	}

	key := s.RC.Key(src, dst, cache.AlgoDijkstra)
	if v, ok := s.RC.Get(key); ok && len(v) == 1 {
		total, _ := algo.Weight(s.Planner.Net, v[0])
		resp := routeResponse(planner.Route{
			Found:    true,
			Path:     v[0],
			Stations: s.Planner.Net.Names(v[0]),
			Total:    total,
		})
		resp.CacheHit = true
		writeJSON(w, http.StatusOK, resp)
		return
	}

	route, err := s.Planner.Route(from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	if route.Found {
		s.RC.Put(key, []model.Path{route.Path})
	}
	writeJSON(w, http.StatusOK, routeResponse(route))
}

func (s *Server) handleAlternatives(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	src, dst, ok := s.resolvePair(w, from, to)
	if !ok {
		return
	}

	key := s.RC.Key(src, dst, cache.AlgoAllPaths)
	if v, ok := s.RC.Get(key); ok {
		resp := s.alternativesFromPaths(v)
		resp.CacheHit = true
		writeJSON(w, http.StatusOK, resp)
		return
	}

	alts, err := s.Planner.Alternatives(from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	paths := make([]model.Path, len(alts))
	for i, a := range alts {
		paths[i] = a.Path
	}
	s.RC.Put(key, paths)

	writeJSON(w, http.StatusOK, alternativesResponse(alts))
}

func (s *Server) alternativesFromPaths(paths []model.Path) model.AlternativesResponse {
	alts := make([]planner.Alternative, len(paths))
	for i, p := range paths {
		alts[i] = planner.Alternative{
			Index:    i + 1,
			Path:     p,
			Stations: s.Planner.Net.Names(p),
			Price:    fare.Listing(p),
		}
	}
	return alternativesResponse(alts)
}

func routeResponse(r planner.Route) model.RouteResponse {
	resp := model.RouteResponse{
		Found:         r.Found,
		Path:          r.Path,
		Stations:      r.Stations,
		Total:         r.Total,
		ExploredNodes: r.Explored,
	}
	if r.Found {
		resp.Route = r.String()
	}
	return resp
}

func alternativesResponse(alts []planner.Alternative) model.AlternativesResponse {
	resp := model.AlternativesResponse{
		Routes: make([]model.AlternativeRoute, len(alts)),
		Count:  len(alts),
	}
	for i, a := range alts {
		resp.Routes[i] = model.AlternativeRoute{
			Index:    a.Index,
			Path:     a.Path,
			Stations: a.Stations,
			Route:    planner.Render(a.Stations),
			Price:    a.Price,
		}
	}
	return resp
}
