package http

import (
	"context"
	"net/http"
	"sort"
	"time"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(s.deps.Health))
	for n := range s.deps.Health {
		names = append(names, n)
	}
	sort.Strings(names)

	resp := healthResponse{Status: "ok", Checks: map[string]string{}}
	status := http.StatusOK
	for _, n := range names {
		if err := s.deps.Health[n](ctx); err != nil {
			s.logger.Warn(ctx, "health check failed", "check", n, "error", err)
			resp.Checks[n] = err.Error()
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[n] = "ok"
	}

	writeJSON(w, status, resp)
}
