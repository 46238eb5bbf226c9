package server

import (
	"net/http"
)

// Health verifica as dependências de leitura (Postgres e Redis).
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.readPool.Ping(r.Context()); err != nil {
		s.logger.Error("Health check failed: postgres unreachable", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "postgres": err.Error()})
		return
	}

	if err := s.redisClient.HealthCheck(r.Context()); err != nil {
		s.logger.Error("Health check failed: redis unreachable", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "redis": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
