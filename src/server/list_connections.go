package server

import (
	"net/http"
)

// ListConnections devolve as conexões aceitas do caller como projeções
// profile-safe.
func (s *Server) ListConnections(w http.ResponseWriter, r *http.Request, callerID int64) {
	profiles, err := s.networkService.ListConnections(r.Context(), callerID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResponseDTO{
		Data: MapProfilesToResponse(profiles),
	})
}
