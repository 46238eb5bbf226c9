package server

import (
	"net/http"
	"strconv"
)

// GetFeed devolve a página de candidatos do caller. Paginação via
// ?page=&limit=; o serviço aplica default e teto do limit.
func (s *Server) GetFeed(w http.ResponseWriter, r *http.Request, callerID int64) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	profiles, err := s.networkService.GetFeed(r.Context(), callerID, page, limit)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResponseDTO{
		Data: MapProfilesToResponse(profiles),
	})
}
