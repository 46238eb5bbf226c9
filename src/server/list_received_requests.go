package server

import (
	"net/http"
)

// ListReceivedRequests devolve os pedidos "interested" endereçados ao caller.
func (s *Server) ListReceivedRequests(w http.ResponseWriter, r *http.Request, callerID int64) {
	received, err := s.networkService.ListReceivedRequests(r.Context(), callerID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResponseDTO{
		Message: "Here you go!",
		Data:    MapReceivedToResponse(received),
	})
}
