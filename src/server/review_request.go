package server

import (
	"fmt"
	"net/http"
	"strconv"

	"usernetwork/src/domain/entities"
)

// ReviewRequest aplica a decisão do caller sobre um pedido pendente enviado
// pelo usuário do path (o requester).
func (s *Server) ReviewRequest(w http.ResponseWriter, r *http.Request, callerID int64) {
	decision, ok := entities.ParseRequestStatus(r.PathValue("status"))
	if !ok || !decision.IsDecisionStatus() {
		http.Error(w, fmt.Sprintf("Invalid status %q: allowed values are accepted and rejected", r.PathValue("status")), http.StatusBadRequest)
		return
	}

	requesterID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID format", http.StatusBadRequest)
		return
	}

	edge, err := s.requestService.RespondToRequest(r.Context(), callerID, requesterID, decision)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResponseDTO{
		Message: fmt.Sprintf("Connection request %s", decision),
		Data:    MapRequestToResponse(edge),
	})
}
