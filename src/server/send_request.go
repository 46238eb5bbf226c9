package server

import (
	"fmt"
	"net/http"
	"strconv"

	"usernetwork/src/domain/entities"
)

// SendRequest cria um pedido de conexão do caller para o usuário do path.
// O status do path só pode ser um status de criação (interested/ignored).
func (s *Server) SendRequest(w http.ResponseWriter, r *http.Request, callerID int64) {
	status, ok := entities.ParseRequestStatus(r.PathValue("status"))
	if !ok || !status.IsCreationStatus() {
		http.Error(w, fmt.Sprintf("Invalid status %q: allowed values are interested and ignored", r.PathValue("status")), http.StatusBadRequest)
		return
	}

	targetID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID format", http.StatusBadRequest)
		return
	}

	edge, err := s.requestService.SendRequest(r.Context(), callerID, targetID, status)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	message := "Connection request sent: you expressed interest"
	if status == entities.StatusIgnored {
		message = "User ignored"
	}

	writeJSON(w, http.StatusCreated, ResponseDTO{
		Message: message,
		Data:    MapRequestToResponse(edge),
	})
}
