package requests

import (
	"context"
	"fmt"

	"usernetwork/src/domain"
	"usernetwork/src/domain/entities"
)

// RespondToRequest aplica a decisão do destinatário sobre um pedido
// "interested" pendente. Só quem recebeu o pedido pode decidir: o UPDATE é
// amarrado à direção requester -> caller, então um pedido do caller para o
// requester (ou um pedido já decidido) resulta em ErrRequestNotFound.
func (s *RequestService) RespondToRequest(ctx context.Context, callerID, requesterID int64, decision entities.RequestStatus) (entities.ConnectionRequest, error) {
	if !decision.IsDecisionStatus() {
		return entities.ConnectionRequest{}, fmt.Errorf("RequestService.RespondToRequest - decision %q: %w", decision, domain.ErrInvalidAction)
	}

	if callerID == requesterID {
		return entities.ConnectionRequest{}, domain.ErrSelfConnection
	}

	edge, err := s.relationshipWriteRepository.UpdateStatus(ctx, requesterID, callerID, decision)
	if err != nil {
		return entities.ConnectionRequest{}, err
	}

	s.logger.Info("Connection request reviewed",
		"request_id", edge.ID,
		"from_user_id", requesterID,
		"to_user_id", callerID,
		"decision", decision)

	s.publishEvent(ctx, domain.EventConnectionRequestResponded, domain.ConnectionEventData{
		RequestID:  edge.ID,
		FromUserID: edge.FromUserID,
		ToUserID:   edge.ToUserID,
		Status:     edge.Status,
	})

	return edge, nil
}
