package requests

import (
	"context"
	"fmt"

	"usernetwork/src/domain"
	"usernetwork/src/domain/entities"
)

// SendRequest cria o primeiro contato entre caller e target. Só os status de
// criação são aceitos; accepted/rejected só existem via RespondToRequest.
func (s *RequestService) SendRequest(ctx context.Context, callerID, targetID int64, status entities.RequestStatus) (entities.ConnectionRequest, error) {
	if !status.IsCreationStatus() {
		return entities.ConnectionRequest{}, fmt.Errorf("RequestService.SendRequest - status %q: %w", status, domain.ErrInvalidAction)
	}

	if callerID == targetID {
		return entities.ConnectionRequest{}, domain.ErrSelfConnection
	}

	if _, err := s.userRepository.GetByID(ctx, targetID); err != nil {
		return entities.ConnectionRequest{}, fmt.Errorf("RequestService.SendRequest - target %d: %w", targetID, err)
	}

	// Fast path amigável; a corrida entre o check e o insert é fechada pelo
	// índice único do par não-ordenado, não por esta leitura.
	if _, exists, err := s.relationshipQueryRepository.FindEdge(ctx, callerID, targetID); err != nil {
		return entities.ConnectionRequest{}, fmt.Errorf("RequestService.SendRequest - failed to check existing edge: %w", err)
	} else if exists {
		return entities.ConnectionRequest{}, domain.ErrDuplicateRelationship
	}

	edge, err := s.relationshipWriteRepository.CreateEdge(ctx, callerID, targetID, status)
	if err != nil {
		return entities.ConnectionRequest{}, err
	}

	s.logger.Info("Connection request created",
		"request_id", edge.ID,
		"from_user_id", callerID,
		"to_user_id", targetID,
		"status", status)

	s.publishEvent(ctx, domain.EventConnectionRequestCreated, domain.ConnectionEventData{
		RequestID:  edge.ID,
		FromUserID: edge.FromUserID,
		ToUserID:   edge.ToUserID,
		Status:     edge.Status,
	})

	return edge, nil
}
