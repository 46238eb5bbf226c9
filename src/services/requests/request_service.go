package requests

import (
	"context"
	"log/slog"

	"usernetwork/src/domain"
	"usernetwork/src/repositories"
)

// EventPublisher é o contrato mínimo que o serviço precisa para emitir
// eventos de domínio; em testes entra um stub.
type EventPublisher interface {
	PublishConnectionEvent(ctx context.Context, eventType string, data domain.ConnectionEventData) error
}

// RequestService é a máquina de estados dos pedidos de conexão: criação
// (interested/ignored) e review (accepted/rejected).
type RequestService struct {
	logger                      *slog.Logger
	relationshipWriteRepository *repositories.RelationshipWriteRepository
	relationshipQueryRepository *repositories.RelationshipQueryRepository
	userRepository              *repositories.UserRepository
	eventPublisher              EventPublisher
}

func NewRequestService(
	logger *slog.Logger,
	relationshipWriteRepository *repositories.RelationshipWriteRepository,
	relationshipQueryRepository *repositories.RelationshipQueryRepository,
	userRepository *repositories.UserRepository,
	eventPublisher EventPublisher,
) *RequestService {
	return &RequestService{
		logger:                      logger,
		relationshipWriteRepository: relationshipWriteRepository,
		relationshipQueryRepository: relationshipQueryRepository,
		userRepository:              userRepository,
		eventPublisher:              eventPublisher,
	}
}

// publishEvent emite o evento em best-effort: o edge já está persistido e a
// operação do usuário não falha por indisponibilidade do broker.
func (s *RequestService) publishEvent(ctx context.Context, eventType string, data domain.ConnectionEventData) {
	if s.eventPublisher == nil {
		return
	}

	if err := s.eventPublisher.PublishConnectionEvent(ctx, eventType, data); err != nil {
		s.logger.Error("Failed to publish connection event", "event_type", eventType, "error", err)
	}
}
