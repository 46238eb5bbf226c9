package network

import (
	"context"
	"fmt"

	"usernetwork/src/domain"
)

// ListReceivedRequests lista os pedidos "interested" endereçados ao usuário,
// cada um com a projeção de quem enviou. Alimenta a UI de accept/reject e
// não muta nada.
func (ns *NetworkService) ListReceivedRequests(ctx context.Context, userID int64) ([]domain.ReceivedRequest, error) {
	received, err := ns.relationshipQueryRepository.ListReceivedRequests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("NetworkService.ListReceivedRequests - failed to list for user %d: %w", userID, err)
	}

	return received, nil
}
