package network

import (
	"context"
	"fmt"

	"usernetwork/src/domain/entities"
)

// ListConnections projeta o grafo para um usuário: as projeções profile-safe
// de todas as contrapartes com edge "accepted", direção resolvida pelo
// repositório. Sem edges aceitos o resultado é uma lista vazia, nunca erro.
func (ns *NetworkService) ListConnections(ctx context.Context, userID int64) ([]entities.PublicProfile, error) {
	profiles, err := ns.cachedConnectionsRepository.ListConnections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("NetworkService.ListConnections - failed to list connections for user %d: %w", userID, err)
	}

	return profiles, nil
}
