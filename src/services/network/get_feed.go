package network

import (
	"context"
	"fmt"

	"usernetwork/src/domain/entities"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 50
)

// GetFeed monta a página de candidatos para o usuário: todo mundo menos ele
// mesmo e menos qualquer contraparte de edge já existente (qualquer direção,
// qualquer status).
func (ns *NetworkService) GetFeed(ctx context.Context, userID int64, page, limit int) ([]entities.PublicProfile, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	offset := (page - 1) * limit

	profiles, err := ns.userRepository.ListFeedCandidates(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("NetworkService.GetFeed - failed to list candidates for user %d: %w", userID, err)
	}

	return profiles, nil
}
