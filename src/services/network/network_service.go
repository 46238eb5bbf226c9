package network

import (
	"usernetwork/src/repositories"
)

// NetworkService responde as queries de leitura sobre o grafo de conexões:
// projeção de conexões aceitas, pedidos recebidos e feed.
type NetworkService struct {
	cachedConnectionsRepository *repositories.CachedConnectionsRepository
	relationshipQueryRepository *repositories.RelationshipQueryRepository
	userRepository              *repositories.UserRepository
}

func NewNetworkService(
	cachedConnectionsRepository *repositories.CachedConnectionsRepository,
	relationshipQueryRepository *repositories.RelationshipQueryRepository,
	userRepository *repositories.UserRepository,
) *NetworkService {
	return &NetworkService{
		cachedConnectionsRepository: cachedConnectionsRepository,
		relationshipQueryRepository: relationshipQueryRepository,
		userRepository:              userRepository,
	}
}
