package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"usernetwork/src/domain/entities"
	"usernetwork/src/infra/redis"
)

type CachedConnectionsRepository struct {
	relationshipQueryRepository *RelationshipQueryRepository
	redisClient                 *redis.RedisClient
}

func NewCachedConnectionsRepository(
	relationshipQueryRepository *RelationshipQueryRepository,
	redisClient *redis.RedisClient,
) *CachedConnectionsRepository {
	return &CachedConnectionsRepository{
		relationshipQueryRepository: relationshipQueryRepository,
		redisClient:                 redisClient,
	}
}

// ListConnections tenta o cache antes do Postgres. Cache é best-effort:
// qualquer erro de Redis degrada para a query direta.
func (r *CachedConnectionsRepository) ListConnections(ctx context.Context, userID int64) ([]entities.PublicProfile, error) {
	cacheKey := r.generateCacheKey(userID)

	cachedProfiles, found, err := r.getFromCache(ctx, cacheKey)
	if found && err == nil {
		return cachedProfiles, nil
	}

	if err != nil {
		// Log erro de cache mas continua com PostgreSQL
		log.Printf("Cache error for key %s: %v", cacheKey, err)
	}

	profiles, err := r.relationshipQueryRepository.ListConnections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres query failed: %w", err)
	}

	go func() {
		ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		r.setInCache(ctxWithTimeout, cacheKey, userID, profiles)
	}()

	return profiles, nil
}

// InvalidateByUserIDs derruba as projeções cacheadas dos usuários tocados
// por uma mudança de edge (os dois endpoints, no review).
func (r *CachedConnectionsRepository) InvalidateByUserIDs(ctx context.Context, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	registryKeys := make([]string, len(userIDs))
	for i, userID := range userIDs {
		registryKeys[i] = fmt.Sprintf("registry:user:%d", userID)
	}

	registryResults, err := r.redisClient.GetMultipleSetMembers(ctx, registryKeys)
	if err != nil {
		return fmt.Errorf("failed to get registry data: %w", err)
	}

	allKeysToDelete := make(map[string]bool)

	for registryKey, relatedKeys := range registryResults {
		// Adicionar o próprio registry
		allKeysToDelete[registryKey] = true

		for _, relatedKey := range relatedKeys {
			allKeysToDelete[relatedKey] = true
		}
	}

	keysToDelete := make([]string, 0, len(allKeysToDelete))
	for key := range allKeysToDelete {
		keysToDelete = append(keysToDelete, key)
	}

	if len(keysToDelete) > 0 {
		log.Printf("Invalidating %d cache keys for %d users", len(keysToDelete), len(userIDs))
		return r.redisClient.InvalidateKeys(ctx, keysToDelete)
	}

	return nil
}

func (r *CachedConnectionsRepository) generateCacheKey(userID int64) string {
	return fmt.Sprintf("network:connections:%d", userID)
}

func (r *CachedConnectionsRepository) getFromCache(ctx context.Context, cacheKey string) ([]entities.PublicProfile, bool, error) {
	cachedJSON, found, err := r.redisClient.GetKey(ctx, cacheKey)
	if !found || err != nil {
		return nil, found, err
	}

	var profiles []entities.PublicProfile
	if err := json.Unmarshal([]byte(cachedJSON), &profiles); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached data: %w", err)
	}

	return profiles, true, nil
}

func (r *CachedConnectionsRepository) setInCache(ctx context.Context, cacheKey string, userID int64, profiles []entities.PublicProfile) {
	dataJSON, err := json.Marshal(profiles)
	if err != nil {
		log.Printf("Failed to marshal cache data for key %s: %v", cacheKey, err)
		return
	}

	// Registra a chave no registry do dono da projeção e de cada contraparte:
	// quando qualquer um deles mudar de status, a projeção cai.
	registryKeys := make([]string, 0, len(profiles)+1)
	registryKeys = append(registryKeys, fmt.Sprintf("registry:user:%d", userID))
	for _, profile := range profiles {
		registryKeys = append(registryKeys, fmt.Sprintf("registry:user:%d", profile.ID))
	}

	err = r.redisClient.SetWithRegistry(ctx, cacheKey, string(dataJSON), registryKeys)
	if err != nil {
		log.Printf("Failed to set cache with registry for key %s: %v", cacheKey, err)
		return
	}
}
