package repositories

import (
	"context"
	"fmt"
	"log"
	"usernetwork/src/domain"
	"usernetwork/src/domain/entities"
	"usernetwork/src/infra/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RelationshipWriteRepository struct {
	writePool                   *pgxpool.Pool
	cachedConnectionsRepository *CachedConnectionsRepository
}

func NewRelationshipWriteRepository(writePool *pgxpool.Pool, cachedConnectionsRepository *CachedConnectionsRepository) *RelationshipWriteRepository {
	return &RelationshipWriteRepository{writePool: writePool, cachedConnectionsRepository: cachedConnectionsRepository}
}

// CreateEdge persiste um novo pedido direcionado. A unicidade do par
// não-ordenado é responsabilidade do índice connection_requests_pair_key:
// duas criações concorrentes para o mesmo par nunca passam as duas.
func (r *RelationshipWriteRepository) CreateEdge(ctx context.Context, fromUserID, toUserID int64, status entities.RequestStatus) (entities.ConnectionRequest, error) {
	if fromUserID == toUserID {
		return entities.ConnectionRequest{}, domain.ErrSelfConnection
	}

	edge := entities.ConnectionRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     status,
	}

	query := `
		INSERT INTO connection_requests (from_user_id, to_user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.writePool.QueryRow(ctx, query, fromUserID, toUserID, status).Scan(
		&edge.ID,
		&edge.CreatedAt,
		&edge.UpdatedAt,
	)
	if err != nil {
		// O banco é a última linha de defesa dos invariantes; traduzimos as
		// violações de constraint para os erros de domínio.
		switch {
		case postgres.IsUniqueViolation(err):
			return entities.ConnectionRequest{}, domain.ErrDuplicateRelationship
		case postgres.IsForeignKeyViolation(err):
			return entities.ConnectionRequest{}, domain.ErrUserNotFound
		case postgres.IsCheckViolation(err):
			return entities.ConnectionRequest{}, domain.ErrSelfConnection
		}
		return entities.ConnectionRequest{}, fmt.Errorf("RelationshipWriteRepository.CreateEdge - insert failed: %w", err)
	}

	return edge, nil
}

// UpdateStatus aplica a decisão de review em um edge "interested" existente,
// na direção requester -> recipient. Direção e endpoints nunca mudam.
func (r *RelationshipWriteRepository) UpdateStatus(ctx context.Context, fromUserID, toUserID int64, decision entities.RequestStatus) (entities.ConnectionRequest, error) {
	edge := entities.ConnectionRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     decision,
	}

	query := `
		UPDATE connection_requests
		SET status = $3, updated_at = NOW()
		WHERE from_user_id = $1
		  AND to_user_id = $2
		  AND status = 'interested'
		RETURNING id, created_at, updated_at`

	err := r.writePool.QueryRow(ctx, query, fromUserID, toUserID, decision).Scan(
		&edge.ID,
		&edge.CreatedAt,
		&edge.UpdatedAt,
	)
	if err != nil {
		if postgres.IsNoRows(err) {
			return entities.ConnectionRequest{}, domain.ErrRequestNotFound
		}
		return entities.ConnectionRequest{}, fmt.Errorf("RelationshipWriteRepository.UpdateStatus - update failed: %w", err)
	}

	// Invalidar em background as projeções de conexões dos dois endpoints.
	go func() {
		if invalidateErr := r.cachedConnectionsRepository.InvalidateByUserIDs(context.Background(), []int64{fromUserID, toUserID}); invalidateErr != nil {
			log.Printf("Failed to invalidate connections cache: %v", invalidateErr)
		}
	}()

	return edge, nil
}
