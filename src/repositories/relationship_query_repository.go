package repositories

import (
	"context"
	"fmt"
	"usernetwork/src/domain"
	"usernetwork/src/domain/entities"
	"usernetwork/src/infra/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectionRequestColumns = "id, from_user_id, to_user_id, status, created_at, updated_at"

// Colunas da projeção profile-safe. Email fica de fora por contrato.
const publicProfileColumns = `u.id, u.first_name, COALESCE(u.last_name, ''), COALESCE(u.photo_url, ''),
		COALESCE(u.about, ''), COALESCE(u.gender, ''), COALESCE(u.skills, '{}')`

type RelationshipQueryRepository struct {
	pool *pgxpool.Pool
}

func NewRelationshipQueryRepository(pool *pgxpool.Pool) *RelationshipQueryRepository {
	return &RelationshipQueryRepository{pool: pool}
}

// FindEdge busca o único registro do par não-ordenado {a, b}, em qualquer
// direção. O segundo retorno indica se o edge existe.
func (rqr *RelationshipQueryRepository) FindEdge(ctx context.Context, userA, userB int64) (entities.ConnectionRequest, bool, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM connection_requests
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)`, connectionRequestColumns)

	var edge entities.ConnectionRequest
	err := rqr.pool.QueryRow(ctx, query, userA, userB).Scan(
		&edge.ID,
		&edge.FromUserID,
		&edge.ToUserID,
		&edge.Status,
		&edge.CreatedAt,
		&edge.UpdatedAt,
	)
	if err != nil {
		if postgres.IsNoRows(err) {
			return entities.ConnectionRequest{}, false, nil
		}
		return entities.ConnectionRequest{}, false, fmt.Errorf("RelationshipQueryRepository.FindEdge - query failed: %w", err)
	}

	return edge, true, nil
}

// ListConnections projeta o grafo: para cada edge accepted que toca o
// usuário, devolve a projeção profile-safe do outro endpoint. O índice único
// do par garante no máximo um edge por contraparte, logo sem duplicatas.
func (rqr *RelationshipQueryRepository) ListConnections(ctx context.Context, userID int64) ([]entities.PublicProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM connection_requests cr
		JOIN users u
		  ON u.id = CASE WHEN cr.from_user_id = $1 THEN cr.to_user_id ELSE cr.from_user_id END
		WHERE cr.status = 'accepted'
		  AND (cr.from_user_id = $1 OR cr.to_user_id = $1)
		ORDER BY u.id`, publicProfileColumns)

	rows, err := rqr.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("RelationshipQueryRepository.ListConnections - query failed: %w", err)
	}
	defer rows.Close()

	profiles := make([]entities.PublicProfile, 0)
	for rows.Next() {
		var profile entities.PublicProfile
		if err := rows.Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.PhotoURL, &profile.About, &profile.Gender, &profile.Skills); err != nil {
			return nil, fmt.Errorf("RelationshipQueryRepository.ListConnections - failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

// ListReceivedRequests lista os pedidos "interested" endereçados ao usuário,
// já com a projeção de quem enviou.
func (rqr *RelationshipQueryRepository) ListReceivedRequests(ctx context.Context, userID int64) ([]domain.ReceivedRequest, error) {
	query := fmt.Sprintf(`
		SELECT cr.id, cr.from_user_id, cr.to_user_id, cr.status, cr.created_at, cr.updated_at,
		       %s
		FROM connection_requests cr
		JOIN users u ON u.id = cr.from_user_id
		WHERE cr.to_user_id = $1
		  AND cr.status = 'interested'
		ORDER BY cr.id`, publicProfileColumns)

	rows, err := rqr.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("RelationshipQueryRepository.ListReceivedRequests - query failed: %w", err)
	}
	defer rows.Close()

	received := make([]domain.ReceivedRequest, 0)
	for rows.Next() {
		var item domain.ReceivedRequest
		if err := rows.Scan(
			&item.Request.ID,
			&item.Request.FromUserID,
			&item.Request.ToUserID,
			&item.Request.Status,
			&item.Request.CreatedAt,
			&item.Request.UpdatedAt,
			&item.FromUser.ID,
			&item.FromUser.FirstName,
			&item.FromUser.LastName,
			&item.FromUser.PhotoURL,
			&item.FromUser.About,
			&item.FromUser.Gender,
			&item.FromUser.Skills,
		); err != nil {
			return nil, fmt.Errorf("RelationshipQueryRepository.ListReceivedRequests - failed to scan row: %w", err)
		}
		received = append(received, item)
	}

	return received, rows.Err()
}
