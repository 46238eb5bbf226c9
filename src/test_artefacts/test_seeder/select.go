package test_seeder

import (
	"context"
	"usernetwork/src/domain/entities"
)

// SelectConnectionRequestsByPair retrieves every edge touching the unordered
// pair, in any direction
func (ts TestSeeder) SelectConnectionRequestsByPair(ctx context.Context, userA, userB int64) ([]entities.ConnectionRequest, error) {
	query := `SELECT id, from_user_id, to_user_id, status, created_at, updated_at
			  FROM connection_requests
			  WHERE (from_user_id = $1 AND to_user_id = $2)
			     OR (from_user_id = $2 AND to_user_id = $1)
			  ORDER BY id`

	rows, err := ts.pool.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []entities.ConnectionRequest
	for rows.Next() {
		var request entities.ConnectionRequest
		err := rows.Scan(
			&request.ID,
			&request.FromUserID,
			&request.ToUserID,
			&request.Status,
			&request.CreatedAt,
			&request.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// CountConnectionRequests counts all edges in the table
func (ts TestSeeder) CountConnectionRequests(ctx context.Context) (int, error) {
	var count int
	err := ts.pool.QueryRow(ctx, `SELECT COUNT(*) FROM connection_requests`).Scan(&count)
	return count, err
}
