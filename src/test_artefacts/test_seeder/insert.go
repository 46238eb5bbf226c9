package test_seeder

import (
	"context"
	"fmt"
	"usernetwork/src/domain/entities"
	"usernetwork/src/infra/postgres"
)

// InsertUser inserts a user into the database for testing
func (ts TestSeeder) InsertUser(ctx context.Context, user *entities.User) {
	query := `
		INSERT INTO users (first_name, last_name, email, age, gender, photo_url, about, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	err := ts.pool.QueryRow(ctx, query,
		user.FirstName,
		postgres.NewNullString(&user.LastName),
		user.Email,
		postgres.NewNullInt(&user.Age),
		postgres.NewNullString(&user.Gender),
		postgres.NewNullString(&user.PhotoURL),
		postgres.NewNullString(&user.About),
		user.Skills,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertUser failed: %v", err))
	}
}

// InsertConnectionRequest inserts an edge into the database for testing,
// bypassing the state machine (e.g. to seed accepted edges directly)
func (ts TestSeeder) InsertConnectionRequest(ctx context.Context, request *entities.ConnectionRequest) {
	query := `
		INSERT INTO connection_requests (from_user_id, to_user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := ts.pool.QueryRow(ctx, query,
		request.FromUserID,
		request.ToUserID,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	).Scan(&request.ID)

	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertConnectionRequest failed: %v", err))
	}
}
