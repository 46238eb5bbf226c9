package repositories

import (
	"context"
	"fmt"
	"usernetwork/src/domain"
	"usernetwork/src/domain/entities"
	"usernetwork/src/infra/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateUser insere um registro de identidade. Campos opcionais do perfil
// viram NULL em vez de string vazia.
func (ur *UserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, age, gender, photo_url, about, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := ur.pool.QueryRow(ctx, query,
		user.FirstName,
		postgres.NewNullString(&user.LastName),
		user.Email,
		postgres.NewNullInt(&user.Age),
		postgres.NewNullString(&user.Gender),
		postgres.NewNullString(&user.PhotoURL),
		postgres.NewNullString(&user.About),
		user.Skills,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("UserRepository.CreateUser - email already registered: %w", err)
		}
		return fmt.Errorf("UserRepository.CreateUser - insert failed: %w", err)
	}

	return nil
}

// GetByID resolve um id para o registro completo do usuário.
func (ur *UserRepository) GetByID(ctx context.Context, userID int64) (entities.User, error) {
	query := `
		SELECT id, first_name, COALESCE(last_name, ''), email, COALESCE(age, 0),
		       COALESCE(gender, ''), COALESCE(photo_url, ''), COALESCE(about, ''),
		       COALESCE(skills, '{}'), created_at, updated_at
		FROM users
		WHERE id = $1`

	var user entities.User
	err := ur.pool.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Age,
		&user.Gender,
		&user.PhotoURL,
		&user.About,
		&user.Skills,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if postgres.IsNoRows(err) {
			return entities.User{}, domain.ErrUserNotFound
		}
		return entities.User{}, fmt.Errorf("UserRepository.GetByID - query failed: %w", err)
	}

	return user, nil
}

// ListFeedCandidates devolve candidatos para o feed do usuário: exclui o
// próprio usuário e qualquer contraparte de edge existente, em qualquer
// direção e com qualquer status.
func (ur *UserRepository) ListFeedCandidates(ctx context.Context, userID int64, limit, offset int) ([]entities.PublicProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		WHERE u.id <> $1
		  AND NOT EXISTS (
			SELECT 1
			FROM connection_requests cr
			WHERE (cr.from_user_id = $1 AND cr.to_user_id = u.id)
			   OR (cr.from_user_id = u.id AND cr.to_user_id = $1)
		  )
		ORDER BY u.id
		LIMIT $2 OFFSET $3`, publicProfileColumns)

	rows, err := ur.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("UserRepository.ListFeedCandidates - query failed: %w", err)
	}
	defer rows.Close()

	profiles := make([]entities.PublicProfile, 0)
	for rows.Next() {
		var profile entities.PublicProfile
		if err := rows.Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.PhotoURL, &profile.About, &profile.Gender, &profile.Skills); err != nil {
			return nil, fmt.Errorf("UserRepository.ListFeedCandidates - failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}
