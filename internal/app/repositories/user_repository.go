package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/schoolhub/internal/app/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash, role, is_superuser)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.IsSuperuser,
	).Scan(&user.ID)
}

// GetByID retrieves a user by ID. Returns nil without error when no row
// matches.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByUsername retrieves a user by username. Returns nil without error when
// no row matches.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username = $1", username)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, password_hash, role, is_superuser
		FROM users
		WHERE %s
	`, where)

	var user models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.IsSuperuser,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// CountSuperusers returns the number of superuser accounts. Used by the
// seeder to decide whether the default admin is needed.
func (r *UserRepository) CountSuperusers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE is_superuser = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting superusers: %w", err)
	}

	return count, nil
}
