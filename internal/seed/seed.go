package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/schoolhub/internal/app/models"
	appRepos "github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/config"
	pkgAuth "github.com/yigit/schoolhub/internal/pkg/auth"
)

// CreateDefaultData ensures the database has at least one superuser account so
// a fresh deployment can be logged into. The password comes from the
// ADMIN_PASSWORD environment variable, with a development fallback.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	count, err := userRepo.CountSuperusers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count superusers: %w", err)
	}
	if count > 0 {
		lgr.Info().Msg("A superuser already exists, skipping default admin creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	password := config.GetEnv("ADMIN_PASSWORD", "Admin123!")
	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &appModels.User{
		Username:     config.GetEnv("ADMIN_USERNAME", "admin"),
		PasswordHash: hashed,
		Role:         appModels.RoleAdmin,
		IsSuperuser:  true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("username", admin.Username).Msg("Default admin user created successfully")
	return nil
}
