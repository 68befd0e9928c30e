package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/nullpointers/attendance-backend/internal/app/models"
	"github.com/nullpointers/attendance-backend/internal/app/repositories"
	"github.com/nullpointers/attendance-backend/internal/config"
	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
	"github.com/nullpointers/attendance-backend/internal/pkg/auth"
)

// CreateDefaultAdmin provisions the default ADMIN account if it does not
// exist yet. Without it a fresh deployment has no way to log in.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("No admin password configured, skipping default admin seed")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, cfg.Admin.Username)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("username", cfg.Admin.Username).Msg("Admin account already present")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: cfg.Admin.Username,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent instance may have won the race
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("username", admin.Username).Msg("Default admin account created")
	return nil
}
