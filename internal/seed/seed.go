package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/repositories"
	"github.com/mattwebdev/devcamper/internal/config"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/auth"
)

// CreateDefaultData provisions the admin account from configuration. The
// admin role cannot be claimed through registration, so this is the only
// path that creates one.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Info().Msg("No admin account configured, skipping seed")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	if _, err := userRepo.GetByEmail(ctx, cfg.Admin.Email); err == nil {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Role:     models.RoleAdmin,
		Password: hashed,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", admin.Email).Msg("Admin account created")
	return nil
}
