package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/placementportal/internal/app/models"
	appRepos "github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/auth"
	"github.com/yigit/placementportal/internal/pkg/validation"
)

// SuperAdmin describes the bootstrap account created on an empty installation
type SuperAdmin struct {
	Email      string
	Password   string
	Name       string
	RollNumber string
}

// Enabled reports whether enough fields are set to create the account
func (s SuperAdmin) Enabled() bool {
	return s.Email != "" && s.Password != ""
}

// EnsureSuperAdmin creates the bootstrap superadmin unless one already exists.
// It returns true when an account was created.
func EnsureSuperAdmin(ctx context.Context, userRepo appRepos.IUserRepository, cfg SuperAdmin, lgr zerolog.Logger) (bool, error) {
	if !cfg.Enabled() {
		lgr.Debug().Msg("No bootstrap superadmin configured, skipping")
		return false, nil
	}

	exists, err := userRepo.ExistsByRole(ctx, appModels.RoleSuperAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing superadmin: %w", err)
	}
	if exists {
		lgr.Info().Msg("Superadmin already exists, skipping creation")
		return false, nil
	}

	email := validation.NormalizeEmail(cfg.Email)
	if !validation.IsValidEmail(email) {
		return false, fmt.Errorf("bootstrap superadmin email %q: %w", cfg.Email, apperrors.ErrInvalidEmail)
	}
	if len(cfg.Password) < validation.PasswordMinLength {
		return false, fmt.Errorf("bootstrap superadmin password: %w", apperrors.ErrInvalidPassword)
	}

	name := cfg.Name
	if name == "" {
		name = "System Administrator"
	}
	rollNumber := validation.NormalizeRollNumber(cfg.RollNumber)
	if rollNumber == "" {
		rollNumber = "SUPERADMIN"
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash superadmin password: %w", err)
	}

	user := &appModels.User{
		Name:       name,
		Email:      email,
		Password:   hash,
		RollNumber: rollNumber,
		Batch:      "staff",
		Role:       appModels.RoleSuperAdmin,
		Verified:   true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrRollNumberExists) {
			return false, fmt.Errorf("bootstrap superadmin collides with an existing account: %w", err)
		}
		return false, fmt.Errorf("failed to create superadmin: %w", err)
	}

	lgr.Info().Int64("userID", user.ID).Str("email", email).Msg("Bootstrap superadmin created")
	return true, nil
}
