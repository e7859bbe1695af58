package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
	"github.com/yigit/placementportal/internal/pkg/helpers"
)

// RecentRegistrationDays is the window counted as recent registrations
const RecentRegistrationDays = 30

// SuperAdminService handles account administration
type SuperAdminService struct {
	userRepo      repositories.IUserRepository
	placementRepo repositories.IPlacementRepository
	storage       filestorage.DocumentStorage
	logger        zerolog.Logger
	now           func() time.Time
}

// NewSuperAdminService creates a new SuperAdminService
func NewSuperAdminService(
	userRepo repositories.IUserRepository,
	placementRepo repositories.IPlacementRepository,
	storage filestorage.DocumentStorage,
	logger zerolog.Logger,
) *SuperAdminService {
	return &SuperAdminService{
		userRepo:      userRepo,
		placementRepo: placementRepo,
		storage:       storage,
		logger:        logger,
		now:           time.Now,
	}
}

// ListUsers returns every account with its placement count, newest first
func (s *SuperAdminService) ListUsers(ctx context.Context) ([]*models.UserWithStats, error) {
	return s.userRepo.ListWithPlacementCounts(ctx)
}

// Stats returns the dashboard counters
func (s *SuperAdminService) Stats(ctx context.Context) (*models.UserStats, error) {
	return s.userRepo.Stats(ctx, helpers.RecentWindowStart(s.now(), RecentRegistrationDays))
}

func (s *SuperAdminService) findUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// findMutableUser loads the target and refuses superadmins
func (s *SuperAdminService) findMutableUser(ctx context.Context, userID int64, action string) (*models.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsSuperAdmin() {
		return nil, apperrors.NewCustomError(apperrors.ErrSuperAdminImmutable, "Cannot "+action+" superadmin")
	}
	return user, nil
}

// GetUserDetails returns an account and all of its placements
func (s *SuperAdminService) GetUserDetails(ctx context.Context, userID int64) (*models.User, []*models.Placement, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	placements, err := s.placementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user placements: %w", err)
	}
	return user, placements, nil
}

func (s *SuperAdminService) setBlocked(ctx context.Context, userID int64, blocked bool, action string) (*models.User, error) {
	user, err := s.findMutableUser(ctx, userID, action)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetBlocked(ctx, userID, blocked); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to %s user: %w", action, err)
	}

	user.IsBlocked = blocked
	s.logger.Info().Int64("userID", userID).Bool("blocked", blocked).Msg("User block state changed")
	return user, nil
}

// Block prevents the account from logging in or using existing tokens
func (s *SuperAdminService) Block(ctx context.Context, userID int64) (*models.User, error) {
	return s.setBlocked(ctx, userID, true, "block")
}

// Unblock restores access for the account
func (s *SuperAdminService) Unblock(ctx context.Context, userID int64) (*models.User, error) {
	return s.setBlocked(ctx, userID, false, "unblock")
}

// Delete removes the account, its placements and their stored documents
func (s *SuperAdminService) Delete(ctx context.Context, userID int64) error {
	if _, err := s.findMutableUser(ctx, userID, "delete"); err != nil {
		return err
	}

	placements, err := s.placementRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list user placements: %w", err)
	}

	if err := s.userRepo.DeleteWithPlacements(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.removeDocuments(ctx, placements)
	s.logger.Info().Int64("userID", userID).Int("placements", len(placements)).Msg("User deleted")
	return nil
}

// removeDocuments deletes the offer letters and ID cards of removed placements.
// Failures leave orphan files behind and are only logged.
func (s *SuperAdminService) removeDocuments(ctx context.Context, placements []*models.Placement) {
	if s.storage == nil {
		return
	}
	for _, p := range placements {
		for _, url := range []string{p.OfferLetterURL, p.IDCardURL} {
			key, ok := s.storage.KeyFromURL(url)
			if !ok {
				continue
			}
			if err := s.storage.Delete(ctx, key); err != nil {
				s.logger.Warn().Err(err).Str("key", key).Int64("placementID", p.ID).Msg("Failed to remove placement document")
			}
		}
	}
}
