package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
)

// PlacementService handles placement submission and review
type PlacementService struct {
	placementRepo repositories.IPlacementRepository
	storage       filestorage.DocumentStorage
	logger        zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(
	placementRepo repositories.IPlacementRepository,
	storage filestorage.DocumentStorage,
	logger zerolog.Logger,
) *PlacementService {
	return &PlacementService{
		placementRepo: placementRepo,
		storage:       storage,
		logger:        logger,
	}
}

// Submit stores both documents and creates a pending record owned by userID.
// If anything fails after an upload, the uploaded documents are removed again.
func (s *PlacementService) Submit(ctx context.Context, userID int64, req *dto.SubmitPlacementRequest, offerLetter, idCard *multipart.FileHeader) (*models.Placement, error) {
	if offerLetter == nil || idCard == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingDocuments, "Both offer letter and ID card are required")
	}
	if req.Package < 0 {
		return nil, validationError("package must not be negative", "package")
	}

	var uploaded []*filestorage.StoredFile
	cleanup := func() {
		for _, f := range uploaded {
			if err := s.storage.Delete(context.WithoutCancel(ctx), f.Key); err != nil {
				s.logger.Error().Err(err).Str("key", f.Key).Msg("Failed to remove orphaned document")
			}
		}
	}

	offer, err := s.storage.Save(ctx, offerLetter, filestorage.FolderOfferLetters)
	if err != nil {
		return nil, fmt.Errorf("failed to store offer letter: %w", err)
	}
	uploaded = append(uploaded, offer)

	card, err := s.storage.Save(ctx, idCard, filestorage.FolderIDCards)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to store ID card: %w", err)
	}
	uploaded = append(uploaded, card)

	placement := &models.Placement{
		UserID:              userID,
		StudentName:         strings.TrimSpace(req.StudentName),
		Company:             strings.TrimSpace(req.Company),
		Package:             req.Package,
		Batch:               strings.TrimSpace(req.Batch),
		OfferLetterURL:      offer.URL,
		IDCardURL:           card.URL,
		InterviewExperience: req.InterviewExperience,
		IsAnonymous:         req.IsAnonymous,
		Status:              models.PlacementPending,
	}
	if err := s.placementRepo.Create(ctx, placement); err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to save placement: %w", err)
	}

	s.logger.Info().Int64("placementID", placement.ID).Int64("userID", userID).Msg("Placement submitted")
	return placement, nil
}

// ListApproved returns approved records, newest first
func (s *PlacementService) ListApproved(ctx context.Context) ([]*models.Placement, error) {
	return s.placementRepo.ListByStatus(ctx, models.PlacementApproved)
}

// GetApproved returns one approved record; anything else is reported as not found
func (s *PlacementService) GetApproved(ctx context.Context, id int64) (*models.Placement, error) {
	placement, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if placement.Status != models.PlacementApproved {
		return nil, apperrors.NewCustomError(apperrors.ErrPlacementNotFound, "Placement not found")
	}
	return placement, nil
}

// ListMine returns the caller's records in any status, newest first
func (s *PlacementService) ListMine(ctx context.Context, userID int64) ([]*models.Placement, error) {
	return s.placementRepo.ListByUser(ctx, userID)
}

// ListPending returns records awaiting review, newest first
func (s *PlacementService) ListPending(ctx context.Context) ([]*models.Placement, error) {
	return s.placementRepo.ListByStatus(ctx, models.PlacementPending)
}

// ListAll returns every record, newest first
func (s *PlacementService) ListAll(ctx context.Context) ([]*models.Placement, error) {
	return s.placementRepo.ListAll(ctx)
}

func (s *PlacementService) find(ctx context.Context, id int64) (*models.Placement, error) {
	placement, err := s.placementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlacementNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrPlacementNotFound, "Placement not found")
		}
		return nil, fmt.Errorf("failed to load placement: %w", err)
	}
	return placement, nil
}

func (s *PlacementService) review(ctx context.Context, id int64, next models.PlacementStatus, reviewerID int64) (*models.Placement, error) {
	placement, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := placement.ApplyReview(next, reviewerID); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPlacementState, err.Error())
	}

	var verifiedBy *int64
	if next == models.PlacementApproved {
		verifiedBy = placement.VerifiedBy
	}
	if err := s.placementRepo.UpdateReview(ctx, id, placement.Status, verifiedBy); err != nil {
		if errors.Is(err, apperrors.ErrPlacementNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrPlacementNotFound, "Placement not found")
		}
		return nil, fmt.Errorf("failed to store review: %w", err)
	}

	s.logger.Info().Int64("placementID", id).Str("status", string(placement.Status)).Int64("reviewerID", reviewerID).Msg("Placement reviewed")
	return placement, nil
}

// Approve marks a record approved and records the reviewing admin
func (s *PlacementService) Approve(ctx context.Context, id, adminID int64) (*models.Placement, error) {
	return s.review(ctx, id, models.PlacementApproved, adminID)
}

// Reject marks a record rejected
func (s *PlacementService) Reject(ctx context.Context, id int64) (*models.Placement, error) {
	return s.review(ctx, id, models.PlacementRejected, 0)
}
