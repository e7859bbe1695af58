package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/repositories"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

// CompanyVisitService handles recruitment postings
type CompanyVisitService struct {
	visitRepo repositories.ICompanyVisitRepository
	logger    zerolog.Logger
}

// NewCompanyVisitService creates a new CompanyVisitService
func NewCompanyVisitService(visitRepo repositories.ICompanyVisitRepository, logger zerolog.Logger) *CompanyVisitService {
	return &CompanyVisitService{
		visitRepo: visitRepo,
		logger:    logger,
	}
}

func companyVisitNotFound(err error) error {
	if errors.Is(err, apperrors.ErrCompanyVisitNotFound) {
		return apperrors.NewCustomError(apperrors.ErrCompanyVisitNotFound, "Company visit not found")
	}
	return err
}

// Create stores a new active posting authored by addedBy
func (s *CompanyVisitService) Create(ctx context.Context, addedBy int64, req *dto.CreateCompanyVisitRequest) (*models.CompanyVisit, error) {
	visit := req.ToModel(addedBy)
	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create company visit: %w", err)
	}

	s.logger.Info().Int64("visitID", visit.ID).Int64("addedBy", addedBy).Msg("Company visit created")
	return visit, nil
}

// List returns active postings, newest first
func (s *CompanyVisitService) List(ctx context.Context) ([]*models.CompanyVisit, error) {
	return s.visitRepo.ListByStatus(ctx, models.CompanyVisitActive)
}

// Get returns a single posting in any status
func (s *CompanyVisitService) Get(ctx context.Context, id int64) (*models.CompanyVisit, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, companyVisitNotFound(err)
	}
	return visit, nil
}

// Update applies a partial update
func (s *CompanyVisitService) Update(ctx context.Context, id int64, req *dto.UpdateCompanyVisitRequest) (*models.CompanyVisit, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, companyVisitNotFound(err)
	}

	req.Apply(visit)
	if err := s.visitRepo.Update(ctx, visit); err != nil {
		return nil, companyVisitNotFound(err)
	}
	return visit, nil
}

// Delete removes a posting
func (s *CompanyVisitService) Delete(ctx context.Context, id int64) error {
	if err := s.visitRepo.Delete(ctx, id); err != nil {
		return companyVisitNotFound(err)
	}
	s.logger.Info().Int64("visitID", id).Msg("Company visit deleted")
	return nil
}

// Archive hides a posting from the public list
func (s *CompanyVisitService) Archive(ctx context.Context, id int64) (*models.CompanyVisit, error) {
	if err := s.visitRepo.SetStatus(ctx, id, models.CompanyVisitArchived); err != nil {
		return nil, companyVisitNotFound(err)
	}
	return s.Get(ctx, id)
}
