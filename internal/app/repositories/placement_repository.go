package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// IPlacementRepository defines the interface for placement record persistence
type IPlacementRepository interface {
	Create(ctx context.Context, placement *models.Placement) error
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	ListByStatus(ctx context.Context, status models.PlacementStatus) ([]*models.Placement, error)
	ListAll(ctx context.Context) ([]*models.Placement, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Placement, error)
	UpdateReview(ctx context.Context, id int64, status models.PlacementStatus, verifiedBy *int64) error
}

// PlacementRepository handles database operations for placement records
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// selectPlacementQuery joins each record with its owner's public fields
func (r *PlacementRepository) selectPlacementQuery() squirrel.SelectBuilder {
	return psql.Select(
		"p.id", "p.user_id", "p.student_name", "p.company", "p.package", "p.batch",
		"p.offer_letter_url", "p.id_card_url", "p.interview_experience", "p.is_anonymous",
		"p.status", "p.verified_by", "p.created_at", "p.updated_at",
		"u.name", "u.email", "u.roll_number", "u.batch",
	).From("placements p").
		Join("users u ON p.user_id = u.id")
}

func scanPlacement(row pgx.Row) (*models.Placement, error) {
	p := &models.Placement{Owner: &models.UserSummary{}}
	err := row.Scan(
		&p.ID, &p.UserID, &p.StudentName, &p.Company, &p.Package, &p.Batch,
		&p.OfferLetterURL, &p.IDCardURL, &p.InterviewExperience, &p.IsAnonymous,
		&p.Status, &p.VerifiedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.Owner.Name, &p.Owner.Email, &p.Owner.RollNumber, &p.Owner.Batch,
	)
	if err != nil {
		return nil, err
	}
	p.Owner.ID = p.UserID
	return p, nil
}

func (r *PlacementRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Placement, error) {
	sql, args, err := query.OrderBy("p.created_at DESC", "p.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list placements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list placements query")
		return nil, fmt.Errorf("failed to list placements: %w", err)
	}
	defer rows.Close()

	placements := make([]*models.Placement, 0)
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan placement row: %w", err)
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating placement rows: %w", err)
	}
	return placements, nil
}

// Create inserts a new placement record and fills in its generated id and timestamps
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	if placement.Status == "" {
		placement.Status = models.PlacementPending
	}

	sql, args, err := psql.Insert("placements").
		Columns("user_id", "student_name", "company", "package", "batch", "offer_letter_url", "id_card_url",
			"interview_experience", "is_anonymous", "status").
		Values(placement.UserID, placement.StudentName, placement.Company, placement.Package, placement.Batch,
			placement.OfferLetterURL, placement.IDCardURL, placement.InterviewExperience, placement.IsAnonymous,
			placement.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create placement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&placement.ID, &placement.CreatedAt, &placement.UpdatedAt); err != nil {
		logger.Error().Err(err).Int64("userID", placement.UserID).Msg("Error executing create placement query")
		return fmt.Errorf("failed to create placement: %w", err)
	}
	return nil
}

// GetByID retrieves a placement record with its owner
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	sql, args, err := r.selectPlacementQuery().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get placement query: %w", err)
	}

	p, err := scanPlacement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("failed to get placement: %w", err)
	}
	return p, nil
}

// ListByStatus returns records in the given status, newest first
func (r *PlacementRepository) ListByStatus(ctx context.Context, status models.PlacementStatus) ([]*models.Placement, error) {
	return r.list(ctx, r.selectPlacementQuery().Where(squirrel.Eq{"p.status": status}))
}

// ListAll returns every record, newest first
func (r *PlacementRepository) ListAll(ctx context.Context) ([]*models.Placement, error) {
	return r.list(ctx, r.selectPlacementQuery())
}

// ListByUser returns one account's records in any status, newest first
func (r *PlacementRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Placement, error) {
	return r.list(ctx, r.selectPlacementQuery().Where(squirrel.Eq{"p.user_id": userID}))
}

// UpdateReview stores a review decision. verifiedBy is only written when non-nil.
func (r *PlacementRepository) UpdateReview(ctx context.Context, id int64, status models.PlacementStatus, verifiedBy *int64) error {
	query := psql.Update("placements").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if verifiedBy != nil {
		query = query.Set("verified_by", *verifiedBy)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build review placement query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update placement status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}
	return nil
}
