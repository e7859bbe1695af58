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

// ICompanyVisitRepository defines the interface for recruitment posting persistence
type ICompanyVisitRepository interface {
	Create(ctx context.Context, visit *models.CompanyVisit) error
	GetByID(ctx context.Context, id int64) (*models.CompanyVisit, error)
	ListByStatus(ctx context.Context, status models.CompanyVisitStatus) ([]*models.CompanyVisit, error)
	Update(ctx context.Context, visit *models.CompanyVisit) error
	SetStatus(ctx context.Context, id int64, status models.CompanyVisitStatus) error
	Delete(ctx context.Context, id int64) error
}

// CompanyVisitRepository handles database operations for company visits
type CompanyVisitRepository struct {
	db *pgxpool.Pool
}

// NewCompanyVisitRepository creates a new CompanyVisitRepository
func NewCompanyVisitRepository(db *pgxpool.Pool) *CompanyVisitRepository {
	return &CompanyVisitRepository{db: db}
}

func (r *CompanyVisitRepository) selectCompanyVisitQuery() squirrel.SelectBuilder {
	return psql.Select(
		"cv.id", "cv.company_name", "cv.location", "cv.roles_offered", "cv.package_min", "cv.package_max",
		"cv.eligibility_criteria", "cv.job_description", "cv.batch", "cv.added_by", "cv.status",
		"cv.created_at", "cv.updated_at",
		"u.name", "u.email",
	).From("company_visits cv").
		LeftJoin("users u ON cv.added_by = u.id")
}

func scanCompanyVisit(row pgx.Row) (*models.CompanyVisit, error) {
	v := &models.CompanyVisit{}
	var creatorName, creatorEmail *string
	err := row.Scan(
		&v.ID, &v.CompanyName, &v.Location, &v.RolesOffered, &v.PackageRange.Min, &v.PackageRange.Max,
		&v.EligibilityCriteria, &v.JobDescription, &v.Batch, &v.AddedBy, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
		&creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}
	if v.AddedBy != nil && creatorName != nil {
		v.Creator = &models.UserSummary{ID: *v.AddedBy, Name: *creatorName}
		if creatorEmail != nil {
			v.Creator.Email = *creatorEmail
		}
	}
	if v.RolesOffered == nil {
		v.RolesOffered = []string{}
	}
	return v, nil
}

// Create inserts a new posting and fills in its generated id and timestamps
func (r *CompanyVisitRepository) Create(ctx context.Context, visit *models.CompanyVisit) error {
	if visit.Status == "" {
		visit.Status = models.CompanyVisitActive
	}

	sql, args, err := psql.Insert("company_visits").
		Columns("company_name", "location", "roles_offered", "package_min", "package_max",
			"eligibility_criteria", "job_description", "batch", "added_by", "status").
		Values(visit.CompanyName, visit.Location, visit.RolesOffered, visit.PackageRange.Min, visit.PackageRange.Max,
			visit.EligibilityCriteria, visit.JobDescription, visit.Batch, visit.AddedBy, visit.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company visit query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&visit.ID, &visit.CreatedAt, &visit.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("company", visit.CompanyName).Msg("Error executing create company visit query")
		return fmt.Errorf("failed to create company visit: %w", err)
	}
	return nil
}

// GetByID retrieves a posting with its creator
func (r *CompanyVisitRepository) GetByID(ctx context.Context, id int64) (*models.CompanyVisit, error) {
	sql, args, err := r.selectCompanyVisitQuery().Where(squirrel.Eq{"cv.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company visit query: %w", err)
	}

	v, err := scanCompanyVisit(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyVisitNotFound
		}
		return nil, fmt.Errorf("failed to get company visit: %w", err)
	}
	return v, nil
}

// ListByStatus returns postings in the given status, newest first
func (r *CompanyVisitRepository) ListByStatus(ctx context.Context, status models.CompanyVisitStatus) ([]*models.CompanyVisit, error) {
	sql, args, err := r.selectCompanyVisitQuery().
		Where(squirrel.Eq{"cv.status": status}).
		OrderBy("cv.created_at DESC", "cv.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list company visits query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list company visits: %w", err)
	}
	defer rows.Close()

	visits := make([]*models.CompanyVisit, 0)
	for rows.Next() {
		v, err := scanCompanyVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company visit row: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company visit rows: %w", err)
	}
	return visits, nil
}

// Update overwrites every editable column of the posting
func (r *CompanyVisitRepository) Update(ctx context.Context, visit *models.CompanyVisit) error {
	sql, args, err := psql.Update("company_visits").
		SetMap(map[string]interface{}{
			"company_name":         visit.CompanyName,
			"location":             visit.Location,
			"roles_offered":        visit.RolesOffered,
			"package_min":          visit.PackageRange.Min,
			"package_max":          visit.PackageRange.Max,
			"eligibility_criteria": visit.EligibilityCriteria,
			"job_description":      visit.JobDescription,
			"batch":                visit.Batch,
			"status":               visit.Status,
			"updated_at":           squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": visit.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update company visit query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&visit.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCompanyVisitNotFound
		}
		return fmt.Errorf("failed to update company visit: %w", err)
	}
	return nil
}

// SetStatus changes only the status of a posting
func (r *CompanyVisitRepository) SetStatus(ctx context.Context, id int64, status models.CompanyVisitStatus) error {
	sql, args, err := psql.Update("company_visits").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build company visit status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update company visit status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyVisitNotFound
	}
	return nil
}

// Delete removes a posting
func (r *CompanyVisitRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("company_visits").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete company visit query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete company visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyVisitNotFound
	}
	return nil
}
