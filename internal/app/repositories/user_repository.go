package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/db"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/dberrors"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

const (
	usersEmailKey      = "users_email_key"
	usersRollNumberKey = "users_roll_number_key"
)

// IUserRepository defines the interface for account persistence
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrRollNumber(ctx context.Context, email, rollNumber string) (bool, error)
	ExistsByRole(ctx context.Context, role models.Role) (bool, error)
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	DeleteWithPlacements(ctx context.Context, id int64) error
	ListWithPlacementCounts(ctx context.Context) ([]*models.UserWithStats, error)
	Stats(ctx context.Context, recentSince time.Time) (*models.UserStats, error)
}

// UserRepository handles account database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

var userColumns = []string{
	"u.id", "u.name", "u.email", "u.password", "u.roll_number", "u.batch", "u.role",
	"u.verified", "u.is_blocked", "u.profile_photo_url", "u.linkedin", "u.github",
	"u.portfolio", "u.skills", "u.bio", "u.created_at", "u.updated_at",
}

func userScanTargets(u *models.User) []any {
	return []any{
		&u.ID, &u.Name, &u.Email, &u.Password, &u.RollNumber, &u.Batch, &u.Role,
		&u.Verified, &u.IsBlocked, &u.ProfilePhotoURL, &u.LinkedIn, &u.GitHub,
		&u.Portfolio, &u.Skills, &u.Bio, &u.CreatedAt, &u.UpdatedAt,
	}
}

// Create inserts a new account and fills in its generated id and timestamps
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := psql.Insert("users").
		Columns("name", "email", "password", "roll_number", "batch", "role", "verified", "is_blocked",
			"profile_photo_url", "linkedin", "github", "portfolio", "skills", "bio").
		Values(user.Name, user.Email, user.Password, user.RollNumber, user.Batch, user.Role, user.Verified, user.IsBlocked,
			user.ProfilePhotoURL, user.LinkedIn, user.GitHub, user.Portfolio, user.Skills, user.Bio).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, usersEmailKey):
			return apperrors.ErrEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, usersRollNumberKey):
			return apperrors.ErrRollNumberExists
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrUserAlreadyRegistered
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users u").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(userScanTargets(user)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByID retrieves an account by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id})
}

// GetByEmail retrieves an account by its normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.email": email})
}

func (r *UserRepository) exists(ctx context.Context, where squirrel.Sqlizer) (bool, error) {
	inner, args, err := psql.Select("1").From("users").Where(where).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS("+inner+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmailOrRollNumber reports whether either identifier is already taken
func (r *UserRepository) ExistsByEmailOrRollNumber(ctx context.Context, email, rollNumber string) (bool, error) {
	return r.exists(ctx, squirrel.Or{squirrel.Eq{"email": email}, squirrel.Eq{"roll_number": rollNumber}})
}

// ExistsByRole reports whether any account holds role
func (r *UserRepository) ExistsByRole(ctx context.Context, role models.Role) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"role": role})
}

// SetBlocked updates the blocked flag of an account
func (r *UserRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	sql, args, err := psql.Update("users").
		Set("is_blocked", blocked).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build block user query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update blocked flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteWithPlacements removes the account's placements and then the account in one transaction
func (r *UserRepository) DeleteWithPlacements(ctx context.Context, id int64) error {
	return db.RunInTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := psql.Delete("placements").Where(squirrel.Eq{"user_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete placements query: %w", err)
		}
		removed, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("failed to delete user placements: %w", err)
		}

		sql, args, err = psql.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete user query: %w", err)
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		logger.Info().Int64("userID", id).Int64("placementsRemoved", removed.RowsAffected()).Msg("User deleted")
		return nil
	})
}

// ListWithPlacementCounts returns every account, newest first, with its number of submissions
func (r *UserRepository) ListWithPlacementCounts(ctx context.Context) ([]*models.UserWithStats, error) {
	columns := append(append([]string{}, userColumns...), "COUNT(p.id) AS placement_count")
	sql, args, err := psql.Select(columns...).
		From("users u").
		LeftJoin("placements p ON p.user_id = u.id").
		GroupBy("u.id").
		OrderBy("u.created_at DESC", "u.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.UserWithStats, 0)
	for rows.Next() {
		item := &models.UserWithStats{}
		targets := append(userScanTargets(&item.User), &item.PlacementCount)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// Stats computes the dashboard counters in a single pass over users
func (r *UserRepository) Stats(ctx context.Context, recentSince time.Time) (*models.UserStats, error) {
	sql, args, err := psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE role = 'student')",
		"COUNT(*) FILTER (WHERE role = 'admin')",
		"COUNT(*) FILTER (WHERE role = 'superadmin')",
		"COUNT(*) FILTER (WHERE is_blocked)",
	).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE created_at >= ?)", recentSince)).
		From("users").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user stats query: %w", err)
	}

	stats := &models.UserStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.TotalUsers, &stats.TotalStudents, &stats.TotalAdmins, &stats.TotalSuperAdmins,
		&stats.BlockedUsers, &stats.RecentRegistrations,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}
	stats.ActiveUsers = stats.TotalUsers - stats.BlockedUsers
	return stats, nil
}
