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
	"github.com/yigit/placementportal/internal/pkg/auth"
	"github.com/yigit/placementportal/internal/pkg/validation"
)

// RegistrationSecrets are the shared codes gating elevated registration
type RegistrationSecrets struct {
	AdminSecret      string
	SuperAdminSecret string
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	secrets    RegistrationSecrets
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	secrets RegistrationSecrets,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		secrets:    secrets,
		logger:     logger,
	}
}

func validationError(message, field string) error {
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, message).
		WithDetails(map[string]interface{}{"field": field})
}

// normalizeRegistration canonicalizes identifiers in place and validates them
func normalizeRegistration(req *dto.RegisterRequest) error {
	req.Email = validation.NormalizeEmail(req.Email)
	req.RollNumber = validation.NormalizeRollNumber(req.RollNumber)

	if !validation.NewStringValidation(req.Name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return validationError("name must be between 2 and 100 characters", "name")
	}
	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "email must be a valid email address")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}
	if !validation.IsValidRollNumber(req.RollNumber) {
		return validationError("rollNumber must contain only letters, digits, '-' or '/'", "rollNumber")
	}
	if req.Batch == "" {
		return validationError("batch is required", "batch")
	}
	return nil
}

// createAccount performs the uniqueness check and persists a new account with the given role
func (s *AuthService) createAccount(ctx context.Context, req *dto.RegisterRequest, role models.Role) (*models.User, error) {
	if err := normalizeRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmailOrRollNumber(ctx, req.Email, req.RollNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrUserAlreadyRegistered, "User with this email or roll number already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		RollNumber: req.RollNumber,
		Batch:      req.Batch,
		Role:       role,
		Verified:   role.IsStaff(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still hit the unique constraints
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrRollNumberExists, apperrors.ErrUserAlreadyRegistered) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserAlreadyRegistered, "User with this email or roll number already exists")
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("Account registered")
	return user, nil
}

// Register creates a student account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	return s.createAccount(ctx, req, models.RoleStudent)
}

// RegisterAdmin creates a verified admin account when the admin secret matches
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.User, error) {
	if !auth.SecretMatches(s.secrets.AdminSecret, req.AdminSecret) {
		s.logger.Warn().Str("email", req.Email).Msg("Admin registration with invalid secret code")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidSecretCode, "Invalid admin secret code")
	}
	return s.createAccount(ctx, &req.RegisterRequest, models.RoleAdmin)
}

// RegisterSuperAdmin creates a verified superadmin account when the superadmin secret matches
func (s *AuthService) RegisterSuperAdmin(ctx context.Context, req *dto.RegisterSuperAdminRequest) (*models.User, error) {
	if !auth.SecretMatches(s.secrets.SuperAdminSecret, req.SuperSecretCode) {
		s.logger.Warn().Str("email", req.Email).Msg("Superadmin registration with invalid secret code")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidSecretCode, "Invalid super admin secret code")
	}
	return s.createAccount(ctx, &req.RegisterRequest, models.RoleSuperAdmin)
}

// Login verifies credentials and issues a session token.
// Unknown email and wrong password are indistinguishable. A blocked account is refused before the password check.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := validation.NormalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if user.IsBlocked {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountBlocked, "Your account has been blocked by admin. Contact support.")
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Debug().Int64("userID", user.ID).Msg("Login successful")
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}

// GetCurrentUser returns the caller's account
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return user, nil
}

// Authenticate resolves a bearer token to a live account.
// The account is re-read on every call so deletion and blocking take effect immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "User not found")
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if user.IsBlocked {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountBlocked, "Your account has been blocked. Contact support.")
	}
	return user, nil
}
