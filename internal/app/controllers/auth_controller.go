package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// AuthController handles registration, login and the current session
type AuthController struct {
	authService services.IAuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.IAuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles student registration
// @Summary Register a student
// @Description Creates a student account. Email and roll number must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Email or roll number already registered"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	c.respondRegistered(ctx, user, err)
}

// RegisterAdmin handles admin registration
// @Summary Register an admin
// @Description Creates an admin account when the admin secret code matches
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterAdminRequest true "Admin registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 403 {object} dto.ErrorResponse "Invalid secret code"
// @Failure 409 {object} dto.ErrorResponse "Email or roll number already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register-admin [post]
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid admin registration request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, err := c.authService.RegisterAdmin(ctx.Request.Context(), &req)
	c.respondRegistered(ctx, user, err)
}

// RegisterSuperAdmin handles superadmin registration
// @Summary Register a superadmin
// @Description Creates a verified superadmin account when the superadmin secret code matches
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterSuperAdminRequest true "Superadmin registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 403 {object} dto.ErrorResponse "Invalid secret code"
// @Failure 409 {object} dto.ErrorResponse "Email or roll number already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register-superadmin [post]
func (c *AuthController) RegisterSuperAdmin(ctx *gin.Context) {
	var req dto.RegisterSuperAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid superadmin registration request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, err := c.authService.RegisterSuperAdmin(ctx.Request.Context(), &req)
	c.respondRegistered(ctx, user, err)
}

func (c *AuthController) respondRegistered(ctx *gin.Context, user *models.User, err error) {
	if err != nil {
		c.logger.Warn().Err(err).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.Role)).
		Msg("Account registered")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.RegisterResponse{
		UserID: user.ID,
		User:   dto.NewUserResponse(user),
	}, "Registration successful"))
}

// Login handles user login
// @Summary User login
// @Description Authenticates an account and returns a session token valid for 7 days
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account is blocked"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	authResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(authResponse, "Login successful"))
}

// Me returns the authenticated account
// @Summary Current account
// @Description Returns the public profile of the authenticated account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Current account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Account is blocked"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := currentUserIDOrAbort(ctx)
	if !ok {
		return
	}

	user, err := c.authService.GetCurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user), ""))
}
