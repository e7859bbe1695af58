package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// SuperAdminController handles account administration
type SuperAdminController struct {
	superAdminService services.ISuperAdminService
	logger            zerolog.Logger
}

// NewSuperAdminController creates a new SuperAdminController
func NewSuperAdminController(superAdminService services.ISuperAdminService, logger zerolog.Logger) *SuperAdminController {
	return &SuperAdminController{
		superAdminService: superAdminService,
		logger:            logger,
	}
}

// ListUsers returns every account with its placement count
// @Summary All accounts
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Accounts"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /superadmin/users [get]
func (c *SuperAdminController) ListUsers(ctx *gin.Context) {
	users, err := c.superAdminService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserListResponse(users), ""))
}

// Stats returns the dashboard counters
// @Summary Account statistics
// @Description Totals per role, blocked and active accounts, and registrations in the last 30 days
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.UserStats} "Statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /superadmin/stats [get]
func (c *SuperAdminController) Stats(ctx *gin.Context) {
	stats, err := c.superAdminService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// GetUser returns one account with its placements
// @Summary Account details
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetailsResponse} "Account details"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /superadmin/users/{userId} [get]
func (c *SuperAdminController) GetUser(ctx *gin.Context) {
	userID, ok := idParamOrAbort(ctx, "userId", "user")
	if !ok {
		return
	}

	user, placements, err := c.superAdminService.GetUserDetails(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserDetailsResponse(user, placements), ""))
}

// Block prevents an account from logging in or using existing sessions
// @Summary Block account
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Account blocked"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID or superadmin target"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /superadmin/users/{userId}/block [put]
func (c *SuperAdminController) Block(ctx *gin.Context) {
	userID, ok := idParamOrAbort(ctx, "userId", "user")
	if !ok {
		return
	}

	user, err := c.superAdminService.Block(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Msg("Account blocked")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user), "User blocked successfully"))
}

// Unblock restores access to a blocked account
// @Summary Unblock account
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Account unblocked"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID or superadmin target"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /superadmin/users/{userId}/unblock [put]
func (c *SuperAdminController) Unblock(ctx *gin.Context) {
	userID, ok := idParamOrAbort(ctx, "userId", "user")
	if !ok {
		return
	}

	user, err := c.superAdminService.Unblock(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Msg("Account unblocked")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponse(user), "User unblocked successfully"))
}

// Delete removes an account and all of its placements
// @Summary Delete account
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Account deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID or superadmin target"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /superadmin/users/{userId} [delete]
func (c *SuperAdminController) Delete(ctx *gin.Context) {
	userID, ok := idParamOrAbort(ctx, "userId", "user")
	if !ok {
		return
	}

	if err := c.superAdminService.Delete(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Msg("Account deleted with its placements")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "User and associated placements deleted"}, "User deleted successfully"))
}
