package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// AdminController handles placement moderation
type AdminController struct {
	placementService services.IPlacementService
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(placementService services.IPlacementService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		placementService: placementService,
		logger:           logger,
	}
}

// ListPending returns placements awaiting review
// @Summary Pending placements
// @Description Lists pending placements with the submitting student's details, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlacementListResponse} "Pending placements"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/placements/pending [get]
func (c *AdminController) ListPending(ctx *gin.Context) {
	placements, err := c.placementService.ListPending(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPlacementListResponse(placements), ""))
}

// ListAll returns every placement
// @Summary All placements
// @Description Lists placements in every status with the submitting student's details, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlacementListResponse} "All placements"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/placements [get]
func (c *AdminController) ListAll(ctx *gin.Context) {
	placements, err := c.placementService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPlacementListResponse(placements), ""))
}

// Approve marks a placement approved and records the reviewer
// @Summary Approve placement
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Router /admin/placements/{id}/approve [put]
func (c *AdminController) Approve(ctx *gin.Context) {
	id, ok := idParamOrAbort(ctx, "id", "placement")
	if !ok {
		return
	}
	adminID, ok := currentUserIDOrAbort(ctx)
	if !ok {
		return
	}

	placement, err := c.placementService.Approve(ctx.Request.Context(), id, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("placementID", id).Int64("adminID", adminID).Msg("Placement approved")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(placement, "Placement approved"))
}

// Reject marks a placement rejected
// @Summary Reject placement
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement rejected"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Router /admin/placements/{id}/reject [put]
func (c *AdminController) Reject(ctx *gin.Context) {
	id, ok := idParamOrAbort(ctx, "id", "placement")
	if !ok {
		return
	}

	placement, err := c.placementService.Reject(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("placementID", id).Msg("Placement rejected")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(placement, "Placement rejected"))
}
