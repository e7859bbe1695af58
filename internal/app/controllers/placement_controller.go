package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// PlacementController handles student-facing placement endpoints
type PlacementController struct {
	placementService services.IPlacementService
	logger           zerolog.Logger
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.IPlacementService, logger zerolog.Logger) *PlacementController {
	return &PlacementController{
		placementService: placementService,
		logger:           logger,
	}
}

// optionalFormFile returns nil when the field is absent so the service can report missing documents
func optionalFormFile(ctx *gin.Context, field string) *multipart.FileHeader {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

// Submit handles a placement submission
// @Summary Submit a placement
// @Description Uploads the offer letter and ID card and creates a pending placement record
// @Tags placements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param studentName formData string true "Student name"
// @Param company formData string true "Company name"
// @Param package formData number true "Package in LPA"
// @Param batch formData string true "Graduation batch"
// @Param interviewExperience formData string false "Interview experience"
// @Param isAnonymous formData boolean false "Hide the student's identity in public listings"
// @Param offerLetter formData file true "Offer letter"
// @Param idCard formData file true "College ID card"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitPlacementResponse} "Placement submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid form or missing documents"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/submit [post]
func (c *PlacementController) Submit(ctx *gin.Context) {
	userID, ok := currentUserIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SubmitPlacementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Invalid placement submission form")
		middleware.HandleBindingError(ctx, err)
		return
	}

	placement, err := c.placementService.Submit(
		ctx.Request.Context(),
		userID,
		&req,
		optionalFormFile(ctx, "offerLetter"),
		optionalFormFile(ctx, "idCard"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.SubmitPlacementResponse{
		PlacementID: placement.ID,
		Status:      placement.Status,
	}, "Placement submitted for review"))
}

// ListApproved returns the public placement listing
// @Summary Approved placements
// @Description Lists approved placements, newest first. Anonymous records hide the student's identity.
// @Tags placements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PublicPlacementListResponse} "Approved placements"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements [get]
func (c *PlacementController) ListApproved(ctx *gin.Context) {
	placements, err := c.placementService.ListApproved(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.NewPublicPlacementList(placements)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PublicPlacementListResponse{
		Placements: list,
		Count:      len(list),
	}, ""))
}

// GetApproved returns one approved placement
// @Summary Approved placement
// @Description Returns an approved placement. Pending and rejected records are reported as not found.
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=dto.PublicPlacementResponse} "Placement"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Router /placements/{id} [get]
func (c *PlacementController) GetApproved(ctx *gin.Context) {
	id, ok := idParamOrAbort(ctx, "id", "placement")
	if !ok {
		return
	}

	placement, err := c.placementService.GetApproved(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPublicPlacementResponse(placement), ""))
}

// ListMine returns the caller's own submissions
// @Summary My placements
// @Description Lists the caller's placements in any status, newest first
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlacementListResponse} "Own placements"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/my [get]
func (c *PlacementController) ListMine(ctx *gin.Context) {
	userID, ok := currentUserIDOrAbort(ctx)
	if !ok {
		return
	}

	placements, err := c.placementService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPlacementListResponse(placements), ""))
}
