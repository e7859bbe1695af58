package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// CompanyVisitController handles recruitment postings
type CompanyVisitController struct {
	visitService services.ICompanyVisitService
	logger       zerolog.Logger
}

// NewCompanyVisitController creates a new CompanyVisitController
func NewCompanyVisitController(visitService services.ICompanyVisitService, logger zerolog.Logger) *CompanyVisitController {
	return &CompanyVisitController{
		visitService: visitService,
		logger:       logger,
	}
}

// List returns active company visits
// @Summary Active company visits
// @Description Lists active recruitment postings, newest first
// @Tags company-visits
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CompanyVisitListResponse} "Active company visits"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /company-visits [get]
func (c *CompanyVisitController) List(ctx *gin.Context) {
	visits, err := c.visitService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCompanyVisitListResponse(visits), ""))
}

// Get returns a single company visit
// @Summary Company visit
// @Tags company-visits
// @Produce json
// @Param id path int true "Company visit ID"
// @Success 200 {object} dto.APIResponse{data=models.CompanyVisit} "Company visit"
// @Failure 400 {object} dto.ErrorResponse "Invalid company visit ID"
// @Failure 404 {object} dto.ErrorResponse "Company visit not found"
// @Router /company-visits/{id} [get]
func (c *CompanyVisitController) Get(ctx *gin.Context) {
	id, ok := idParamOrAbort(ctx, "id", "company visit")
	if !ok {
		return
	}

	visit, err := c.visitService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(visit, ""))
}

// Create adds a company visit
// @Summary Create company visit
// @Tags company-visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyVisitRequest true "Company visit"
// @Success 201 {object} dto.APIResponse{data=models.CompanyVisit} "Company visit created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /company-visits [post]
func (c *CompanyVisitController) Create(ctx *gin.Context) {
	adminID, ok := currentUserIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.CreateCompanyVisitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	visit, err := c.visitService.Create(ctx.Request.Context(), adminID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("companyVisitID", visit.ID).Int64("adminID", adminID).Msg("Company visit created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(visit, "Company visit created"))
}

// Update changes the provided fields of a company visit
// @Summary Update company visit
// @Description Partial update; omitted fields keep their value
// @Tags company-visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company visit ID"
// @Param request body dto.UpdateCompanyVisitRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.CompanyVisit} "Company visit updated"
// @Failure 400 {object} dto.ErrorResponse "Validation error or empty update"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company visit not found"
// @Router /company-visits/{id} [put]
func (c *CompanyVisitController) Update(ctx *gin.Context) {
	id, ok := idParamOrAbort(ctx, "id", "company visit")
	if !ok {
		return
	}

	var req dto.UpdateCompanyVisitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	visit, err := c.visitService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(visit, "Company visit updated"))
}

// Delete removes a company visit
// @Summary Delete company visit
// @Tags company-visits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company visit ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Company visit deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid company visit ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company visit not found"
// @Router /company-visits/{id} [delete]
func (c *CompanyVisitController) Delete(ctx *gin.Context) {
	id, ok := idParamOrAbort(ctx, "id", "company visit")
	if !ok {
		return
	}

	if err := c.visitService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("companyVisitID", id).Msg("Company visit deleted")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Company visit deleted"}, "Company visit deleted"))
}

// Archive hides a company visit from the public listing
// @Summary Archive company visit
// @Tags company-visits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company visit ID"
// @Success 200 {object} dto.APIResponse{data=models.CompanyVisit} "Company visit archived"
// @Failure 400 {object} dto.ErrorResponse "Invalid company visit ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company visit not found"
// @Router /company-visits/{id}/archive [put]
func (c *CompanyVisitController) Archive(ctx *gin.Context) {
	id, ok := idParamOrAbort(ctx, "id", "company visit")
	if !ok {
		return
	}

	visit, err := c.visitService.Archive(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(visit, "Company visit archived"))
}
