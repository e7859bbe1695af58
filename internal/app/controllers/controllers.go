// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/middleware"
)

var errInvalidID = errors.New("id must be a positive integer")

// parseIDParam parses a positive int64 path parameter
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(paramName), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// idParamOrAbort writes a 400 and returns false when the path id is malformed
func idParamOrAbort(ctx *gin.Context, paramName, label string) (int64, bool) {
	id, err := parseIDParam(ctx, paramName)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid "+label+" ID").
			WithField(paramName).
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// currentUserIDOrAbort reads the account id set by JWTAuth
func currentUserIDOrAbort(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}
