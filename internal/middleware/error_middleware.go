package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// errorMapping ties a sentinel to its HTTP status, code and default message
type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// Order matters: the first match wins
var errorMappings = []errorMapping{
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrPlacementNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Placement not found"},
	{apperrors.ErrCompanyVisitNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Company visit not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},

	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrRollNumberExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Roll number already exists"},
	{apperrors.ErrUserAlreadyRegistered, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "User with this email or roll number already exists"},

	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},

	{apperrors.ErrAccountBlocked, http.StatusForbidden, dto.ErrorCodeAccountBlocked, "Account is blocked"},
	{apperrors.ErrInvalidSecretCode, http.StatusForbidden, dto.ErrorCodeInvalidSecretCode, "Invalid secret code"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},

	{apperrors.ErrInvalidEmail, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email"},
	{apperrors.ErrInvalidPassword, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Invalid password"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrMissingDocuments, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Both offer letter and ID card are required"},
	{apperrors.ErrSuperAdminImmutable, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Superadmin accounts cannot be modified"},
	{apperrors.ErrInvalidPlacementState, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Invalid placement status"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
}

// ResolveError maps err to the status and error detail sent to the client.
// Unknown errors become a generic 500; their text never reaches the client.
func ResolveError(err error) (int, *dto.ErrorDetail) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		message := m.message
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			message = customErr.Message
		}

		detail := dto.NewErrorDetail(m.code, message)
		if customErr != nil {
			if field, ok := customErr.Details["field"].(string); ok {
				detail = detail.WithField(field)
			}
		}
		return m.status, detail
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ResolveError(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

// HandleBindingError reports a failed ShouldBind call as a 400
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

// Recovery turns panics into a logged 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	})
}
