package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
)

const internalServerErrorMessage = "Internal server error"

// HandleAPIError maps a service error to its status code and error response
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithMessage(c, err, internalServerErrorMessage)
}

// HandleAPIErrorWithMessage is HandleAPIError with the message used for unexpected errors.
// The cause of a 500 is logged, never returned.
func HandleAPIErrorWithMessage(c *gin.Context, err error, internalMessage string) {
	status, detail := classifyError(err)
	if status == http.StatusInternalServerError {
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, internalMessage).WithSeverity(dto.ErrorSeverityCritical)
		if errors.Is(err, apperrors.ErrPersistence) {
			detail.Code = dto.ErrorCodeDatabaseError
		}
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(ContextRequestID)).
			Msg("Request failed")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, validationDetail(err)

	case errors.Is(err, apperrors.ErrSubjectNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Subject not found.")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found.")

	case errors.Is(err, apperrors.ErrSubjectURLExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "A subject with this url already exists.").WithField("url")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")

	default:
		return http.StatusInternalServerError, nil
	}
}

// validationDetail carries the field of an apperrors.NewValidationError into the response
func validationDetail(err error) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if field, ok := custom.Details["field"].(string); ok {
			detail.WithField(field)
		}
	}
	return detail
}
