package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
)

// HandleAPIError translates service and repository errors into the uniform
// error envelope. Controllers funnel every error through here so that one
// sentinel always renders the same way.
func HandleAPIError(c *gin.Context, err error) {
	var statusErr *apperrors.StatusError
	if errors.As(err, &statusErr) {
		errorDetail := dto.NewErrorDetail(codeFor(statusErr.Err, statusErr.StatusCode), statusErr.Message)
		c.JSON(statusErr.StatusCode, dto.NewErrorResponse(errorDetail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrBootcampNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Bootcamp not found")))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrDuplicateField):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDuplicateField, "Duplicate field value entered")))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDuplicateField, "Email already registered")))
	case errors.Is(err, apperrors.ErrBootcampAlreadyOwned):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "User has already published a bootcamp")))
	case errors.Is(err, apperrors.ErrRoleNotAssignable):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Role cannot be assigned at registration")))
	case errors.Is(err, apperrors.ErrZipcodeNotGeocodable):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Zipcode could not be geocoded")))
	case errors.Is(err, apperrors.ErrPhotoNotImage):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUploadFailed, "Please upload an image file")))
	case errors.Is(err, apperrors.ErrPhotoTooLarge):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUploadFailed, "Uploaded file exceeds the size limit")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized to access this route")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	case errors.Is(err, apperrors.ErrUploadFailed):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUploadFailed, "File upload failed")))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

func codeFor(cause error, statusCode int) dto.ErrorCode {
	switch {
	case errors.Is(cause, apperrors.ErrResourceNotFound):
		return dto.ErrorCodeResourceNotFound
	case errors.Is(cause, apperrors.ErrPermissionDenied):
		return dto.ErrorCodeForbidden
	case errors.Is(cause, apperrors.ErrValidationFailed):
		return dto.ErrorCodeValidationFailed
	case errors.Is(cause, apperrors.ErrPhotoTooLarge), errors.Is(cause, apperrors.ErrPhotoNotImage):
		return dto.ErrorCodeUploadFailed
	case statusCode == http.StatusBadRequest:
		return dto.ErrorCodeValidationFailed
	case statusCode == http.StatusNotFound:
		return dto.ErrorCodeResourceNotFound
	default:
		return dto.ErrorCodeInternalServer
	}
}
