package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cariesreview/catalog/internal/app/models/dto"
	"github.com/cariesreview/catalog/internal/pkg/apperrors"
	"github.com/cariesreview/catalog/internal/pkg/auth"
	"github.com/cariesreview/catalog/internal/pkg/logger"
	"github.com/cariesreview/catalog/internal/pkg/validation"
)

// HandleAPIError maps an error to its status code and writes the standard
// error envelope. Unknown errors are logged and reported as 500.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorDetail(err)
	if status == http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled request error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// ErrorDetail returns the status code and error detail for err.
func ErrorDetail(err error) (int, *dto.ErrorDetail) {
	if vErr, ok := apperrors.AsValidationError(err); ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithField(vErr.Field())
		if len(vErr.Violations) > 0 {
			detail.Message = vErr.Violations[0].Message
			detail = detail.WithDetails(vErr.Violations)
		}
		return http.StatusBadRequest, detail
	}

	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}
	orDefault := func(fallback string) string {
		if message != "" {
			return message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, orDefault("Resource not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, orDefault("Permission denied"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, orDefault("Bad request"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// BindingError converts an error from gin's request binding into an
// application error. Field errors become a ValidationError; malformed JSON
// becomes a bad request.
func BindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return validation.Translate(err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperrors.NewBadRequestError("request body is empty")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.NewBadRequestError("request body is not valid JSON")
	case errors.As(err, &typeErr):
		return apperrors.NewValidationError(typeErr.Field, "must be a "+typeErr.Type.String())
	default:
		return apperrors.NewBadRequestError(err.Error())
	}
}

// BindJSON binds the request body into obj and writes an error response when
// it cannot. It reports whether the handler may continue.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, BindingError(err))
		return false
	}
	return true
}
