package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/logger"
	"github.com/guttosm/storefront-service/internal/service"
)

// ErrorHandler returns a middleware that turns the last gin context error into an
// error response when the handler did not write one. See MapError for the mapping.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)
		status, resp := MapError(err, i18n.GetLocale(c))

		log := logger.Logger()
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Msg("Request error")

		if !c.Writer.Written() {
			c.JSON(status, resp.WithRequestID(requestID))
		}
	}
}

// MapError converts a handler error into an HTTP status and localized error body.
//
//   - service validation errors: 400 invalid_request or invalid_config, with field details
//   - dto validation errors: 400 invalid_request, with field details
//   - service.ErrRepositoryNotConfigured: 503 service_unavailable
//   - context deadline exceeded: 504 timeout
//   - anything else: 500 internal_error
func MapError(err error, locale string) (int, dto.ErrorResponse) {
	t := i18n.GetTranslator()

	var svcErr *service.ValidationError
	if errors.As(err, &svcErr) {
		code, key := dto.ErrCodeInvalidRequest, i18n.ErrKeyValidationFailed
		if errors.Is(svcErr, service.ErrInvalidConfig) {
			code, key = dto.ErrCodeInvalidConfig, i18n.ErrKeyInvalidConfig
		}
		return http.StatusBadRequest, dto.NewError(code, t.Translate(key, locale)).
			WithDetails(map[string]string{svcErr.Field: svcErr.Message})
	}

	var dtoErr *dto.ValidationError
	if errors.As(err, &dtoErr) {
		return http.StatusBadRequest, dto.NewError(dto.ErrCodeInvalidRequest, t.Translate(i18n.ErrKeyValidationFailed, locale)).
			WithDetails(map[string]string{dtoErr.Field: dtoErr.Message})
	}

	switch {
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		return http.StatusServiceUnavailable, dto.NewError(dto.ErrCodeServiceUnavailable, t.Translate(i18n.ErrKeyStorageUnavailable, locale))
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.NewError(dto.ErrCodeTimeout, t.Translate(i18n.ErrKeyTimeout, locale))
	}

	return http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, t.Translate(i18n.ErrKeyInternalError, locale))
}
