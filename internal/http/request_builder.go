package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
)

// Envelopes are pooled; gin serializes synchronously, so an envelope can go back
// to its pool as soon as the response is written.
var (
	successResponsePool = sync.Pool{New: func() interface{} { return &dto.SuccessResponse{} }}
	errorResponsePool   = sync.Pool{New: func() interface{} { return &dto.ErrorResponse{} }}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// Validator is implemented by request DTOs that check themselves after decoding.
type Validator interface {
	Validate() error
}

// BuildRequest decodes the JSON body of c into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate decodes the body and runs Validate when T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the service's success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data in the success envelope with the given status.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK writes data with 200 OK.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error aborts with the translated messageKey. A non-nil err is attached to the
// context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(statusCode, dto.ErrCodeFromStatus(statusCode), message, nil, err)
}

// Fail aborts with the status, code and details middleware.MapError derives from err.
func (b *ResponseBuilder) Fail(err error) {
	status, mapped := middleware.MapError(err, i18n.GetLocale(b.c))
	b.abort(status, mapped.Error, mapped.Message, mapped.Details, err)
}

// ErrorWithDetails aborts with field level details, e.g. {"quotes": "must contain at most 100 quotes"}.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(statusCode, dto.ErrCodeFromStatus(statusCode), message, details, nil)
}

func (b *ResponseBuilder) abort(status int, code, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = code
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(status, resp)
	putErrorResponse(resp)
}
