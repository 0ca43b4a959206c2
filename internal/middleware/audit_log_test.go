package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/mocks"
)

func captureEntry(m *mocks.MockLoggingService) chan *model.LogEntry {
	ch := make(chan *model.LogEntry, 1)
	m.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) { ch <- args.Get(1).(*model.LogEntry) }).
		Return(nil).Once()
	return ch
}

func waitEntry(t *testing.T, ch chan *model.LogEntry) *model.LogEntry {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		require.FailNow(t, "audit entry was not stored")
		return nil
	}
}

func TestAuditLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		path             string
		route            string
		apiKey           string
		fields           map[string]interface{}
		expectedLocation string
		expectedActor    string
	}{
		{
			name:             "location from route param and actor from API key",
			route:            "/locations/:location_id/settings",
			path:             "/locations/store-1/settings",
			apiKey:           "secret-key-9876",
			expectedLocation: "store-1",
			expectedActor:    "key:...9876",
		},
		{
			name:             "location from fields",
			route:            "/delivery/quote",
			path:             "/delivery/quote",
			fields:           map[string]interface{}{"location_id": "store-2", "total": "12.50"},
			expectedLocation: "store-2",
		},
		{
			name:  "anonymous without location",
			route: "/delivery/quote",
			path:  "/delivery/quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLogging := mocks.NewMockLoggingService(t)
			ch := captureEntry(mockLogging)

			keys := map[string]bool{}
			if tt.apiKey != "" {
				keys[tt.apiKey] = true
			}

			router := gin.New()
			router.Use(RequestID(), APIKeyAuth(keys))
			router.POST(tt.route, func(c *gin.Context) {
				AuditLog(mockLogging, c, model.ActionUpdateSettings, "settings updated", tt.fields)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			req.Header.Set(APIKeyHeader, tt.apiKey)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			entry := waitEntry(t, ch)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "info", entry.Level)
			assert.Equal(t, model.ActionUpdateSettings, entry.ActionType)
			assert.Equal(t, "settings updated", entry.Message)
			assert.Equal(t, tt.path, entry.Path)
			assert.Equal(t, http.MethodPost, entry.Method)
			assert.NotEmpty(t, entry.RequestID)
			assert.Equal(t, tt.expectedLocation, entry.LocationID)
			assert.Equal(t, tt.expectedActor, entry.Actor)
			assert.Empty(t, entry.Error)
		})
	}
}

func TestAuditLog_NilService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		AuditLog(nil, c, model.ActionDeliveryQuote, "quote", nil)
		AuditLogError(nil, c, model.ActionDeliveryQuote, "quote", assert.AnError, nil)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLogError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		err           error
		expectedError string
	}{
		{name: "records error message", err: assert.AnError, expectedError: assert.AnError.Error()},
		{name: "tolerates nil error", err: nil, expectedError: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLogging := mocks.NewMockLoggingService(t)
			ch := captureEntry(mockLogging)

			router := gin.New()
			router.Use(RequestID())
			router.POST("/delivery/quotes/batch", func(c *gin.Context) {
				AuditLogError(mockLogging, c, model.ActionBatchQuote, "batch failed", tt.err, map[string]interface{}{"count": 3})
				c.Status(http.StatusBadRequest)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/delivery/quotes/batch", nil))

			entry := waitEntry(t, ch)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", entry.Level)
			assert.Equal(t, model.ActionBatchQuote, entry.ActionType)
			assert.Equal(t, tt.expectedError, entry.Error)
			assert.Equal(t, 3, entry.Fields["count"])
		})
	}
}

func TestAuditLog_UsesAsyncLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockLogging := mocks.NewMockLoggingService(t)
	ch := make(chan []*model.LogEntry, 1)
	mockLogging.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { ch <- args.Get(1).([]*model.LogEntry) }).
		Return(nil).Once()

	InitAsyncLogger(mockLogging, AsyncLoggerConfig{BatchSize: 1, FlushInterval: 10 * time.Millisecond})
	t.Cleanup(StopAsyncLogger)

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		AuditLog(mockLogging, c, model.ActionDeliveryQuote, "quote", nil)
		c.Status(http.StatusOK)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/test", nil))

	select {
	case batch := <-ch:
		require.Len(t, batch, 1)
		assert.Equal(t, model.ActionDeliveryQuote, batch[0].ActionType)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "audit entry was not written")
	}
}
