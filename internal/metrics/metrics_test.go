package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordDeliveryQuote(t *testing.T) {
	before := testutil.ToFloat64(DeliveryQuotesTotal.WithLabelValues("per_mile", "success"))

	RecordDeliveryQuote(2*time.Millisecond, "per_mile", "success")
	RecordDeliveryQuote(time.Millisecond, "per_mile", "invalid_input")

	assert.Equal(t, before+1, testutil.ToFloat64(DeliveryQuotesTotal.WithLabelValues("per_mile", "success")))
}

func TestRecordHoursFormat(t *testing.T) {
	before := testutil.ToFloat64(StoreHoursFormatsTotal.WithLabelValues("success"))
	RecordHoursFormat("success")
	assert.Equal(t, before+1, testutil.ToFloat64(StoreHoursFormatsTotal.WithLabelValues("success")))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))
	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)
	UpdateCacheMetrics(75, 100)

	assert.Equal(t, 75.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("mongodb-settings", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-settings")))

	SetCircuitBreakerState("mongodb-settings", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-settings")))
}

func TestRecordAsyncLog(t *testing.T) {
	before := testutil.ToFloat64(AsyncLogEntriesTotal.WithLabelValues("written"))
	RecordAsyncLog("written", 3)
	assert.Equal(t, before+3, testutil.ToFloat64(AsyncLogEntriesTotal.WithLabelValues("written")))
}
