//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

func integrationDefaults() model.StoreSettings {
	return model.StoreSettings{
		Name: "Default Store",
		Delivery: model.FeeConfig{
			FeeType:               model.FeeTypeFlat,
			FlatFee:               decimal.RequireFromString("5.00"),
			FreeDeliveryThreshold: decimal.RequireFromString("50.00"),
		},
	}
}

func integrationRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIntegration_RateLimiting(t *testing.T) {
	handler := NewHandler(service.NewDeliveryPricingService(), service.NewSettingsService(nil, integrationDefaults()))
	router := NewRouter(handler, NewHealthHandler(), RouterConfig{
		RateLimit:  10,
		RateWindow: time.Second,
	})

	limited := 0
	for i := 0; i < 15; i++ {
		w := integrationRequest(router, http.MethodPost, "/api/delivery/quote", `{"subtotal":"10"}`, nil)
		if w.Code == http.StatusTooManyRequests {
			limited++
			assert.Equal(t, "1", w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, 5, limited)
}

func TestIntegration_APIKeyAuth(t *testing.T) {
	handler := NewHandler(service.NewDeliveryPricingService(), service.NewSettingsService(nil, integrationDefaults()))
	router := NewRouter(handler, NewHealthHandler(), RouterConfig{
		APIKeys: map[string]bool{"valid-key": true},
	})

	tests := []struct {
		name           string
		method         string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{"reads need no key", http.MethodGet, "/api/locations/store-1/settings", "", http.StatusOK},
		{"quotes need no key", http.MethodPost, "/api/delivery/quote", "", http.StatusOK},
		{"write without key", http.MethodPut, "/api/locations/store-1/settings", "", http.StatusUnauthorized},
		{"write with invalid key", http.MethodPut, "/api/locations/store-1/settings", "nope", http.StatusUnauthorized},
		{"write with valid key", http.MethodPut, "/api/locations/store-1/settings", "valid-key", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.apiKey != "" {
				headers[middleware.APIKeyHeader] = tt.apiKey
			}
			body := `{"subtotal":"10"}`
			if tt.method == http.MethodPut {
				body = `{"name":"North"}`
			}
			w := integrationRequest(router, tt.method, tt.path, body, headers)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func setupHandlerWithMongoDBIntegrationRouter(t *testing.T, dbName string) (*gin.Engine, *repository.MongoDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewMongoDB(getSharedContainerURI(), dbName)
	require.NoError(t, err)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(
		repository.NewLogsRepository(db),
		circuitbreaker.New(circuitbreaker.DefaultConfig()),
	)
	loggingService := service.NewLoggingService(logsRepo)

	settingsRepo := repository.NewStoreSettingsRepositoryWithCircuitBreaker(
		repository.NewStoreSettingsRepository(db),
		circuitbreaker.New(circuitbreaker.DefaultConfig()),
	)
	settingsCache := cache.NewMemoryCache(100, time.Minute)
	t.Cleanup(settingsCache.Stop)
	settings := service.NewSettingsService(settingsRepo, integrationDefaults(), service.WithSettingsCache(settingsCache))

	handler := NewHandler(service.NewDeliveryPricingService(), settings)
	healthHandler := NewHealthHandler()
	healthHandler.RegisterChecker("mongodb", HealthCheckFunc(db.HealthCheck))

	cfg := RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		APIKeys:        map[string]bool{"admin-1234": true},
		LoggingService: loggingService,
	}

	return NewRouter(handler, healthHandler, cfg), db
}

func TestHandler_SettingsLifecycle_WithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	dbName := sanitizeDBNameForHTTP(t.Name())
	router, db := setupHandlerWithMongoDBIntegrationRouter(t, dbName)
	defer func() {
		_ = db.Close(ctx)
	}()

	admin := map[string]string{middleware.APIKeyHeader: "admin-1234"}

	t.Run("defaults before any update", func(t *testing.T) {
		w := integrationRequest(router, http.MethodPost, "/api/delivery/quote", `{"location_id":"store-1","subtotal":"20"}`, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "25.00", decodeData[dto.DeliveryQuoteResponse](t, w).Total)
	})

	t.Run("update creates version 1", func(t *testing.T) {
		body := `{"name":"Store One","delivery":{"fee_type":"per_mile","per_mile_fee":"2.00","free_delivery_threshold":"40"},"hours":{"Mon":"9:00 AM - 5:00 PM","Fri":"9:00 AM - 1:00 AM"}}`
		w := integrationRequest(router, http.MethodPut, "/api/locations/store-1/settings", body, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decodeData[dto.SettingsResponse](t, w)
		assert.Equal(t, 1, resp.Version)
		assert.Equal(t, "key:...1234", resp.UpdatedBy)
	})

	t.Run("quote uses stored fee config", func(t *testing.T) {
		w := integrationRequest(router, http.MethodPost, "/api/delivery/quote", `{"location_id":"store-1","subtotal":"20","distance_miles":"3"}`, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decodeData[dto.DeliveryQuoteResponse](t, w)
		assert.Equal(t, "6.00", resp.DeliveryFee)
		assert.Equal(t, "26.00", resp.Total)
		assert.Equal(t, "20.00", resp.FreeDeliveryRemaining)
	})

	t.Run("hours use stored schedule", func(t *testing.T) {
		w := integrationRequest(router, http.MethodGet, "/api/locations/store-1/hours?extended=true", "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decodeData[dto.HoursResponse](t, w)
		assert.Equal(t, "Mon - Mon: 9:00 AM - 5:00 PM | Fri - Fri: 9:00 AM - 1:00 AM (Extended hours on weekends)", resp.Summary)
		assert.Equal(t, "Friday 9:00 AM - 1:00 AM", resp.ExtendedNote)
	})

	t.Run("invalid update keeps active version", func(t *testing.T) {
		w := integrationRequest(router, http.MethodPut, "/api/locations/store-1/settings", `{"hours":{"Mon":"nine to five"}}`, admin)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = integrationRequest(router, http.MethodGet, "/api/locations/store-1/settings", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decodeData[dto.SettingsResponse](t, w).Version)
	})

	t.Run("history lists versions newest first", func(t *testing.T) {
		w := integrationRequest(router, http.MethodPut, "/api/locations/store-1/settings", `{"name":"Store One Renamed"}`, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = integrationRequest(router, http.MethodGet, "/api/locations/store-1/settings/history", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeData[dto.SettingsHistoryResponse](t, w)
		require.Len(t, resp.Versions, 2)
		assert.Equal(t, 2, resp.Versions[0].Version)
		assert.True(t, resp.Versions[0].Active)
		assert.Equal(t, 1, resp.Versions[1].Version)
		assert.False(t, resp.Versions[1].Active)
	})

	t.Run("readiness checks mongodb", func(t *testing.T) {
		w := integrationRequest(router, http.MethodGet, "/readyz", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	})
}

func TestHandler_AuditLogging_Integration(t *testing.T) {
	ctx := context.Background()

	dbName := sanitizeDBNameForHTTP(t.Name())
	router, db := setupHandlerWithMongoDBIntegrationRouter(t, dbName)
	defer func() {
		_ = db.Close(ctx)
	}()

	w := integrationRequest(router, http.MethodPost, "/api/delivery/quote", `{"location_id":"store-7","subtotal":"12"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	logsRepo := repository.NewLogsRepository(db)
	require.Eventually(t, func() bool {
		logs, err := logsRepo.Query(ctx, repository.LogQueryOptions{
			LocationID: "store-7",
			ActionType: model.ActionDeliveryQuote,
		})
		return err == nil && len(logs) >= 1
	}, 5*time.Second, 50*time.Millisecond)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	requestID, _ := body["request_id"].(string)
	require.NotEmpty(t, requestID)

	require.Eventually(t, func() bool {
		logs, err := logsRepo.Query(ctx, repository.LogQueryOptions{RequestID: requestID})
		return err == nil && len(logs) >= 2
	}, 5*time.Second, 50*time.Millisecond, "expected request and audit entries")
}
