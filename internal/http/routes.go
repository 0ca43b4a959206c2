package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-service/internal/middleware"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// StorefrontRoutes registers the pricing, hours and settings endpoints.
type StorefrontRoutes struct {
	handler *Handler
}

var (
	_ PublicRouteGroup    = (*StorefrontRoutes)(nil)
	_ ProtectedRouteGroup = (*StorefrontRoutes)(nil)
)

// NewStorefrontRoutes creates the storefront route group.
func NewStorefrontRoutes(handler *Handler) *StorefrontRoutes {
	return &StorefrontRoutes{handler: handler}
}

// RegisterPublicRoutes registers the read and pricing routes.
func (r *StorefrontRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/cart/subtotal", r.handler.CartSubtotal)
	rg.POST("/delivery/quote", r.handler.DeliveryQuote)
	rg.POST("/delivery/quotes/batch", r.handler.DeliveryQuoteBatch)
	rg.POST("/store-hours/format", r.handler.FormatHours)

	locations := rg.Group("/locations/:location_id")
	locations.GET("/hours", r.handler.LocationHours)
	locations.GET("/settings", r.handler.GetSettings)
	locations.GET("/settings/history", r.handler.SettingsHistory)
}

// RegisterProtectedRoutes registers the settings write route behind the admin API key
// guard. Without configured keys the route is open.
func (r *StorefrontRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	handlers := []gin.HandlerFunc{middleware.APIKeyAuth(cfg.APIKeys)}
	if cfg.AdminRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.AdminRateLimit, cfg.RateWindow)
		handlers = append(handlers, limiter.CallerRateLimit())
	}
	handlers = append(handlers, r.handler.UpdateSettings)

	rg.PUT("/locations/:location_id/settings", handlers...)
}
