package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// CartSubtotal handles POST /api/cart/subtotal requests.
//
// @Summary      Aggregate a cart subtotal
// @Description  Sums unit price times quantity over the cart lines and rounds the result half-up to cents.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        request body dto.CartSubtotalRequest true "Cart lines"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartSubtotalResponse} "Cart subtotal"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid cart line"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/subtotal [post]
func (h *Handler) CartSubtotal(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.CartSubtotalRequest](c, builder)
	if !ok {
		return
	}

	lines := req.CartLines()
	subtotal, err := h.pricer.Aggregate(lines)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.CartSubtotalResponse{
		Subtotal:  dto.Money(subtotal),
		ItemCount: service.CountItems(lines),
	})
}

// DeliveryQuote handles POST /api/delivery/quote requests.
//
// @Summary      Price delivery for a cart
// @Description  Computes subtotal, delivery fee and total. The fee configuration comes from the request or from the settings of location_id (the default location when omitted). Orders at or above the free delivery threshold ship free. Supports idempotency via Idempotency-Key header.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.DeliveryQuoteRequest true "Cart and delivery details"
// @Success      200 {object} dto.SuccessResponse{data=dto.DeliveryQuoteResponse} "Price breakdown"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or fee configuration"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - settings storage not configured"
// @Router       /api/delivery/quote [post]
func (h *Handler) DeliveryQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.DeliveryQuoteRequest](c, builder)
	if !ok {
		return
	}

	start := time.Now()
	quote, err := h.subtotal(req)
	if err != nil {
		metrics.RecordDeliveryQuote(time.Since(start), "unknown", "validation_error")
		builder.Fail(err)
		return
	}

	cfg, locationID, err := h.newSettingsResolver().feeConfig(c.Request.Context(), req)
	if err != nil {
		builder.Fail(err)
		return
	}

	result, err := h.pricer.ComputeDelivery(quote.Subtotal, cfg, quote.Inputs)
	if err != nil {
		metrics.RecordDeliveryQuote(time.Since(start), string(cfg.FeeType), "validation_error")
		builder.Fail(err)
		return
	}
	metrics.RecordDeliveryQuote(time.Since(start), string(result.FeeType), "success")

	resp := dto.NewDeliveryQuoteResponse(result)
	resp.LocationID = locationID

	auditLog(c, model.ActionDeliveryQuote, "Delivery quote priced", map[string]interface{}{
		"location_id":   locationID,
		"fee_type":      string(result.FeeType),
		"subtotal":      resp.Subtotal,
		"total":         resp.Total,
		"free_delivery": result.FreeDelivery,
	})

	builder.SuccessOK(resp)
}

// DeliveryQuoteBatch handles POST /api/delivery/quotes/batch requests.
//
// @Summary      Price delivery for many carts
// @Description  Prices every quote concurrently. Each result carries either a quote or an error, in request order; one invalid quote does not fail the others.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.BatchQuoteRequest true "Quotes to price"
// @Success      200 {object} dto.SuccessResponse{data=dto.BatchQuoteResponse} "Per quote results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - empty or oversized batch"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/delivery/quotes/batch [post]
func (h *Handler) DeliveryQuoteBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.BatchQuoteRequest](c, builder)
	if !ok {
		return
	}
	if len(req.Quotes) > h.maxBatchSize {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyBatchTooLarge, map[string]string{
			"quotes": "must contain at most " + strconv.Itoa(h.maxBatchSize) + " quotes",
		})
		return
	}

	ctx := c.Request.Context()
	locale := i18n.GetLocale(c)
	resolver := h.newSettingsResolver()

	results := make([]dto.BatchQuoteResult, len(req.Quotes))
	locations := make([]string, len(req.Quotes))
	pending := make([]model.QuoteRequest, 0, len(req.Quotes))
	pendingIdx := make([]int, 0, len(req.Quotes))

	fail := func(i int, err error) {
		_, resp := middleware.MapError(err, locale)
		results[i].Error = &resp
	}

	for i := range req.Quotes {
		item := &req.Quotes[i]
		results[i].ID = item.ID

		if err := item.Validate(); err != nil {
			fail(i, err)
			continue
		}
		quote, err := h.subtotal(&item.DeliveryQuoteRequest)
		if err != nil {
			fail(i, err)
			continue
		}
		cfg, loc, err := resolver.feeConfig(ctx, &item.DeliveryQuoteRequest)
		if err != nil {
			fail(i, err)
			continue
		}

		quote.ID = item.ID
		quote.Config = cfg
		locations[i] = loc
		pending = append(pending, quote)
		pendingIdx = append(pendingIdx, i)
	}

	start := time.Now()
	if len(pending) > 0 {
		outcomes, err := h.pricer.QuoteBatch(ctx, pending)
		if err != nil {
			auditLogError(c, model.ActionBatchQuote, "Delivery quote batch failed", err, map[string]interface{}{"count": len(req.Quotes)})
			builder.Fail(err)
			return
		}
		for j, outcome := range outcomes {
			i := pendingIdx[j]
			if outcome.Err != nil {
				fail(i, outcome.Err)
				continue
			}
			quote := dto.NewDeliveryQuoteResponse(*outcome.Result)
			quote.LocationID = locations[i]
			results[i].Quote = &quote
		}
	}
	elapsed := time.Since(start)

	resp := dto.BatchQuoteResponse{Results: results}
	for _, r := range results {
		if r.Error != nil {
			resp.Failed++
			metrics.RecordDeliveryQuote(elapsed, "unknown", "validation_error")
			continue
		}
		resp.Succeeded++
		metrics.RecordDeliveryQuote(elapsed, r.Quote.FeeType, "success")
	}

	auditLog(c, model.ActionBatchQuote, "Delivery quote batch priced", map[string]interface{}{
		"count":     len(req.Quotes),
		"succeeded": resp.Succeeded,
		"failed":    resp.Failed,
	})

	builder.SuccessOK(resp)
}
