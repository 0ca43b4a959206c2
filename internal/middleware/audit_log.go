package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/service"
)

const auditWriteTimeout = 5 * time.Second

// AuditLog records a caller action such as a settings change or a delivery quote.
// The entry goes through the global async logger when one is running.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	storeAuditEntry(loggingService, newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed caller action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	storeAuditEntry(loggingService, entry)
}

// newAuditEntry fills request attributes, the actor and the location. The location
// comes from the :location_id route param, or a "location_id" string field.
func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Actor:      GetActor(c),
		ActionType: actionType,
		Fields:     fields,
	}

	entry.LocationID = c.Param("location_id")
	if entry.LocationID == "" {
		if loc, ok := fields["location_id"].(string); ok {
			entry.LocationID = loc
		}
	}
	return entry
}

func storeAuditEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
