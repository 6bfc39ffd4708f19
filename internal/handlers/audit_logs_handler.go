package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/httpresp"
	"github.com/bookwise/booking-calendar/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the most recent audit entries, newest first.
// Supports ?entity=, ?action= and ?limit= (capped at 200).
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httperr.BadRequest(c, "invalid_limit", "Limit must be a positive number.")
			return
		}
		if parsed > 200 {
			parsed = 200
		}
		limit = parsed
	}

	query := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Order("created_at DESC").
		Limit(limit)

	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		httperr.Internal(c, "store_error", err.Error())
		return
	}

	httpresp.List(c, logs)
}
