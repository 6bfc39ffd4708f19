package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookwise/booking-calendar/internal/dateutil"
	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/httpresp"
	"github.com/bookwise/booking-calendar/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type TimeSlotHandler struct {
	slots domain.SlotRepository
}

func NewTimeSlotHandler(slots domain.SlotRepository) *TimeSlotHandler {
	return &TimeSlotHandler{slots: slots}
}

// ======================================================
// REQUESTS
// ======================================================

type TimeSlotInput struct {
	Time     string `json:"time" binding:"required"`
	IsActive bool   `json:"is_active"`
}

type ReplaceTimeSlotsRequest struct {
	Slots []TimeSlotInput `json:"slots" binding:"required,min=1,dive"`
}

// ======================================================
// GET
// ======================================================

// List returns the active slots by default; ?include_inactive=true
// returns the full configuration for the settings screen.
func (h *TimeSlotHandler) List(c *gin.Context) {
	var (
		slots []models.TimeSlot
		err   error
	)

	if c.Query("include_inactive") == "true" {
		slots, err = h.slots.ListAll(c.Request.Context())
	} else {
		slots, err = h.slots.ListActive(c.Request.Context())
	}
	if err != nil {
		httperr.Internal(c, "store_error", err.Error())
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// PUT
// ======================================================

// Replace swaps the whole slot configuration in one transaction.
// Existing bookings keep their times even if a slot is removed.
func (h *TimeSlotHandler) Replace(c *gin.Context) {
	var req ReplaceTimeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	seen := make(map[string]bool, len(req.Slots))
	slots := make([]models.TimeSlot, 0, len(req.Slots))

	for _, in := range req.Slots {
		if !dateutil.ValidClock(in.Time) {
			httperr.Unprocessable(c, "invalid_time", "Slots must use the HH:MM format.")
			return
		}
		if seen[in.Time] {
			httperr.Unprocessable(c, "duplicate_slot", "Each slot time may appear only once.")
			return
		}
		seen[in.Time] = true

		slots = append(slots, models.TimeSlot{
			Time:     in.Time,
			IsActive: in.IsActive,
		})
	}

	if err := h.slots.Replace(c.Request.Context(), slots); err != nil {
		httperr.Internal(c, "store_error", err.Error())
		return
	}

	saved, err := h.slots.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "store_error", err.Error())
		return
	}

	httpresp.List(c, saved)
}
