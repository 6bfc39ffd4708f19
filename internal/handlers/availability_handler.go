package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/httpresp"
	ucBooking "github.com/bookwise/booking-calendar/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	availability *ucBooking.GetAvailability
}

func NewAvailabilityHandler(availability *ucBooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Get returns every configured slot for one day, marked available or not.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}
