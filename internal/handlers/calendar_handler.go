package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/httpresp"
	ucBooking "github.com/bookwise/booking-calendar/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	calendar *ucBooking.Calendar
}

func NewCalendarHandler(calendar *ucBooking.Calendar) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// Month returns the 42-cell grid for ?year=&month=. Both default to the
// current month so the calendar can open without parameters.
func (h *CalendarHandler) Month(c *gin.Context) {
	now := time.Now()

	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_year", "Year must be a number.")
			return
		}
		year = parsed
	}

	month := int(now.Month())
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_month", "Month must be a number.")
			return
		}
		month = parsed
	}

	cells, err := h.calendar.Month(c.Request.Context(), year, month)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"year":  year,
		"month": month,
		"days":  cells,
	})
}

// Week returns the Sunday-to-Saturday week containing ?date=.
func (h *CalendarHandler) Week(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	days, err := h.calendar.Week(c.Request.Context(), date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"days": days})
}
