package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/httpresp"
	"github.com/bookwise/booking-calendar/internal/middleware"
	ucBooking "github.com/bookwise/booking-calendar/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create     *ucBooking.Create
	update     *ucBooking.Update
	delete     *ucBooking.Delete
	get        *ucBooking.Get
	list       *ucBooking.List
	transition *ucBooking.TransitionStatus
}

func NewBookingHandler(
	create *ucBooking.Create,
	update *ucBooking.Update,
	del *ucBooking.Delete,
	get *ucBooking.Get,
	list *ucBooking.List,
	transition *ucBooking.TransitionStatus,
) *BookingHandler {
	return &BookingHandler{
		create:     create,
		update:     update,
		delete:     del,
		get:        get,
		list:       list,
		transition: transition,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

// UpdateBookingRequest carries only the fields the client wants changed.
type UpdateBookingRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
	Date  *string `json:"date"`
	Time  *string `json:"time"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

// writeBookingError maps use-case failures onto the API error surface.
// Validation details stay per-field so the client can render them inline.
func writeBookingError(c *gin.Context, err error) {
	var verr ucBooking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_error",
			"fields":     verr.Fields,
		})
		return
	}

	switch {
	case httperr.IsBusiness(err, ucBooking.CodeSlotConflict):
		httperr.Conflict(c, "slot_conflict", "This slot is already taken.")
	case httperr.IsBusiness(err, ucBooking.CodeBookingNotFound):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, ucBooking.CodeInvalidTransition):
		httperr.Unprocessable(c, "invalid_transition", "This status change is not permitted.")
	case httperr.IsBusiness(err, ucBooking.CodeInvalidStatus):
		httperr.Unprocessable(c, "invalid_status", "Unknown booking status.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "invalid_month"):
		httperr.BadRequest(c, "invalid_month", "Month must be between 1 and 12.")
	default:
		httperr.Internal(c, "store_error", err.Error())
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateInput{
		UserID: userID,
		Date:   req.Date,
		Time:   req.Time,
		Name:   req.Name,
		Email:  req.Email,
		Notes:  req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Status:    c.Query("status"),
		Search:    c.Query("q"),
		SortBy:    c.Query("sort"),
	}

	bookings, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucBooking.UpdateInput{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Notes:  req.Notes,
		Date:   req.Date,
		Time:   req.Time,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.transition.Execute(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.delete.Execute(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
