package booking

import (
	"time"

	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the full lifecycle. completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPending, StatusCompleted, StatusCancelled},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ===============================
// Domain Actions
// ===============================

// Transition moves a booking to a new status, stamping the terminal
// timestamps. Any move outside the lifecycle is rejected.
func Transition(b *models.Booking, to Status, now time.Time) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if !CanTransition(Status(b.Status), to) {
		return httperr.ErrBusiness("invalid_transition")
	}

	b.Status = string(to)
	switch to {
	case StatusCancelled:
		b.CancelledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

func IsActive(b *models.Booking) bool {
	return b.Status != string(StatusCancelled)
}

// ===============================
// Display mapping
// ===============================

var statusLabels = map[Status]string{
	StatusPending:   "Pending",
	StatusConfirmed: "Confirmed",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

var statusColors = map[Status]string{
	StatusPending:   "yellow",
	StatusConfirmed: "green",
	StatusCompleted: "blue",
	StatusCancelled: "red",
}

// StatusLabel returns the display label. Unknown tags pass through
// unchanged rather than silently becoming something else.
func StatusLabel(status string) string {
	if label, ok := statusLabels[Status(status)]; ok {
		return label
	}
	return status
}

func StatusColor(status string) string {
	if color, ok := statusColors[Status(status)]; ok {
		return color
	}
	return "gray"
}
