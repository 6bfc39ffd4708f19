package booking

import (
	"time"

	"github.com/bookwise/booking-calendar/internal/dateutil"
	"github.com/bookwise/booking-calendar/internal/models"
)

// FindForSlot returns the first non-cancelled booking on the given date,
// and, when clock is non-empty, at the given time. Stored times may carry
// seconds; both sides are normalized to HH:MM before comparing.
func FindForSlot(bookings []models.Booking, date string, clock string) *models.Booking {
	want := dateutil.NormalizeClock(clock)

	for i := range bookings {
		b := &bookings[i]
		if !IsActive(b) {
			continue
		}
		if b.Date != date {
			continue
		}
		if clock == "" || dateutil.NormalizeClock(b.Time) == want {
			return b
		}
	}
	return nil
}

// IsSlotAvailable reports whether a slot can still be booked: its instant
// must be strictly in the future and no active booking may occupy it.
func IsSlotAvailable(bookings []models.Booking, day time.Time, clock string, now time.Time) bool {
	instant, err := dateutil.SlotInstant(day, clock)
	if err != nil {
		return false
	}
	if !instant.After(now) {
		return false
	}
	return FindForSlot(bookings, dateutil.FormatDate(day), clock) == nil
}
