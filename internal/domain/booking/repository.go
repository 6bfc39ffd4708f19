package booking

import (
	"context"

	"github.com/bookwise/booking-calendar/internal/models"
)

// ListFilter narrows the booking list. Zero values mean "no filter".
type ListFilter struct {
	StartDate string // inclusive YYYY-MM-DD
	EndDate   string // inclusive YYYY-MM-DD
	Status    string
	Search    string // matches name, email or notes
	SortBy    string // date (default), name, status
}

type Repository interface {
	// -------- Booking (CRUD) --------
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	// -------- Booking (queries) --------
	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	ListForDates(
		ctx context.Context,
		startDate string,
		endDate string,
	) ([]models.Booking, error)

	// CountActiveForSlot counts non-cancelled bookings occupying a slot,
	// optionally excluding one booking id (self, on update).
	CountActiveForSlot(
		ctx context.Context,
		date string,
		clock string,
		excludeID string,
	) (int64, error)
}

// SlotRepository is the time-slot configuration source: which HH:MM
// values are bookable at all, independent of occupancy.
type SlotRepository interface {
	ListActive(ctx context.Context) ([]models.TimeSlot, error)
	ListAll(ctx context.Context) ([]models.TimeSlot, error)
	Replace(ctx context.Context, slots []models.TimeSlot) error
}
