package booking

import (
	"context"
	"time"

	"github.com/bookwise/booking-calendar/internal/dateutil"
	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/httperr"
)

// ======================================================
// OUTPUT
// ======================================================

// SlotView is one row of the day view: a configured time with its
// booked/available state and, when booked, who holds it.
type SlotView struct {
	Time      string       `json:"time"`
	Available bool         `json:"available"`
	Booked    bool         `json:"booked"`
	Booking   *SlotBooking `json:"booking,omitempty"`
}

type SlotBooking struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  domain.Repository
	slots domain.SlotRepository
	now   func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	slots domain.SlotRepository,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		slots: slots,
		now:   time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
) ([]SlotView, error) {

	day, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slots, err := uc.slots.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListForDates(ctx, dateStr, dateStr)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]SlotView, 0, len(slots))

	for _, slot := range slots {
		view := SlotView{
			Time:      slot.Time,
			Available: domain.IsSlotAvailable(bookings, day, slot.Time, now),
		}

		if b := domain.FindForSlot(bookings, dateStr, slot.Time); b != nil {
			view.Booked = true
			view.Booking = &SlotBooking{
				ID:          b.ID,
				Name:        b.Name,
				Status:      b.Status,
				StatusLabel: domain.StatusLabel(b.Status),
				StatusColor: domain.StatusColor(b.Status),
			}
		}

		out = append(out, view)
	}

	return out, nil
}
