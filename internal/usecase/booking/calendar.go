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

// DayCell is one of the 42 cells of the month grid.
type DayCell struct {
	Date     string `json:"date"`
	InMonth  bool   `json:"in_month"`
	Today    bool   `json:"today"`
	Bookings int    `json:"bookings"`
}

// WeekDay is one column of the week view.
type WeekDay struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

type Calendar struct {
	repo  domain.Repository
	slots domain.SlotRepository
	now   func() time.Time
}

func NewCalendar(
	repo domain.Repository,
	slots domain.SlotRepository,
) *Calendar {
	return &Calendar{
		repo:  repo,
		slots: slots,
		now:   time.Now,
	}
}

// Month returns the fixed 6x7 grid for a month, with the count of active
// bookings per day for the "N visits" badge.
func (uc *Calendar) Month(
	ctx context.Context,
	year int,
	month int,
) ([]DayCell, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	grid := dateutil.MonthGrid(ref)

	bookings, err := uc.repo.ListForDates(
		ctx,
		dateutil.FormatDate(grid[0]),
		dateutil.FormatDate(grid[len(grid)-1]),
	)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for i := range bookings {
		if domain.IsActive(&bookings[i]) {
			counts[bookings[i].Date]++
		}
	}

	now := uc.now()
	cells := make([]DayCell, 0, len(grid))
	for _, day := range grid {
		date := dateutil.FormatDate(day)
		cells = append(cells, DayCell{
			Date:     date,
			InMonth:  day.Month() == ref.Month(),
			Today:    dateutil.SameDay(day, now),
			Bookings: counts[date],
		})
	}

	return cells, nil
}

// Week returns the Sunday-through-Saturday week containing the date,
// with per-slot availability for every day.
func (uc *Calendar) Week(
	ctx context.Context,
	dateStr string,
) ([]WeekDay, error) {

	ref, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	days := dateutil.WeekDays(ref)

	slots, err := uc.slots.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListForDates(
		ctx,
		dateutil.FormatDate(days[0]),
		dateutil.FormatDate(days[len(days)-1]),
	)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]WeekDay, 0, len(days))

	for _, day := range days {
		date := dateutil.FormatDate(day)
		wd := WeekDay{
			Date:  date,
			Slots: make([]SlotView, 0, len(slots)),
		}

		for _, slot := range slots {
			view := SlotView{
				Time:      slot.Time,
				Available: domain.IsSlotAvailable(bookings, day, slot.Time, now),
			}
			if b := domain.FindForSlot(bookings, date, slot.Time); b != nil {
				view.Booked = true
				view.Booking = &SlotBooking{
					ID:          b.ID,
					Name:        b.Name,
					Status:      b.Status,
					StatusLabel: domain.StatusLabel(b.Status),
					StatusColor: domain.StatusColor(b.Status),
				}
			}
			wd.Slots = append(wd.Slots, view)
		}

		out = append(out, wd)
	}

	return out, nil
}
