package booking

import (
	"context"
	"fmt"
	"sort"

	"github.com/bookwise/booking-calendar/internal/audit"
	"github.com/bookwise/booking-calendar/internal/dateutil"
	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/models"
)

// ------------------------------------------------------
// In-memory repository
// ------------------------------------------------------

type fakeRepo struct {
	bookings []models.Booking
	nextID   int
	failNext error
}

func newFakeRepo(seed ...models.Booking) *fakeRepo {
	return &fakeRepo{bookings: seed}
}

func (r *fakeRepo) Create(_ context.Context, b *models.Booking) error {
	if r.failNext != nil {
		return r.failNext
	}
	r.nextID++
	b.ID = fmt.Sprintf("fake-%d", r.nextID)
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (r *fakeRepo) Update(_ context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return fmt.Errorf("record not found")
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("record not found")
}

func (r *fakeRepo) List(_ context.Context, filter domain.ListFilter) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.StartDate != "" && b.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && b.Date > filter.EndDate {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *fakeRepo) ListForDates(ctx context.Context, start, end string) ([]models.Booking, error) {
	return r.List(ctx, domain.ListFilter{StartDate: start, EndDate: end})
}

func (r *fakeRepo) CountActiveForSlot(_ context.Context, date, clock, excludeID string) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.ID == excludeID || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if b.Date == date && dateutil.NormalizeClock(b.Time) == dateutil.NormalizeClock(clock) {
			count++
		}
	}
	return count, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// Slot configuration
// ------------------------------------------------------

type fakeSlotRepo struct {
	slots []models.TimeSlot
}

func newFakeSlotRepo(times ...string) *fakeSlotRepo {
	r := &fakeSlotRepo{}
	for _, tm := range times {
		r.slots = append(r.slots, models.TimeSlot{Time: tm, IsActive: true})
	}
	return r
}

func (r *fakeSlotRepo) ListActive(context.Context) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range r.slots {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) ListAll(context.Context) ([]models.TimeSlot, error) {
	return r.slots, nil
}

func (r *fakeSlotRepo) Replace(_ context.Context, slots []models.TimeSlot) error {
	r.slots = slots
	return nil
}

var _ domain.SlotRepository = (*fakeSlotRepo)(nil)

// ------------------------------------------------------
// Cache + audit fakes
// ------------------------------------------------------

type fakeCache struct {
	lists       map[string][]models.Booking
	details     map[string]*models.Booking
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		lists:   map[string][]models.Booking{},
		details: map[string]*models.Booking{},
	}
}

func (c *fakeCache) ListKey(filter domain.ListFilter) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s",
		filter.StartDate, filter.EndDate, filter.Status, filter.Search, filter.SortBy)
}

func (c *fakeCache) GetList(_ context.Context, key string) ([]models.Booking, bool) {
	v, ok := c.lists[key]
	return v, ok
}

func (c *fakeCache) SetList(_ context.Context, key string, bookings []models.Booking) {
	c.lists[key] = bookings
}

func (c *fakeCache) InvalidateLists(context.Context) {
	c.lists = map[string][]models.Booking{}
	c.invalidated++
}

func (c *fakeCache) GetDetail(_ context.Context, id string) (*models.Booking, bool) {
	v, ok := c.details[id]
	return v, ok
}

func (c *fakeCache) SetDetail(_ context.Context, b *models.Booking) {
	c.details[b.ID] = b
}

func (c *fakeCache) DeleteDetail(_ context.Context, id string) {
	delete(c.details, id)
}

var _ Cache = (*fakeCache)(nil)

type fakeAudit struct {
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

var _ AuditSink = (*fakeAudit)(nil)
