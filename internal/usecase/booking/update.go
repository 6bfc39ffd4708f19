package booking

import (
	"context"
	"strings"

	"github.com/bookwise/booking-calendar/internal/audit"
	"github.com/bookwise/booking-calendar/internal/dateutil"
	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateInput is a partial update: nil fields stay untouched.
type UpdateInput struct {
	UserID uint

	Name  *string
	Email *string
	Notes *string
	Date  *string
	Time  *string
}

// ======================================================
// USE CASE
// ======================================================

type Update struct {
	repo  domain.Repository
	cache Cache
	audit AuditSink
}

func NewUpdate(
	repo domain.Repository,
	cache Cache,
	audit AuditSink,
) *Update {
	return &Update{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *Update) Execute(
	ctx context.Context,
	id string,
	in UpdateInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(CodeBookingNotFound)
	}

	next := *b
	if in.Name != nil {
		next.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		next.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Notes != nil {
		next.Notes = *in.Notes
	}
	if in.Date != nil {
		next.Date = *in.Date
	}
	if in.Time != nil {
		next.Time = dateutil.NormalizeClock(*in.Time)
	}

	errs := validateForm(FormInput{
		Name:  next.Name,
		Email: next.Email,
		Notes: next.Notes,
		Date:  next.Date,
		Time:  next.Time,
	}, true)
	if len(errs) > 0 {
		return nil, ValidationError{Fields: errs}
	}

	// Re-check the slot only when it moved, excluding self so an edit
	// that keeps the same slot always succeeds.
	slotChanged := next.Date != b.Date ||
		dateutil.NormalizeClock(next.Time) != dateutil.NormalizeClock(b.Time)
	if slotChanged {
		count, err := uc.repo.CountActiveForSlot(ctx, next.Date, next.Time, b.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, httperr.ErrBusiness(CodeSlotConflict)
		}
	}

	if err := uc.repo.Update(ctx, &next); err != nil {
		return nil, err
	}

	uc.cache.SetDetail(ctx, &next)
	uc.cache.InvalidateLists(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &next.ID,
		Metadata: map[string]any{"date": next.Date, "time": next.Time},
	})

	return &next, nil
}
