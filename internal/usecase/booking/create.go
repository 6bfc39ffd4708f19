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

type CreateInput struct {
	UserID uint

	Date  string
	Time  string
	Name  string
	Email string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	cache Cache
	audit AuditSink
}

func NewCreate(
	repo domain.Repository,
	cache Cache,
	audit AuditSink,
) *Create {
	return &Create{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	errs := validateForm(FormInput{
		Name:  in.Name,
		Email: in.Email,
		Notes: in.Notes,
		Date:  in.Date,
		Time:  in.Time,
	}, true)
	if len(errs) > 0 {
		return nil, ValidationError{Fields: errs}
	}

	clock := dateutil.NormalizeClock(in.Time)

	// One active booking per slot; the second writer loses.
	count, err := uc.repo.CountActiveForSlot(ctx, in.Date, clock, "")
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(CodeSlotConflict)
	}

	b := &models.Booking{
		UserID: in.UserID,
		Date:   in.Date,
		Time:   clock,
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.ToLower(strings.TrimSpace(in.Email)),
		Notes:  in.Notes,
		Status: string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Only after the store acked: every list view must refetch.
	uc.cache.InvalidateLists(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"date": b.Date, "time": b.Time},
	})

	return b, nil
}
