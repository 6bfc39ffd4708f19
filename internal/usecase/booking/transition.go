package booking

import (
	"context"
	"time"

	"github.com/bookwise/booking-calendar/internal/audit"
	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/models"
)

// TransitionStatus applies a lifecycle change. The state machine is
// enforced here, not just by which buttons the interface renders, so a
// direct API call cannot move completed back to pending.
type TransitionStatus struct {
	repo  domain.Repository
	cache Cache
	audit AuditSink
	now   func() time.Time
}

func NewTransitionStatus(
	repo domain.Repository,
	cache Cache,
	audit AuditSink,
) *TransitionStatus {
	return &TransitionStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	userID uint,
	id string,
	to string,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(CodeBookingNotFound)
	}

	from := b.Status
	if err := domain.Transition(b, domain.Status(to), uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.SetDetail(ctx, b)
	uc.cache.InvalidateLists(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"from": from, "to": b.Status},
	})

	return b, nil
}
