package booking

import (
	"context"

	"github.com/bookwise/booking-calendar/internal/audit"
	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/httperr"
)

// Delete removes a booking permanently. Unlike cancellation the record
// is gone afterwards; the client asks the user to confirm first.
type Delete struct {
	repo  domain.Repository
	cache Cache
	audit AuditSink
}

func NewDelete(
	repo domain.Repository,
	cache Cache,
	audit AuditSink,
) *Delete {
	return &Delete{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	userID uint,
	id string,
) error {

	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return httperr.ErrBusiness(CodeBookingNotFound)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.DeleteDetail(ctx, id)
	uc.cache.InvalidateLists(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &id,
	})

	return nil
}
