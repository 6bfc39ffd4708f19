package booking

import (
	"context"

	"github.com/bookwise/booking-calendar/internal/audit"
	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/models"
)

// AuditSink receives fire-and-forget mutation outcome events.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

// Cache is the keyed booking cache: list entries keyed by filter, detail
// entries keyed by id. Implementations must be best-effort; a miss or a
// broken cache degrades to the repository, never to an error.
type Cache interface {
	ListKey(filter domain.ListFilter) string
	GetList(ctx context.Context, key string) ([]models.Booking, bool)
	SetList(ctx context.Context, key string, bookings []models.Booking)
	InvalidateLists(ctx context.Context)

	GetDetail(ctx context.Context, id string) (*models.Booking, bool)
	SetDetail(ctx context.Context, b *models.Booking)
	DeleteDetail(ctx context.Context, id string)
}
