package booking

import (
	"context"

	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/models"
)

type Get struct {
	repo  domain.Repository
	cache Cache
}

func NewGet(repo domain.Repository, cache Cache) *Get {
	return &Get{repo: repo, cache: cache}
}

func (uc *Get) Execute(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := uc.cache.GetDetail(ctx, id); ok {
		return b, nil
	}

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(CodeBookingNotFound)
	}

	uc.cache.SetDetail(ctx, b)
	return b, nil
}
