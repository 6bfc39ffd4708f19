package booking

import (
	"context"

	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/models"
)

type List struct {
	repo  domain.Repository
	cache Cache
}

func NewList(repo domain.Repository, cache Cache) *List {
	return &List{repo: repo, cache: cache}
}

func (uc *List) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	key := uc.cache.ListKey(filter)
	if bookings, ok := uc.cache.GetList(ctx, key); ok {
		return bookings, nil
	}

	bookings, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	uc.cache.SetList(ctx, key, bookings)
	return bookings, nil
}
