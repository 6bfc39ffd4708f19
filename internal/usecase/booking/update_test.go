package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwise/booking-calendar/internal/httperr"
	"github.com/bookwise/booking-calendar/internal/models"
)

func strptr(s string) *string { return &s }

func seedPair() *fakeRepo {
	return newFakeRepo(
		models.Booking{
			ID: "x", Date: "2025-06-10", Time: "10:00",
			Name: "Jan Kowalski", Email: "jan@kowalski.pl", Status: "pending",
		},
		models.Booking{
			ID: "y", Date: "2025-06-10", Time: "11:00",
			Name: "Anna Nowak", Email: "anna@nowak.pl", Status: "confirmed",
		},
	)
}

func TestUpdateBookingMoveToOccupiedSlot(t *testing.T) {
	repo := seedPair()
	uc := NewUpdate(repo, newFakeCache(), &fakeAudit{})

	// Moving x onto y's slot must collide.
	_, err := uc.Execute(context.Background(), "x", UpdateInput{
		UserID: 1,
		Time:   strptr("11:00"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, CodeSlotConflict))

	kept, _ := repo.GetByID(context.Background(), "x")
	assert.Equal(t, "10:00", kept.Time, "no partial state on conflict")
}

func TestUpdateBookingKeepOwnSlot(t *testing.T) {
	repo := seedPair()
	cache := newFakeCache()
	uc := NewUpdate(repo, cache, &fakeAudit{})

	// Editing x back onto its own unchanged slot succeeds.
	b, err := uc.Execute(context.Background(), "x", UpdateInput{
		UserID: 1,
		Date:   strptr("2025-06-10"),
		Time:   strptr("10:00"),
		Notes:  strptr("updated notes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "updated notes", b.Notes)

	cached, ok := cache.GetDetail(context.Background(), "x")
	require.True(t, ok, "detail cache entry refreshed on update")
	assert.Equal(t, "updated notes", cached.Notes)
	assert.Equal(t, 1, cache.invalidated)
}

func TestUpdateBookingPartialFields(t *testing.T) {
	repo := seedPair()
	uc := NewUpdate(repo, newFakeCache(), &fakeAudit{})

	b, err := uc.Execute(context.Background(), "y", UpdateInput{
		UserID: 1,
		Name:   strptr("Anna Nowak-Kowalska"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Anna Nowak-Kowalska", b.Name)
	assert.Equal(t, "anna@nowak.pl", b.Email, "untouched fields survive partial update")
	assert.Equal(t, "2025-06-10", b.Date)
	assert.Equal(t, "11:00", b.Time)
	assert.Equal(t, "confirmed", b.Status, "data update never changes status")
}

func TestUpdateBookingMoveToFreeSlot(t *testing.T) {
	repo := seedPair()
	uc := NewUpdate(repo, newFakeCache(), &fakeAudit{})

	b, err := uc.Execute(context.Background(), "x", UpdateInput{
		UserID: 1,
		Time:   strptr("12:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "12:30", b.Time)
}

func TestUpdateBookingConflictIgnoresCancelled(t *testing.T) {
	repo := newFakeRepo(
		models.Booking{
			ID: "x", Date: "2025-06-10", Time: "10:00",
			Name: "Jan", Email: "jan@kowalski.pl", Status: "pending",
		},
		models.Booking{
			ID: "z", Date: "2025-06-10", Time: "11:00",
			Name: "Old", Email: "old@gone.pl", Status: "cancelled",
		},
	)
	uc := NewUpdate(repo, newFakeCache(), &fakeAudit{})

	_, err := uc.Execute(context.Background(), "x", UpdateInput{
		UserID: 1,
		Time:   strptr("11:00"),
	})
	assert.NoError(t, err)
}

func TestUpdateBookingValidation(t *testing.T) {
	repo := seedPair()
	uc := NewUpdate(repo, newFakeCache(), &fakeAudit{})

	_, err := uc.Execute(context.Background(), "x", UpdateInput{
		UserID: 1,
		Email:  strptr("not-an-email"),
	})
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestUpdateBookingNotFound(t *testing.T) {
	uc := NewUpdate(newFakeRepo(), newFakeCache(), &fakeAudit{})

	_, err := uc.Execute(context.Background(), "missing", UpdateInput{UserID: 1})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, CodeBookingNotFound))
}
