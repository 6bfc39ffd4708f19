package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwise/booking-calendar/internal/models"
)

func TestCalendarMonth(t *testing.T) {
	repo := newFakeRepo(
		models.Booking{ID: "a", Date: "2025-06-10", Time: "10:00", Status: "confirmed"},
		models.Booking{ID: "b", Date: "2025-06-10", Time: "14:30", Status: "pending"},
		models.Booking{ID: "c", Date: "2025-06-10", Time: "15:00", Status: "cancelled"},
		models.Booking{ID: "d", Date: "2025-06-12", Time: "09:00", Status: "pending"},
	)

	uc := NewCalendar(repo, newFakeSlotRepo())
	uc.now = func() time.Time {
		return time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	}

	cells, err := uc.Month(context.Background(), 2025, 6)
	require.NoError(t, err)
	require.Len(t, cells, 42)

	byDate := map[string]DayCell{}
	inMonth := 0
	for _, c := range cells {
		byDate[c.Date] = c
		if c.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 30, inMonth, "June has 30 in-month cells")

	assert.Equal(t, 2, byDate["2025-06-10"].Bookings, "cancelled bookings are not counted")
	assert.Equal(t, 1, byDate["2025-06-12"].Bookings)
	assert.Equal(t, 0, byDate["2025-06-11"].Bookings)
	assert.True(t, byDate["2025-06-10"].Today)
	assert.False(t, byDate["2025-06-11"].Today)
}

func TestCalendarMonthRejectsBadMonth(t *testing.T) {
	uc := NewCalendar(newFakeRepo(), newFakeSlotRepo())

	_, err := uc.Month(context.Background(), 2025, 0)
	assert.Error(t, err)
	_, err = uc.Month(context.Background(), 2025, 13)
	assert.Error(t, err)
}

func TestCalendarWeek(t *testing.T) {
	repo := newFakeRepo(
		models.Booking{ID: "a", Date: "2025-06-10", Time: "10:00", Name: "Jan", Status: "confirmed"},
	)

	uc := NewCalendar(repo, newFakeSlotRepo("10:00", "10:30"))
	uc.now = func() time.Time {
		return time.Date(2025, 6, 8, 0, 30, 0, 0, time.Local)
	}

	days, err := uc.Week(context.Background(), "2025-06-10")
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, "2025-06-08", days[0].Date)
	assert.Equal(t, "2025-06-14", days[6].Date)

	// Tuesday the 10th: 10:00 booked, 10:30 free.
	tue := days[2]
	require.Equal(t, "2025-06-10", tue.Date)
	require.Len(t, tue.Slots, 2)
	assert.True(t, tue.Slots[0].Booked)
	assert.False(t, tue.Slots[0].Available)
	assert.True(t, tue.Slots[1].Available)
}
