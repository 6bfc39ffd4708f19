package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestMonthGrid(t *testing.T) {
	refs := []string{
		"2025-06-10",
		"2025-02-15", // non-leap February
		"2024-02-29", // leap February
		"2024-12-31", // year boundary
		"2025-03-01", // month starting on Saturday
		"2026-02-01", // month starting on Sunday
	}

	for _, ref := range refs {
		t.Run(ref, func(t *testing.T) {
			day := mustParse(t, ref)
			grid := MonthGrid(day)

			require.Len(t, grid, 42)
			assert.Equal(t, time.Sunday, grid[0].Weekday())

			first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
			found := false
			for _, d := range grid {
				if SameDay(d, first) {
					found = true
					break
				}
			}
			assert.True(t, found, "grid must contain the 1st of the month")

			for i := 1; i < len(grid); i++ {
				assert.Equal(t, grid[i-1].AddDate(0, 0, 1), grid[i], "grid days must be consecutive")
			}
		})
	}
}

func TestMonthGridLeadDays(t *testing.T) {
	// June 2025 starts on a Sunday, so the grid starts on June 1st itself.
	grid := MonthGrid(mustParse(t, "2025-06-10"))
	assert.Equal(t, "2025-06-01", FormatDate(grid[0]))

	// July 2025 starts on a Tuesday, so the grid leads with June 29/30.
	grid = MonthGrid(mustParse(t, "2025-07-04"))
	assert.Equal(t, "2025-06-29", FormatDate(grid[0]))
	assert.Equal(t, "2025-08-09", FormatDate(grid[41]))
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(mustParse(t, "2025-06-10")) // a Tuesday

	require.Len(t, days, 7)
	assert.Equal(t, "2025-06-08", FormatDate(days[0]))
	assert.Equal(t, time.Sunday, days[0].Weekday())
	assert.Equal(t, "2025-06-14", FormatDate(days[6]))

	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
}

func TestWeekDaysOnSunday(t *testing.T) {
	days := WeekDays(mustParse(t, "2025-06-08"))
	assert.Equal(t, "2025-06-08", FormatDate(days[0]))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"2025-06-10",
		"2025-01-01",
		"2024-02-29",
		"1999-12-31",
		"2025-10-05",
	} {
		d, err := ParseDate(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatDate(d))
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "10-06-2025", "abc"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "10:00", NormalizeClock("10:00:00"))
	assert.Equal(t, "10:00", NormalizeClock("10:00"))
	assert.Equal(t, "09:30", NormalizeClock("09:30:59"))
	assert.Equal(t, "9:30", NormalizeClock("9:30"))
}

func TestSlotInstant(t *testing.T) {
	day := mustParse(t, "2025-06-10")

	got, err := SlotInstant(day, "10:30")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.True(t, SameDay(got, day))

	// Seconds are discarded before building the instant.
	withSecs, err := SlotInstant(day, "10:30:45")
	require.NoError(t, err)
	assert.Equal(t, got, withSecs)

	_, err = SlotInstant(day, "not-a-time")
	assert.Error(t, err)
}
