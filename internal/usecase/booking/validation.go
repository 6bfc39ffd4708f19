package booking

import (
	"strings"

	"github.com/bookwise/booking-calendar/internal/dateutil"
	"github.com/bookwise/booking-calendar/internal/validators"
)

// FormInput are the user-entered booking fields, pre-trim.
type FormInput struct {
	Name  string
	Email string
	Notes string
	Date  string
	Time  string
}

// validateForm checks field validity and returns one message per bad
// field. Date and time are only user-editable on the edit form; on
// create they come from the clicked slot, so requireSlot is false there.
func validateForm(in FormInput, requireSlot bool) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = "email is required"
	} else if !validators.IsEmailShapeValid(email) {
		errs["email"] = "enter a valid email address"
	}

	if requireSlot {
		if in.Date == "" {
			errs["date"] = "date is required"
		}
		if in.Time == "" {
			errs["time"] = "time is required"
		}
	}

	if in.Date != "" {
		if _, err := dateutil.ParseDate(in.Date); err != nil {
			errs["date"] = "enter a valid date"
		}
	}
	if in.Time != "" && !dateutil.ValidClock(in.Time) {
		errs["time"] = "enter a valid time"
	}

	return errs
}
