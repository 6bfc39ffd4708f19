package booking

import "fmt"

// ValidationError carries per-field messages for inline rendering.
// It is never surfaced as a generic failure notification.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Business error codes shared by the use cases.
const (
	CodeSlotConflict      = "slot_conflict"
	CodeBookingNotFound   = "booking_not_found"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidStatus     = "invalid_status"
)
