package appointment

import (
	"time"

	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

// Transition moves a lawyer-owned appointment to a new status, stamping the
// terminal timestamps as it goes.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if !CanTransition(Status(ap.Status), to) {
		return httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}
