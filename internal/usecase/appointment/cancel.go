package appointment

import (
	"context"

	"github.com/devansh21640/Kanoonwise-sub002/internal/audit"
	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditor,
	}
}

// Execute hard-deletes the caller's pending appointment. Wrong owner, wrong
// status and nonexistent id all collapse into the same not_found so callers
// cannot probe for other people's bookings.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientUserID uint,
	appointmentID uint,
) error {

	client, err := uc.repo.GetClientByUserID(ctx, clientUserID)
	if err != nil {
		return httperr.ErrBusiness("not_found")
	}

	deleted, err := uc.repo.DeletePendingForClient(ctx, appointmentID, client.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("not_found")
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &clientUserID,
			Action:   "appointment_cancelled_by_client",
			Entity:   "appointment",
			EntityID: &appointmentID,
		})
	}

	return nil
}
