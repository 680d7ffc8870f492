package appointment

import (
	"context"
	"time"

	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForClient(
	ctx context.Context,
	clientUserID uint,
) ([]models.Appointment, error) {

	client, err := uc.repo.GetClientByUserID(ctx, clientUserID)
	if err != nil {
		// No profile yet means no bookings yet.
		return []models.Appointment{}, nil
	}

	return uc.repo.ListForClient(ctx, client.ID)
}

// ForLawyer lists the lawyer's appointments, optionally restricted to the
// calendar day starting at dayStart.
func (uc *ListAppointments) ForLawyer(
	ctx context.Context,
	lawyerUserID uint,
	dayStart *time.Time,
) ([]models.Appointment, error) {

	lawyer, err := uc.repo.GetLawyerByUserID(ctx, lawyerUserID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	return uc.repo.ListForLawyer(ctx, lawyer.ID, dayStart)
}
