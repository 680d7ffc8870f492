package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/devansh21640/Kanoonwise-sub002/internal/audit"
	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
	"github.com/devansh21640/Kanoonwise-sub002/internal/notify"
)

type RespondToAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
	now    func() time.Time
}

func NewRespondToAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	now func() time.Time,
) *RespondToAppointment {
	if now == nil {
		now = time.Now
	}
	return &RespondToAppointment{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		now:    now,
	}
}

func (uc *RespondToAppointment) Execute(
	ctx context.Context,
	lawyerUserID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	lawyer, err := uc.repo.GetLawyerByUserID(ctx, lawyerUserID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	// Ownership folded into the lookup: a lawyer can never touch another
	// lawyer's appointment, and the caller cannot tell the two cases apart.
	ap, err := uc.repo.GetAppointmentForLawyer(ctx, appointmentID, lawyer.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if err := domain.Transition(ap, status, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifyClient(ctx, ap, status)

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &lawyerUserID,
			Action:   "appointment_" + string(status),
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}

func (uc *RespondToAppointment) notifyClient(
	ctx context.Context,
	ap *models.Appointment,
	status domain.Status,
) {
	if uc.notify == nil || ap.ClientID == nil {
		return
	}

	client, err := uc.repo.GetClientByID(ctx, *ap.ClientID)
	if err != nil {
		return
	}
	user, err := uc.repo.GetUserByID(ctx, client.UserID)
	if err != nil {
		return
	}

	uc.notify.Dispatch(notify.Email{
		To:      user.Email,
		Subject: fmt.Sprintf("Your consultation was %s", status),
		HTML: fmt.Sprintf(
			"<p>Your %s consultation on %s is now <b>%s</b>.</p>",
			ap.ConsultationType,
			ap.ScheduledTime.Format("02 Jan 2006 15:04"),
			status,
		),
	})
}
