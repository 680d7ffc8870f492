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

type BookInput struct {
	ClientUserID uint
	ClientEmail  string

	LawyerID         uint
	ConsultationType string
	ScheduledTime    time.Time
	CaseDescription  string

	// Placeholder full name when the client profile is created lazily.
	DefaultClientName string
}

type BookAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
	now    func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	now func() time.Time,
) *BookAppointment {
	if now == nil {
		now = time.Now
	}
	return &BookAppointment{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		now:    now,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	ctype, err := domain.ParseConsultationType(in.ConsultationType)
	if err != nil {
		return nil, err
	}

	if !in.ScheduledTime.After(uc.now()) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	lawyer, err := uc.repo.GetLawyerByID(ctx, in.LawyerID)
	if err != nil {
		return nil, httperr.ErrBusiness("lawyer_not_found")
	}
	if lawyer.ApprovalStatus != "approved" {
		return nil, httperr.ErrBusiness("lawyer_not_approved")
	}

	client, err := uc.repo.GetOrCreateClientByUser(
		ctx,
		in.ClientUserID,
		in.DefaultClientName,
	)
	if err != nil {
		return nil, err
	}

	// Fee is captured here and never recomputed: later edits to the lawyer's
	// fee structure leave existing appointments untouched.
	fee := domain.FeeFor(lawyer.FeeStructure, ctype)
	if fee < 0 {
		return nil, httperr.ErrBusiness("invalid_fee")
	}

	clientID := client.ID
	ap := &models.Appointment{
		LawyerID:         lawyer.ID,
		ClientID:         &clientID,
		ClientName:       client.FullName,
		ConsultationType: string(ctype),
		Status:           string(domain.InitialStatus()),
		ScheduledTime:    in.ScheduledTime,
		Fee:              fee,
		CaseDescription:  in.CaseDescription,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.notify != nil {
		if lawyerUser, uerr := uc.repo.GetUserByID(ctx, lawyer.UserID); uerr == nil {
			uc.notify.Dispatch(notify.Email{
				To:      lawyerUser.Email,
				Subject: "New consultation request",
				HTML: fmt.Sprintf(
					"<p>%s requested a %s consultation on %s.</p>",
					ap.ClientName,
					ap.ConsultationType,
					ap.ScheduledTime.Format("02 Jan 2006 15:04"),
				),
			})
		}
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ClientUserID,
			Action:   "appointment_booked",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
