package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	users        map[uint]*models.User
	lawyers      map[uint]*models.LawyerProfile
	clients      map[uint]*models.ClientProfile
	appointments map[uint]*models.Appointment

	nextClientID      uint
	nextAppointmentID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:             make(map[uint]*models.User),
		lawyers:           make(map[uint]*models.LawyerProfile),
		clients:           make(map[uint]*models.ClientProfile),
		appointments:      make(map[uint]*models.Appointment),
		nextClientID:      1,
		nextAppointmentID: 1,
	}
}

func (f *fakeRepo) addLawyer(id, userID uint, approval string, fees models.FeeStructure) {
	f.lawyers[id] = &models.LawyerProfile{
		ID:             id,
		UserID:         userID,
		FullName:       "Lawyer",
		ApprovalStatus: approval,
		FeeStructure:   fees,
	}
	f.users[userID] = &models.User{ID: userID, Email: "lawyer@example.com", Role: "lawyer"}
}

func (f *fakeRepo) addClient(id, userID uint, name string) {
	f.clients[id] = &models.ClientProfile{ID: id, UserID: userID, FullName: name}
	f.users[userID] = &models.User{ID: userID, Email: "client@example.com", Role: "client"}
	if id >= f.nextClientID {
		f.nextClientID = id + 1
	}
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetLawyerByID(_ context.Context, id uint) (*models.LawyerProfile, error) {
	if l, ok := f.lawyers[id]; ok {
		return l, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetLawyerByUserID(_ context.Context, userID uint) (*models.LawyerProfile, error) {
	for _, l := range f.lawyers {
		if l.UserID == userID {
			return l, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.ClientProfile, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetClientByUserID(_ context.Context, userID uint) (*models.ClientProfile, error) {
	for _, c := range f.clients {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetOrCreateClientByUser(
	ctx context.Context,
	userID uint,
	defaultName string,
) (*models.ClientProfile, error) {
	if c, err := f.GetClientByUserID(ctx, userID); err == nil {
		return c, nil
	}
	c := &models.ClientProfile{ID: f.nextClientID, UserID: userID, FullName: defaultName}
	f.nextClientID++
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, other := range f.appointments {
		if other.LawyerID == ap.LawyerID &&
			other.ScheduledTime.Equal(ap.ScheduledTime) &&
			isLive(other.Status) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}
	ap.ID = f.nextAppointmentID
	f.nextAppointmentID++
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointmentForLawyer(
	_ context.Context,
	appointmentID uint,
	lawyerID uint,
) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.LawyerID != lawyerID {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errNotFound
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) DeletePendingForClient(
	_ context.Context,
	appointmentID uint,
	clientID uint,
) (bool, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.ClientID == nil || *ap.ClientID != clientID || ap.Status != "pending" {
		return false, nil
	}
	delete(f.appointments, appointmentID)
	return true, nil
}

func (f *fakeRepo) ListBookedTimes(
	_ context.Context,
	lawyerID uint,
	candidates []time.Time,
) ([]time.Time, error) {
	var booked []time.Time
	for _, ap := range f.appointments {
		if ap.LawyerID != lawyerID || !isLive(ap.Status) {
			continue
		}
		for _, c := range candidates {
			if c.Equal(ap.ScheduledTime) {
				booked = append(booked, ap.ScheduledTime)
				break
			}
		}
	}
	return booked, nil
}

func (f *fakeRepo) ListForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.ClientID != nil && *ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForLawyer(
	_ context.Context,
	lawyerID uint,
	dayStart *time.Time,
) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.LawyerID != lawyerID {
			continue
		}
		if dayStart != nil {
			end := dayStart.Add(24 * time.Hour)
			if ap.ScheduledTime.Before(*dayStart) || !ap.ScheduledTime.Before(end) {
				continue
			}
		}
		out = append(out, *ap)
	}
	return out, nil
}

func isLive(status string) bool {
	return status == "pending" || status == "accepted"
}
