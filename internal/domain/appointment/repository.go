package appointment

import (
	"context"
	"time"

	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

type Repository interface {
	// -------- Identity --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetLawyerByID(
		ctx context.Context,
		id uint,
	) (*models.LawyerProfile, error)

	GetLawyerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.LawyerProfile, error)

	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.ClientProfile, error)

	GetClientByUserID(
		ctx context.Context,
		userID uint,
	) (*models.ClientProfile, error)

	GetOrCreateClientByUser(
		ctx context.Context,
		userID uint,
		defaultName string,
	) (*models.ClientProfile, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persists ap with the slot-exclusivity check folded
	// into the same transaction. Returns slot_unavailable when a live
	// appointment already holds (lawyer, scheduled_time).
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForLawyer(
		ctx context.Context,
		appointmentID uint,
		lawyerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeletePendingForClient hard-deletes the appointment iff it is owned by
	// clientID and still pending; reports whether a row was removed.
	DeletePendingForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (bool, error)

	// -------- Availability / listings --------
	ListBookedTimes(
		ctx context.Context,
		lawyerID uint,
		candidates []time.Time,
	) ([]time.Time, error)

	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListForLawyer(
		ctx context.Context,
		lawyerID uint,
		dayStart *time.Time,
	) ([]models.Appointment, error)
}
