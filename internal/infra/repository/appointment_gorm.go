package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Identity
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AppointmentGormRepository) GetLawyerByID(
	ctx context.Context,
	id uint,
) (*models.LawyerProfile, error) {

	var lp models.LawyerProfile
	if err := r.db.WithContext(ctx).First(&lp, id).Error; err != nil {
		return nil, err
	}
	return &lp, nil
}

func (r *AppointmentGormRepository) GetLawyerByUserID(
	ctx context.Context,
	userID uint,
) (*models.LawyerProfile, error) {

	var lp models.LawyerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&lp).Error; err != nil {
		return nil, err
	}
	return &lp, nil
}

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.ClientProfile, error) {

	var cp models.ClientProfile
	if err := r.db.WithContext(ctx).First(&cp, id).Error; err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *AppointmentGormRepository) GetClientByUserID(
	ctx context.Context,
	userID uint,
) (*models.ClientProfile, error) {

	var cp models.ClientProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cp).Error; err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *AppointmentGormRepository) GetOrCreateClientByUser(
	ctx context.Context,
	userID uint,
	defaultName string,
) (*models.ClientProfile, error) {

	var cp models.ClientProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cp).Error

	if err == nil {
		return &cp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cp = models.ClientProfile{
		UserID:   userID,
		FullName: defaultName,
	}

	if err := r.db.WithContext(ctx).Create(&cp).Error; err != nil {
		return nil, err
	}

	return &cp, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"lawyer_id = ? AND scheduled_time = ? AND status IN ?",
				ap.LawyerID, ap.ScheduledTime, domain.LiveStatuses,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(ap).Error
	})

	// The partial unique index backstops a concurrent loser that slipped past
	// the locked read. Surface it as the same business error.
	if isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForLawyer(
	ctx context.Context,
	appointmentID uint,
	lawyerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND lawyer_id = ?", appointmentID, lawyerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeletePendingForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where(
			"id = ? AND client_id = ? AND status = ?",
			appointmentID, clientID, string(domain.StatusPending),
		).
		Delete(&models.Appointment{})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Availability / listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	lawyerID uint,
	candidates []time.Time,
) ([]time.Time, error) {

	if len(candidates) == 0 {
		return nil, nil
	}

	var times []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"lawyer_id = ? AND status IN ? AND scheduled_time IN ?",
			lawyerID, domain.LiveStatuses, candidates,
		).
		Pluck("scheduled_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("scheduled_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListForLawyer(
	ctx context.Context,
	lawyerID uint,
	dayStart *time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("lawyer_id = ?", lawyerID)

	if dayStart != nil {
		end := dayStart.Add(24 * time.Hour)
		q = q.Where("scheduled_time >= ? AND scheduled_time < ?", *dayStart, end)
	}

	var aps []models.Appointment
	if err := q.Order("scheduled_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
