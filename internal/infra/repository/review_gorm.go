package repository

import (
	"context"

	"gorm.io/gorm"

	apdomain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/review"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetClientByUserID(
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

func (r *ReviewGormRepository) HasCompletedAppointment(
	ctx context.Context,
	clientID uint,
	lawyerID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"client_id = ? AND lawyer_id = ? AND status = ?",
			clientID, lawyerID, string(apdomain.StatusCompleted),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReviewGormRepository) HasReview(
	ctx context.Context,
	clientID uint,
	lawyerID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("client_id = ? AND lawyer_id = ?", clientID, lawyerID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewGormRepository) ListForLawyer(
	ctx context.Context,
	lawyerID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *ReviewGormRepository) StatsForLawyer(
	ctx context.Context,
	lawyerID uint,
) (float64, int64, error) {

	type row struct {
		AvgRating   float64
		ReviewCount int64
	}

	var out row
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("lawyer_id = ?", lawyerID).
		Scan(&out).Error; err != nil {
		return 0, 0, err
	}

	return out.AvgRating, out.ReviewCount, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
