package review

import (
	"context"

	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

type Repository interface {
	GetClientByUserID(
		ctx context.Context,
		userID uint,
	) (*models.ClientProfile, error)

	HasCompletedAppointment(
		ctx context.Context,
		clientID uint,
		lawyerID uint,
	) (bool, error)

	HasReview(
		ctx context.Context,
		clientID uint,
		lawyerID uint,
	) (bool, error)

	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	ListForLawyer(
		ctx context.Context,
		lawyerID uint,
	) ([]models.Review, error)

	// StatsForLawyer returns the average rating and review count.
	StatsForLawyer(
		ctx context.Context,
		lawyerID uint,
	) (float64, int64, error)
}
