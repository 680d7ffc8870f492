package review

import (
	"context"

	"github.com/devansh21640/Kanoonwise-sub002/internal/audit"
	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/review"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

type CreateInput struct {
	ClientUserID uint
	LawyerID     uint
	Rating       int
	Comment      string
}

type CreateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(repo domain.Repository, auditor *audit.Dispatcher) *CreateReview {
	return &CreateReview{repo: repo, audit: auditor}
}

// Execute enforces the review gate: only after a completed engagement, and at
// most once per (client, lawyer) pair.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	client, err := uc.repo.GetClientByUserID(ctx, in.ClientUserID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_profile_not_found")
	}

	completed, err := uc.repo.HasCompletedAppointment(ctx, client.ID, in.LawyerID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, httperr.ErrBusiness("review_not_allowed")
	}

	exists, err := uc.repo.HasReview(ctx, client.ID, in.LawyerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("duplicate_review")
	}

	rv := &models.Review{
		LawyerID: in.LawyerID,
		ClientID: client.ID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ClientUserID,
			Action:   "review_created",
			Entity:   "review",
			EntityID: &rv.ID,
		})
	}

	return rv, nil
}
