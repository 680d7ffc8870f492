package appointment

import (
	"context"
	"time"

	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
)

type GetAvailableSlots struct {
	repo   domain.Repository
	window domain.Window
	loc    *time.Location
	now    func() time.Time
}

func NewGetAvailableSlots(
	repo domain.Repository,
	window domain.Window,
	loc *time.Location,
	now func() time.Time,
) *GetAvailableSlots {
	if now == nil {
		now = time.Now
	}
	return &GetAvailableSlots{
		repo:   repo,
		window: window,
		loc:    loc,
		now:    now,
	}
}

// Execute recomputes the open slots from scratch on every call: candidate
// hours over the horizon, minus whatever a live appointment already holds.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	lawyerID uint,
	limit int,
) ([]time.Time, error) {

	candidates := domain.Candidates(uc.now().In(uc.loc), uc.window)

	booked, err := uc.repo.ListBookedTimes(ctx, lawyerID, candidates)
	if err != nil {
		return nil, err
	}

	return domain.FilterBooked(candidates, booked, limit), nil
}
