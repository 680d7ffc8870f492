package lawyer

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/devansh21640/Kanoonwise-sub002/internal/dto"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type SearchInput struct {
	Specialization string
	City           string
	Query          string
	MinExperience  int
	MinRating      float64

	Page  int
	Limit int
}

type SearchLawyers struct {
	db *gorm.DB
}

func NewSearchLawyers(db *gorm.DB) *SearchLawyers {
	return &SearchLawyers{db: db}
}

// searchOrder ranks results by average rating, ties broken by volume.
const searchOrder = "avg_rating DESC, review_count DESC"

// normalize clamps paging to sane bounds.
func (in *SearchInput) normalize() {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = DefaultLimit
	}
	if in.Limit > MaxLimit {
		in.Limit = MaxLimit
	}
}

// Execute runs the ranked search: approved lawyers matching the filters,
// review stats folded in with one aggregated join, ordered by average rating
// then review count.
func (uc *SearchLawyers) Execute(
	ctx context.Context,
	in SearchInput,
) ([]dto.LawyerListItem, int64, error) {

	in.normalize()

	q := uc.buildQuery(ctx, in)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []dto.LawyerListItem
	if err := q.
		Order(searchOrder).
		Offset((in.Page - 1) * in.Limit).
		Limit(in.Limit).
		Scan(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (uc *SearchLawyers) buildQuery(ctx context.Context, in SearchInput) *gorm.DB {
	stats := uc.db.Model(&models.Review{}).
		Select("lawyer_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Group("lawyer_id")

	q := uc.db.WithContext(ctx).
		Model(&models.LawyerProfile{}).
		Select(`lawyer_profiles.id,
            lawyer_profiles.full_name,
            lawyer_profiles.specialization,
            lawyer_profiles.court_practice,
            lawyer_profiles.city,
            lawyer_profiles.languages,
            lawyer_profiles.experience_years,
            lawyer_profiles.fee_consultation,
            lawyer_profiles.fee_court,
            COALESCE(stats.avg_rating, 0) AS avg_rating,
            COALESCE(stats.review_count, 0) AS review_count`).
		Joins("LEFT JOIN (?) AS stats ON stats.lawyer_id = lawyer_profiles.id", stats).
		Where("lawyer_profiles.approval_status = ?", "approved")

	if in.Specialization != "" {
		q = q.Where("LOWER(lawyer_profiles.specialization) LIKE ?",
			"%"+strings.ToLower(in.Specialization)+"%")
	}
	if in.City != "" {
		q = q.Where("LOWER(lawyer_profiles.city) = ?", strings.ToLower(in.City))
	}
	if in.Query != "" {
		q = q.Where("LOWER(lawyer_profiles.full_name) LIKE ?",
			"%"+strings.ToLower(in.Query)+"%")
	}
	if in.MinExperience > 0 {
		q = q.Where("lawyer_profiles.experience_years >= ?", in.MinExperience)
	}
	if in.MinRating > 0 {
		q = q.Where("COALESCE(stats.avg_rating, 0) >= ?", in.MinRating)
	}

	return q
}
