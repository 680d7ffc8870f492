package dto

// LawyerListItem is the search-result projection: the profile columns plus
// the review aggregates computed in the same query.
type LawyerListItem struct {
	ID              uint    `json:"id"`
	FullName        string  `json:"full_name"`
	Specialization  string  `json:"specialization"`
	CourtPractice   string  `json:"court_practice"`
	City            string  `json:"city"`
	Languages       string  `json:"languages"`
	ExperienceYears int     `json:"experience_years"`
	FeeConsultation int64   `json:"fee_consultation"`
	FeeCourt        int64   `json:"fee_court"`
	AvgRating       float64 `json:"average_rating"`
	ReviewCount     int64   `json:"review_count"`
}
