package models

import "time"

// FeeStructure holds the per-mode consultation rates in whole rupees.
type FeeStructure struct {
	Consultation int64 `json:"consultation"`
	Court        int64 `json:"court"`
}

type LawyerProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FullName              string `gorm:"size:100;not null" json:"full_name"`
	BarRegistrationNumber string `gorm:"size:50" json:"bar_registration_number"`
	Specialization        string `gorm:"size:255" json:"specialization"`
	CourtPractice         string `gorm:"size:255" json:"court_practice"`
	City                  string `gorm:"size:100" json:"city"`
	Languages             string `gorm:"size:255" json:"languages"`
	ExperienceYears       int    `json:"experience_years"`

	FeeStructure FeeStructure `gorm:"embedded;embeddedPrefix:fee_" json:"fee_structure"`

	PhotoKey       string `gorm:"size:255" json:"-"`
	CertificateKey string `gorm:"size:255" json:"-"`

	// pending until an admin approves the account; only approved lawyers
	// are searchable and bookable.
	ApprovalStatus string `gorm:"size:20;default:'pending'" json:"approval_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
