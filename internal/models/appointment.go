package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LawyerID uint          `gorm:"index" json:"lawyer_id"`
	Lawyer   LawyerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Nullable: legacy bookings exist without a client account. ClientName is
	// always populated regardless.
	ClientID *uint          `gorm:"index" json:"client_id"`
	Client   *ClientProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`

	ConsultationType string    `gorm:"size:10;not null" json:"consultation_type"`
	Status           string    `gorm:"size:20;default:'pending'" json:"status"`
	ScheduledTime    time.Time `gorm:"not null" json:"scheduled_time"`

	// Captured from the lawyer's fee structure at booking time; later fee
	// edits never touch existing rows.
	Fee int64 `gorm:"not null" json:"fee"`

	CaseDescription string `gorm:"type:text" json:"case_description"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
