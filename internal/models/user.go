package models

import "time"

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	// client, lawyer or admin. Fixed at first login.
	Role string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
