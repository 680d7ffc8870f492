package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LawyerID uint          `gorm:"uniqueIndex:uidx_review_pair" json:"lawyer_id"`
	Lawyer   LawyerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint          `gorm:"uniqueIndex:uidx_review_pair" json:"client_id"`
	Client   ClientProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
