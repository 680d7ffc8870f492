package appointment

import (
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

type ConsultationType string

const (
	ConsultationOnline  ConsultationType = "online"
	ConsultationOffline ConsultationType = "offline"
)

func ParseConsultationType(s string) (ConsultationType, error) {
	switch ConsultationType(s) {
	case ConsultationOnline, ConsultationOffline:
		return ConsultationType(s), nil
	}
	return "", httperr.ErrBusiness("invalid_consultation_type")
}

// FeeFor picks the rate for the chosen mode straight off the lawyer's current
// fee structure. The value is copied onto the appointment at booking time.
func FeeFor(fs models.FeeStructure, t ConsultationType) int64 {
	if t == ConsultationOnline {
		return fs.Consultation
	}
	return fs.Court
}
