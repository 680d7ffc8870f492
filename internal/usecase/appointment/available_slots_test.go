package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
)

func TestGetAvailableSlots(t *testing.T) {
	repo := approvedLawyerRepo()
	uc := NewGetAvailableSlots(repo, domain.DefaultWindow(), time.UTC, fixedNow)

	slots, err := uc.Execute(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 20 {
		t.Fatalf("len = %d, want 20", len(slots))
	}
	for _, s := range slots {
		if !s.After(testNow) {
			t.Errorf("slot %v is not in the future", s)
		}
	}
}

func TestGetAvailableSlotsExcludesBooked(t *testing.T) {
	repo := approvedLawyerRepo()
	bookUC := NewBookAppointment(repo, nil, nil, fixedNow)
	uc := NewGetAvailableSlots(repo, domain.DefaultWindow(), time.UTC, fixedNow)

	// 11:00 is the first candidate after a 10:00 "now".
	booked := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	if _, err := bookUC.Execute(context.Background(), BookInput{
		ClientUserID:     200,
		LawyerID:         1,
		ConsultationType: "online",
		ScheduledTime:    booked,
	}); err != nil {
		t.Fatalf("book: %v", err)
	}

	slots, err := uc.Execute(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, s := range slots {
		if s.Equal(booked) {
			t.Fatalf("booked slot %v still offered", booked)
		}
	}

	first := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if !slots[0].Equal(first) {
		t.Errorf("first slot = %v, want %v", slots[0], first)
	}
}

func TestGetAvailableSlotsIgnoresOtherLawyers(t *testing.T) {
	repo := approvedLawyerRepo()
	bookUC := NewBookAppointment(repo, nil, nil, fixedNow)

	booked := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	if _, err := bookUC.Execute(context.Background(), BookInput{
		ClientUserID:     200,
		LawyerID:         1,
		ConsultationType: "online",
		ScheduledTime:    booked,
	}); err != nil {
		t.Fatalf("book: %v", err)
	}

	uc := NewGetAvailableSlots(repo, domain.DefaultWindow(), time.UTC, fixedNow)
	slots, err := uc.Execute(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !slots[0].Equal(booked) {
		t.Errorf("lawyer 2 first slot = %v, want %v", slots[0], booked)
	}
}
