package appointment

import (
	"testing"
	"time"

	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusCancelled, false},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusAccepted, StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusAccepted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusAccepted, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusAccepted)}
	if err := Transition(ap, StatusCompleted, now); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %s, want completed", ap.Status)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", ap.CompletedAt, now)
	}

	ap = &models.Appointment{Status: string(StatusAccepted)}
	if err := Transition(ap, StatusCancelled, now); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Errorf("CancelledAt = %v, want %v", ap.CancelledAt, now)
	}
}

func TestTransitionRejectsTerminalStates(t *testing.T) {
	now := time.Now()

	for _, from := range []Status{StatusRejected, StatusCompleted, StatusCancelled} {
		ap := &models.Appointment{Status: string(from)}
		err := Transition(ap, StatusAccepted, now)
		if !httperr.IsBusiness(err, "invalid_transition") {
			t.Errorf("Transition from %s: err = %v, want invalid_transition", from, err)
		}
		if ap.Status != string(from) {
			t.Errorf("status mutated on failed transition: %s", ap.Status)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("accepted"); err != nil {
		t.Errorf("ParseStatus(accepted): %v", err)
	}
	if _, err := ParseStatus("done"); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("ParseStatus(done): err = %v, want invalid_status", err)
	}
}
