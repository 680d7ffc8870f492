package appointment

import (
	"testing"
	"time"
)

func TestCandidatesFullWindow(t *testing.T) {
	// Before the day opens: every slot of every day is a candidate.
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	got := Candidates(now, DefaultWindow())

	if len(got) != 70 {
		t.Fatalf("len = %d, want 70", len(got))
	}

	first := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	if !got[0].Equal(first) {
		t.Errorf("first = %v, want %v", got[0], first)
	}

	last := time.Date(2025, 3, 16, 18, 0, 0, 0, time.UTC)
	if !got[len(got)-1].Equal(last) {
		t.Errorf("last = %v, want %v", got[len(got)-1], last)
	}
}

func TestCandidatesStrictlyFuture(t *testing.T) {
	// 12:00 sharp: the 12:00 slot itself must not be offered.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	got := Candidates(now, DefaultWindow())

	for _, c := range got {
		if !c.After(now) {
			t.Fatalf("candidate %v is not strictly after now %v", c, now)
		}
	}

	// Day 0 contributes 13..18 only.
	want := 6 + 6*10
	if len(got) != want {
		t.Errorf("len = %d, want %d", len(got), want)
	}
}

func TestCandidatesChronological(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	got := Candidates(now, DefaultWindow())

	for i := 1; i < len(got); i++ {
		if !got[i].After(got[i-1]) {
			t.Fatalf("candidates not ordered at %d: %v then %v", i, got[i-1], got[i])
		}
	}
}

func TestFilterBooked(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	cands := Candidates(now, DefaultWindow())

	booked := []time.Time{cands[0], cands[3]}
	got := FilterBooked(cands, booked, 5)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for _, s := range got {
		for _, b := range booked {
			if s.Equal(b) {
				t.Errorf("booked slot %v returned as available", s)
			}
		}
	}
	if !got[0].Equal(cands[1]) {
		t.Errorf("first = %v, want %v", got[0], cands[1])
	}
}

func TestFilterBookedNoLimit(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	cands := Candidates(now, DefaultWindow())

	got := FilterBooked(cands, nil, 0)
	if len(got) != len(cands) {
		t.Errorf("len = %d, want %d", len(got), len(cands))
	}
}

func TestCustomWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got := Candidates(now, Window{StartHour: 10, EndHour: 12, HorizonDays: 2})

	if len(got) != 6 {
		t.Errorf("len = %d, want 6", len(got))
	}
}
