package appointment

import "time"

// Window describes the bookable portion of a day and how far ahead slots are
// offered. Hours are inclusive on both ends: Start 9 / End 18 yields ten
// hour-aligned candidates per day.
type Window struct {
	StartHour   int
	EndHour     int
	HorizonDays int
}

func DefaultWindow() Window {
	return Window{StartHour: 9, EndHour: 18, HorizonDays: 7}
}

// Candidates enumerates every hour-aligned slot in the window over the next
// HorizonDays calendar days, keeping only timestamps strictly after now.
// The result is chronological by construction.
func Candidates(now time.Time, w Window) []time.Time {
	var out []time.Time

	for day := 0; day < w.HorizonDays; day++ {
		d := now.AddDate(0, 0, day)
		for hour := w.StartHour; hour <= w.EndHour; hour++ {
			t := time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
			if t.After(now) {
				out = append(out, t)
			}
		}
	}

	return out
}

// FilterBooked drops candidates already held by a live appointment and
// truncates to limit. limit <= 0 means no truncation.
func FilterBooked(candidates []time.Time, booked []time.Time, limit int) []time.Time {
	taken := make(map[int64]struct{}, len(booked))
	for _, b := range booked {
		taken[b.Unix()] = struct{}{}
	}

	var out []time.Time
	for _, c := range candidates {
		if _, ok := taken[c.Unix()]; ok {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}
