package view

import (
	"testing"
	"time"
)

func TestRelativeTime_Bands(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 10 * time.Second, "Just now"},
		{"90 seconds", 90 * time.Second, "1 min ago"},
		{"five minutes", 5 * time.Minute, "5 mins ago"},
		{"two hours", 2 * time.Hour, "2 hrs ago"},
		{"one hour", time.Hour, "1 hr ago"},
		{"one day", 25 * time.Hour, "1 day ago"},
		{"ten days", 10 * 24 * time.Hour, "10 days ago"},
		{"two months", 65 * 24 * time.Hour, "2 mos ago"},
		{"one month", 40 * 24 * time.Hour, "1 mo ago"},
		{"400 days", 400 * 24 * time.Hour, "1 yr ago"},
		{"three years", 3 * 366 * 24 * time.Hour, "3 yrs ago"},
	}
	for _, tc := range cases {
		ts := now.Add(-tc.ago)
		if got := RelativeTime(&ts, now); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestRelativeTime_NilIsEmpty(t *testing.T) {
	now := time.Now().UTC()
	if got := RelativeTime(nil, now); got != "" {
		t.Fatalf("got %q want empty", got)
	}
	var zero time.Time
	if got := RelativeTime(&zero, now); got != "" {
		t.Fatalf("zero timestamp: got %q want empty", got)
	}
}

func TestRelativeTime_FutureTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	if got := RelativeTime(&future, now); got != "Just now" {
		t.Fatalf("got %q", got)
	}
}

func TestRelativeTime_BandBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Exactly 365 days is still months, not years.
	ts := now.Add(-365 * 24 * time.Hour)
	if got := RelativeTime(&ts, now); got != "12 mos ago" {
		t.Fatalf("365 days: got %q", got)
	}

	// Exactly 30 days is still days.
	ts = now.Add(-30 * 24 * time.Hour)
	if got := RelativeTime(&ts, now); got != "30 days ago" {
		t.Fatalf("30 days: got %q", got)
	}
}
