package formatter

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4521, "-4,521"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "Just now"},
		{now.Add(-45 * time.Minute), "45m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
		{now.Add(-30 * 24 * time.Hour), "Jul 30, 2026"},
	}

	for _, tc := range cases {
		if got := TimeAgo(tc.at, now); got != tc.want {
			t.Errorf("TimeAgo(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}
