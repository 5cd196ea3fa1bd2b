package dates

import (
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2024-12-31", "2000-06-15"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Fatalf("expected %q to be valid", d)
		}
	}

	invalid := []string{"2025/01/01", "01-01-2025", "2025-13-01", "2025-01-32", "not-a-date", "", "2025-02-30"}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Fatalf("expected %q to be invalid", d)
		}
	}
}

func TestParseDatetime(t *testing.T) {
	now := time.Date(2026, time.October, 14, 16, 45, 0, 0, time.UTC)
	sgt := time.FixedZone("SGT", 8*60*60)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-10-14 09:00", time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)},
		{"  2026-10-14 09:00  ", time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)},
		{"2026-10-14T09:30", time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)},
		{"2026-10-14T09:30:15", time.Date(2026, 10, 14, 9, 30, 15, 0, time.UTC)},
		{"2026-10-14T09:00:00+08:00", time.Date(2026, 10, 14, 9, 0, 0, 0, sgt)},
		{"today 14:00", time.Date(2026, 10, 14, 14, 0, 0, 0, time.UTC)},
		{"Tomorrow 9:05", time.Date(2026, 10, 15, 9, 5, 0, 0, time.UTC)},
		{"yesterday 23:59", time.Date(2026, 10, 13, 23, 59, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDatetime(tt.in, now)
		if err != nil {
			t.Fatalf("ParseDatetime(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("ParseDatetime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDatetimeInvalid(t *testing.T) {
	now := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	invalid := []string{"", "2026-10-14", "10:30", "today", "today 25:00", "next week 10:00", "2026-13-01 10:00"}
	for _, s := range invalid {
		if _, err := ParseDatetime(s, now); err == nil {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
