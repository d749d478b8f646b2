package handlers

import (
	"testing"
	"time"
)

func TestResolveReportWindow(t *testing.T) {
	now := time.Date(2025, 11, 7, 15, 30, 0, 0, time.UTC)

	t.Run("daily", func(t *testing.T) {
		start, end, label, err := resolveReportWindow("daily", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
		if !start.Equal(wantStart) || !end.Equal(now) {
			t.Errorf("got [%v, %v], want [%v, %v]", start, end, wantStart, now)
		}
		if label != "daily" {
			t.Errorf("label: got %s, want daily", label)
		}
	})

	t.Run("weekly", func(t *testing.T) {
		start, end, label, err := resolveReportWindow("weekly", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(now.AddDate(0, 0, -7)) || !end.Equal(now) {
			t.Errorf("got [%v, %v]", start, end)
		}
		if label != "weekly" {
			t.Errorf("label: got %s, want weekly", label)
		}
	})

	t.Run("monthly", func(t *testing.T) {
		start, _, _, err := resolveReportWindow("monthly", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(now.AddDate(0, -1, 0)) {
			t.Errorf("start: got %v", start)
		}
	})

	t.Run("explicit date is a UTC calendar day", func(t *testing.T) {
		start, end, label, err := resolveReportWindow("", "2025-11-07", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
		if !start.Equal(wantStart) {
			t.Errorf("start: got %v, want %v", start, wantStart)
		}
		if !end.After(start) || !end.Before(wantStart.Add(24*time.Hour)) {
			t.Errorf("end %v not inside the day starting %v", end, wantStart)
		}
		if label != "2025-11-07" {
			t.Errorf("label: got %s, want 2025-11-07", label)
		}
	})

	t.Run("period wins over date", func(t *testing.T) {
		_, _, label, err := resolveReportWindow("weekly", "2025-11-07", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if label != "weekly" {
			t.Errorf("label: got %s, want weekly", label)
		}
	})

	t.Run("default is daily", func(t *testing.T) {
		start, end, label, err := resolveReportWindow("", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
		if !start.Equal(wantStart) || !end.Equal(now) {
			t.Errorf("got [%v, %v]", start, end)
		}
		if label != "daily" {
			t.Errorf("label: got %s, want daily", label)
		}
	})

	t.Run("bad period", func(t *testing.T) {
		if _, _, _, err := resolveReportWindow("yearly", "", now); err == nil {
			t.Error("expected error for unknown period")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		if _, _, _, err := resolveReportWindow("", "07-11-2025", now); err == nil {
			t.Error("expected error for malformed date")
		}
	})
}
