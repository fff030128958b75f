package main

import (
	"testing"
	"time"
)

// date is the test shorthand for building a Date from an ISO string. Panics on
// bad input so tests fail loudly on a typo.
func date(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

/* ─── daysBetween tests ──────────────────────────────────────────────── */

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2026-09-01", "2026-09-01", 0},
		{"forward ten days", "2026-09-01", "2026-09-11", 10},
		{"across month boundary", "2026-08-25", "2026-09-04", 10},
		{"across year boundary", "2025-12-30", "2026-01-02", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := daysBetween(date(tc.a), date(tc.b))
			if got != tc.want {
				t.Errorf("daysBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			// Reversed arguments must give the same non-negative count.
			rev := daysBetween(date(tc.b), date(tc.a))
			if rev != tc.want {
				t.Errorf("daysBetween(%s, %s) = %d, want %d (symmetry)", tc.b, tc.a, rev, tc.want)
			}
		})
	}
}

func TestDaysBetween_NeverNegative(t *testing.T) {
	if got := daysBetween(date("2026-09-11"), date("2026-09-01")); got < 0 {
		t.Errorf("daysBetween returned negative count %d", got)
	}
}

/* ─── Date arithmetic tests ──────────────────────────────────────────── */

func TestAddDays_MonthBoundary(t *testing.T) {
	got := date("2026-08-30").AddDays(3)
	if !got.Equal(date("2026-09-02")) {
		t.Errorf("AddDays(3) from 2026-08-30 = %s, want 2026-09-02", got)
	}
	back := got.AddDays(-3)
	if !back.Equal(date("2026-08-30")) {
		t.Errorf("AddDays(-3) from %s = %s, want 2026-08-30", got, back)
	}
}

func TestIsWeekend(t *testing.T) {
	// 2026-01-02 is a Friday, 2026-01-03 a Saturday, 2026-01-04 a Sunday.
	if date("2026-01-02").IsWeekend() {
		t.Error("Friday reported as weekend")
	}
	if !date("2026-01-03").IsWeekend() {
		t.Error("Saturday not reported as weekend")
	}
	if !date("2026-01-04").IsWeekend() {
		t.Error("Sunday not reported as weekend")
	}
}

func TestMinMaxDate(t *testing.T) {
	a, b := date("2026-01-01"), date("2026-06-01")
	if !minDate(a, b).Equal(a) || !minDate(b, a).Equal(a) {
		t.Error("minDate did not pick the earlier date")
	}
	if !maxDate(a, b).Equal(b) || !maxDate(b, a).Equal(b) {
		t.Error("maxDate did not pick the later date")
	}
}

/* ─── Formatting tests ───────────────────────────────────────────────── */

func TestFormatDate_LocaleOrder(t *testing.T) {
	d := date("2026-01-02")
	if got := formatDate(d, LangPT); got != "02/01/2026" {
		t.Errorf("pt format = %q, want 02/01/2026", got)
	}
	if got := formatDate(d, LangEN); got != "01/02/2026" {
		t.Errorf("en format = %q, want 01/02/2026", got)
	}
}

func TestShortDateLabel(t *testing.T) {
	d := date("2026-01-02") // Friday
	if got := shortDateLabel(d, LangPT); got != "02/01 Sex" {
		t.Errorf("pt label = %q, want \"02/01 Sex\"", got)
	}
	if got := shortDateLabel(d, LangEN); got != "01/02 Fri" {
		t.Errorf("en label = %q, want \"01/02 Fri\"", got)
	}
}

func TestToday_MidnightUTC(t *testing.T) {
	d := today()
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Nanosecond() != 0 {
		t.Errorf("today() returned non-midnight time: %v", d.Time)
	}
	if d.Location() != time.UTC {
		t.Errorf("today() returned non-UTC location: %v", d.Location())
	}
}
