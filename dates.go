package main

import (
	"fmt"
	"math"
	"time"
)

// today returns the current calendar date at midnight UTC. Core computations
// never call this themselves; the shell passes it in so every calculation
// stays a pure function of its inputs.
func today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// daysBetween returns the absolute difference between two dates in whole
// calendar days, ceiling-rounded. Symmetric: daysBetween(a, b) ==
// daysBetween(b, a), and never negative: reversed plan ranges degrade to
// non-negative counts instead of blowing up downstream loops.
func daysBetween(a, b Date) int {
	diff := b.Time.Sub(a.Time).Hours() / 24
	return int(math.Ceil(math.Abs(diff)))
}

// AddDays returns the date n calendar days later (earlier for negative n).
// Uses AddDate to safely handle month/year boundaries.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Time.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// minDate and maxDate pick the earlier/later of two dates, used to clamp
// chart windows into the plan range.
func minDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

func maxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

// weekdayLabel returns the localized three-letter weekday abbreviation.
func weekdayLabel(d Date, lang Language) string {
	return tr(lang).Weekdays[int(d.Time.Weekday())]
}

// formatDate renders a date in the locale's conventional order:
// DD/MM/YYYY for Portuguese, MM/DD/YYYY for English.
func formatDate(d Date, lang Language) string {
	if lang == LangEN {
		return d.Time.Format("01/02/2006")
	}
	return d.Time.Format("02/01/2006")
}

// shortDateLabel is the compact day-and-month form used on chart axes,
// e.g. "02/01 Seg".
func shortDateLabel(d Date, lang Language) string {
	if lang == LangEN {
		return fmt.Sprintf("%s %s", d.Time.Format("01/02"), weekdayLabel(d, lang))
	}
	return fmt.Sprintf("%s %s", d.Time.Format("02/01"), weekdayLabel(d, lang))
}
