package main

import (
	"sort"
	"strconv"
	"strings"
)

// SpreadsheetRow is one calendar day in the editable table view. Exists is
// false for placeholder rows (days inside the plan with no log); their Data
// carries zero values so every cell renders as an editable blank.
type SpreadsheetRow struct {
	Date   Date
	Exists bool
	Data   DailyLog
}

// SortDirection for the single active sort key.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// buildSpreadsheetRows builds one row per calendar day from the plan's start
// through today inclusive, plus a row for every logged date outside that
// range (e.g. entries made for future dates). When start is after today the
// dense walk would be a negative range, so it falls back to the two-date set
// {start, today}. Rows come back in ascending date order; callers apply
// filterRows/sortRows for display.
func buildSpreadsheetRows(p *UserProfile, logs []DailyLog, todayDate Date) []SpreadsheetRow {
	logByDate := make(map[string]DailyLog, len(logs))
	for _, l := range sortLogsByDate(logs) {
		logByDate[l.Date.String()] = l
	}

	dates := make(map[string]Date)
	if !p.StartDate.After(todayDate) {
		for d := p.StartDate; !d.After(todayDate); d = d.AddDays(1) {
			dates[d.String()] = d
		}
	} else {
		dates[p.StartDate.String()] = p.StartDate
		dates[todayDate.String()] = todayDate
	}
	for _, l := range logs {
		dates[l.Date.String()] = l.Date
	}

	rows := make([]SpreadsheetRow, 0, len(dates))
	for key, d := range dates {
		if l, ok := logByDate[key]; ok {
			rows = append(rows, SpreadsheetRow{Date: d, Exists: true, Data: l})
		} else {
			rows = append(rows, SpreadsheetRow{Date: d, Exists: false, Data: DailyLog{Date: d}})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

// cellString renders a row's column value the way the table displays it,
// for substring filtering. Unknown columns render empty.
func cellString(row SpreadsheetRow, key string) string {
	switch key {
	case "date":
		return row.Date.String()
	case "weight":
		return strconv.FormatFloat(row.Data.Weight, 'f', -1, 64)
	case "caloriesIn":
		return strconv.Itoa(row.Data.CaloriesIn)
	case "caloriesBurnedExercise":
		return strconv.Itoa(row.Data.CaloriesBurnedExercise)
	case "waterIntake":
		return strconv.FormatFloat(row.Data.WaterIntake, 'f', -1, 64)
	case "sleepHours":
		return strconv.FormatFloat(row.Data.SleepHours, 'f', -1, 64)
	case "notes":
		return row.Data.Notes
	}
	return ""
}

// cellNumber returns a row's column value for numeric sorting; columns with
// no value (and unknown keys) count as 0.
func cellNumber(row SpreadsheetRow, key string) float64 {
	switch key {
	case "weight":
		return row.Data.Weight
	case "caloriesIn":
		return float64(row.Data.CaloriesIn)
	case "caloriesBurnedExercise":
		return float64(row.Data.CaloriesBurnedExercise)
	case "waterIntake":
		return row.Data.WaterIntake
	case "sleepHours":
		return row.Data.SleepHours
	}
	return 0
}

// filterRows keeps rows matching every active column filter. Matching is
// case-insensitive substring; the date column matches against the raw ISO
// string. Empty filter text means no constraint for that column.
func filterRows(rows []SpreadsheetRow, filters map[string]string) []SpreadsheetRow {
	filtered := make([]SpreadsheetRow, 0, len(rows))
	for _, row := range rows {
		keep := true
		for key, val := range filters {
			if val == "" {
				continue
			}
			if !strings.Contains(strings.ToLower(cellString(row, key)), strings.ToLower(val)) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// sortRows orders rows in place by a single key and direction. The date key
// sorts chronologically; all other keys sort numerically. Ties keep their
// relative order (stable).
func sortRows(rows []SpreadsheetRow, key string, dir SortDirection) {
	less := func(i, j int) bool {
		if key == "date" {
			return rows[i].Date.Before(rows[j].Date)
		}
		return cellNumber(rows[i], key) < cellNumber(rows[j], key)
	}
	if dir == SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(rows, less)
}
