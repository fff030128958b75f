package main

import "math"

// TimeRange selects the chart window relative to today.
type TimeRange string

const (
	Range7Days  TimeRange = "7d"
	Range30Days TimeRange = "30d"
	RangeAll    TimeRange = "all"
)

// ProjectionMode selects the shape of the expected-weight curve.
type ProjectionMode string

const (
	// ProjectionLinear loses the same amount each day.
	ProjectionLinear ProjectionMode = "linear"
	// ProjectionGeometric compounds: loss accelerates toward the target
	// (expected loss scales with the square of the elapsed ratio).
	ProjectionGeometric ProjectionMode = "geometric"
)

// ChartPoint is one day of the dense chart series. Nullable fields are nil
// when the day has no log, never zero, so charts don't render a false
// zero-weight or zero-burn day.
type ChartPoint struct {
	Date           Date     `json:"fullDate"`
	Label          string   `json:"date"` // short localized axis label, e.g. "02/01 Seg"
	IsWeekend      bool     `json:"isWeekend"`
	Weight         *float64 `json:"weight"`
	ExpectedWeight float64  `json:"expectedWeight"`
	CaloriesIn     *int     `json:"caloriesIn"`
	CaloriesBurned *int     `json:"caloriesBurned"`
	CalorieGoal    int      `json:"calorieGoal"`
	Water          *float64 `json:"water"`
	Sleep          *float64 `json:"sleep"`
}

// chartWindow resolves the requested range to concrete [start, end] dates,
// clamped to never extend before the plan's start nor after its target.
func chartWindow(p *UserProfile, rng TimeRange, todayDate Date) (Date, Date) {
	switch rng {
	case Range7Days:
		return maxDate(todayDate.AddDays(-6), p.StartDate),
			minDate(todayDate.AddDays(3), p.TargetDate)
	case Range30Days:
		return maxDate(todayDate.AddDays(-29), p.StartDate),
			minDate(todayDate.AddDays(7), p.TargetDate)
	default:
		return p.StartDate, p.TargetDate
	}
}

// expectedWeightAt computes the goal-trajectory weight for a day at the given
// elapsed ratio, rounded to 2 decimals.
func expectedWeightAt(p *UserProfile, ratio float64, mode ProjectionMode) float64 {
	totalToLose := p.CurrentWeight - p.TargetWeight
	if mode == ProjectionGeometric {
		return round2(p.CurrentWeight - totalToLose*ratio*ratio)
	}
	return round2(p.CurrentWeight - totalToLose*ratio)
}

// buildChartSeries produces the dense, ordered day-by-day series for the
// requested window, merging actual logs with the goal trajectory. The series
// is never empty: if clamping leaves end before start, it degenerates to the
// single start day.
func buildChartSeries(p *UserProfile, logs []DailyLog, m HealthMetrics, rng TimeRange, mode ProjectionMode, lang Language, todayDate Date) []ChartPoint {
	start, end := chartWindow(p, rng, todayDate)
	if end.Before(start) {
		end = start
	}

	// Index logs by date for O(1) merge while walking the window.
	logByDate := make(map[string]DailyLog, len(logs))
	for _, l := range sortLogsByDate(logs) {
		logByDate[l.Date.String()] = l
	}

	// totalDuration of 0 (start == target) is treated as 1 so the per-day
	// ratio stays finite; the single start day then sits at ratio 0.
	totalDuration := daysBetween(p.StartDate, p.TargetDate)
	if totalDuration == 0 {
		totalDuration = 1
	}

	// Constant across the series: depends only on profile-derived metrics.
	calorieGoal := m.TDEE - m.DailyDeficitRequired

	var points []ChartPoint
	for d := start; !d.After(end); d = d.AddDays(1) {
		ratio := math.Min(math.Max(float64(daysBetween(p.StartDate, d))/float64(totalDuration), 0), 1)

		point := ChartPoint{
			Date:           d,
			Label:          shortDateLabel(d, lang),
			IsWeekend:      d.IsWeekend(),
			ExpectedWeight: expectedWeightAt(p, ratio, mode),
			CalorieGoal:    calorieGoal,
		}
		if l, ok := logByDate[d.String()]; ok {
			weight := l.Weight
			caloriesIn := l.CaloriesIn
			burned := m.TDEE + l.CaloriesBurnedExercise
			water := l.WaterIntake
			sleep := l.SleepHours
			point.Weight = &weight
			point.CaloriesIn = &caloriesIn
			point.CaloriesBurned = &burned
			point.Water = &water
			point.Sleep = &sleep
		}
		points = append(points, point)
	}
	return points
}
