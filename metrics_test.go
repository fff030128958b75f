package main

import "testing"

// makeProfile constructs the standard test profile: 30-year-old male, 175 cm,
// 86.5 kg aiming at 78 kg over a 90-day plan (30 days elapsed at testToday).
// Individual tests tweak fields to exercise specific behavior.
func makeProfile() *UserProfile {
	return &UserProfile{
		Name:          "Alex",
		Age:           30,
		Height:        175,
		CurrentWeight: 86.5,
		Gender:        GenderMale,
		TargetWeight:  78,
		ActivityLevel: ActivityModerate,
		StartDate:     date("2026-08-02"),
		TargetDate:    date("2026-10-31"),
	}
}

// testToday is the fixed "now" used across metric tests: 30 days into the
// 90-day plan above.
func testToday() Date {
	return date("2026-09-01")
}

func makeLog(day string, weight float64) DailyLog {
	return DailyLog{Date: date(day), Weight: weight}
}

/* ─── BMR / TDEE tests ───────────────────────────────────────────────── */

// TestComputeBMR verifies the Mifflin-St Jeor formula for both genders.
//
// Male: 10*86.5 + 6.25*175 - 5*30 + 5 = 1813.75, rounds to 1814.
// Female: same minus 166 relative to male: 1647.75, rounds to 1648.
func TestComputeBMR(t *testing.T) {
	p := makeProfile()
	if got := computeBMR(p); got != 1814 {
		t.Errorf("male BMR = %d, want 1814", got)
	}
	p.Gender = GenderFemale
	if got := computeBMR(p); got != 1648 {
		t.Errorf("female BMR = %d, want 1648", got)
	}
}

func TestComputeTDEE_Multipliers(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  int
	}{
		{ActivitySedentary, 2177},   // 1814 * 1.2 = 2176.8
		{ActivityLight, 2494},       // 1814 * 1.375 = 2494.25
		{ActivityModerate, 2812},    // 1814 * 1.55 = 2811.7
		{ActivityActive, 3129},      // 1814 * 1.725 = 3129.15
		{ActivityExtraActive, 3447}, // 1814 * 1.9 = 3446.6
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			if got := computeTDEE(1814, tc.level); got != tc.want {
				t.Errorf("computeTDEE(1814, %s) = %d, want %d", tc.level, got, tc.want)
			}
		})
	}
}

// TestComputeTDEE_UnknownLevel verifies the sedentary fallback for a level tag
// that is not in the closed set.
func TestComputeTDEE_UnknownLevel(t *testing.T) {
	if got := computeTDEE(1814, ActivityLevel("bogus")); got != 2177 {
		t.Errorf("unknown level TDEE = %d, want sedentary fallback 2177", got)
	}
}

/* ─── Full metric set tests ──────────────────────────────────────────── */

// TestComputeMetrics_MidPlan checks every derived field 30 days into the
// standard 90-day plan.
//
// totalToLose = 8.5 kg, deficit = round(8.5*7700/90) = 727,
// ratio = 30/90, projected = round2(86.5 - 8.5/3) = 83.67.
func TestComputeMetrics_MidPlan(t *testing.T) {
	p := makeProfile()
	logs := []DailyLog{makeLog("2026-09-01", 83.5)}

	m := computeMetrics(p, logs, testToday())

	if m.BMR != 1814 {
		t.Errorf("BMR = %d, want 1814", m.BMR)
	}
	if m.TDEE != 2812 {
		t.Errorf("TDEE = %d, want 2812", m.TDEE)
	}
	if m.DailyDeficitRequired != 727 {
		t.Errorf("deficit = %d, want 727", m.DailyDeficitRequired)
	}
	if m.ProjectedWeightToday != 83.67 {
		t.Errorf("projected = %v, want 83.67", m.ProjectedWeightToday)
	}
	if m.DaysRemaining != 60 {
		t.Errorf("days remaining = %d, want 60", m.DaysRemaining)
	}
	if !m.IsOnTrack {
		t.Error("83.5 logged vs 83.67 projected should be on track")
	}
}

// TestComputeMetrics_OnTrackBand verifies the 0.5 kg tolerance band around
// the projected weight (83.67 here): within it is on track, above it is not.
func TestComputeMetrics_OnTrackBand(t *testing.T) {
	p := makeProfile()

	within := computeMetrics(p, []DailyLog{makeLog("2026-09-01", 84.1)}, testToday())
	if !within.IsOnTrack {
		t.Error("weight within 0.5 kg above projected should be on track")
	}

	over := computeMetrics(p, []DailyLog{makeLog("2026-09-01", 84.3)}, testToday())
	if over.IsOnTrack {
		t.Error("weight more than 0.5 kg above projected should be off track")
	}
}

// TestComputeMetrics_ZeroDayPlan verifies the degenerate start==target plan:
// deficit 0, ratio pinned to 1 so the projection sits at the target weight.
func TestComputeMetrics_ZeroDayPlan(t *testing.T) {
	p := makeProfile()
	p.StartDate = date("2026-09-01")
	p.TargetDate = date("2026-09-01")

	m := computeMetrics(p, nil, testToday())

	if m.DailyDeficitRequired != 0 {
		t.Errorf("zero-day plan deficit = %d, want 0", m.DailyDeficitRequired)
	}
	if m.ProjectedWeightToday != 78 {
		t.Errorf("zero-day plan projection = %v, want target weight 78", m.ProjectedWeightToday)
	}
	if m.DaysRemaining != 0 {
		t.Errorf("zero-day plan days remaining = %d, want 0", m.DaysRemaining)
	}
}

// TestComputeMetrics_PastTarget verifies clamping once today is beyond the
// target date: ratio stays at 1, remaining days floor at 0.
func TestComputeMetrics_PastTarget(t *testing.T) {
	p := makeProfile()
	m := computeMetrics(p, nil, date("2026-12-01"))

	if m.DaysRemaining != 0 {
		t.Errorf("days remaining past target = %d, want 0", m.DaysRemaining)
	}
	if m.ProjectedWeightToday != 78 {
		t.Errorf("projection past target = %v, want 78", m.ProjectedWeightToday)
	}
}

// TestComputeMetrics_BeforeStart verifies the other clamp: a today before the
// plan start pins the ratio to 0 and the projection to the starting weight.
func TestComputeMetrics_BeforeStart(t *testing.T) {
	p := makeProfile()
	m := computeMetrics(p, nil, date("2026-08-02"))

	if m.ProjectedWeightToday != 86.5 {
		t.Errorf("projection at plan start = %v, want 86.5", m.ProjectedWeightToday)
	}
	if m.DaysRemaining != 90 {
		t.Errorf("days remaining at start = %d, want 90", m.DaysRemaining)
	}
}

/* ─── latestLoggedWeight tests ───────────────────────────────────────── */

func TestLatestLoggedWeight(t *testing.T) {
	logs := []DailyLog{
		makeLog("2026-08-30", 84.0),
		makeLog("2026-09-01", 83.4),
		makeLog("2026-08-31", 83.8),
	}
	if got := latestLoggedWeight(logs, 86.5); got != 83.4 {
		t.Errorf("latest weight = %v, want 83.4 (most recent date)", got)
	}
	if got := latestLoggedWeight(nil, 86.5); got != 86.5 {
		t.Errorf("empty-log fallback = %v, want 86.5", got)
	}
}

func TestSortLogsByDate_DoesNotMutate(t *testing.T) {
	logs := []DailyLog{
		makeLog("2026-09-01", 83.4),
		makeLog("2026-08-30", 84.0),
	}
	sorted := sortLogsByDate(logs)
	if !sorted[0].Date.Equal(date("2026-08-30")) {
		t.Errorf("sorted[0] = %s, want 2026-08-30", sorted[0].Date)
	}
	if !logs[0].Date.Equal(date("2026-09-01")) {
		t.Error("sortLogsByDate mutated its input")
	}
}
