package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate enforces the struct tags on models.go. Used only on imported
// documents; in-app flows build values through constrained prompts.
var validate = validator.New()

/* ─── Mutation rules ──────────────────────────────────────────────────── */

// upsertLog merges a new or edited log into the state: any existing entry for
// the same date is removed first, so the collection never holds two entries
// for one date. When the log is dated today, the profile's current weight is
// synced to the log's weight; writes for any other date leave the profile
// untouched. The input state is not modified; a new value is returned.
func upsertLog(state AppState, entry DailyLog, todayDate Date) AppState {
	logs := make([]DailyLog, 0, len(state.Logs)+1)
	for _, l := range state.Logs {
		if !l.Date.Equal(entry.Date) {
			logs = append(logs, l)
		}
	}
	logs = append(logs, entry)

	profile := state.Profile
	if profile != nil && entry.Date.Equal(todayDate) {
		p := *profile
		p.CurrentWeight = entry.Weight
		profile = &p
	}
	return AppState{Profile: profile, Logs: logs}
}

// deleteLog removes the entry for the given date. Deleting a date with no
// entry is a no-op.
func deleteLog(state AppState, date Date) AppState {
	logs := make([]DailyLog, 0, len(state.Logs))
	for _, l := range state.Logs {
		if !l.Date.Equal(date) {
			logs = append(logs, l)
		}
	}
	return AppState{Profile: state.Profile, Logs: logs}
}

// resetState returns the first-run state: no profile, no logs.
func resetState() AppState {
	return AppState{Profile: nil, Logs: []DailyLog{}}
}

// completeOnboarding installs a freshly created profile and seeds the first
// log: dated today, carrying the profile's starting weight and a localized
// starter note.
func completeOnboarding(state AppState, profile UserProfile, todayDate Date, lang Language) AppState {
	return AppState{
		Profile: &profile,
		Logs: []DailyLog{{
			Date:   todayDate,
			Weight: profile.CurrentWeight,
			Notes:  tr(lang).JourneyStarted,
		}},
	}
}

/* ─── Import validation ───────────────────────────────────────────────── */

var errInvalidImport = errors.New("invalid import payload")

// decodeImport parses a candidate full-state document. It is strict about
// shape: the document must carry a non-null profile and an array-shaped logs
// key. Anything else is rejected with errInvalidImport so the caller keeps
// its current state unchanged. No partial merge ever happens.
func decodeImport(data []byte) (AppState, error) {
	var doc struct {
		Profile *UserProfile    `json:"profile"`
		Logs    json.RawMessage `json:"logs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", errInvalidImport, err)
	}
	if doc.Profile == nil {
		return AppState{}, fmt.Errorf("%w: missing profile", errInvalidImport)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(doc.Logs)), "[") {
		return AppState{}, fmt.Errorf("%w: logs must be an array", errInvalidImport)
	}

	var logs []DailyLog
	if err := json.Unmarshal(doc.Logs, &logs); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", errInvalidImport, err)
	}

	candidate := AppState{Profile: doc.Profile, Logs: logs}
	if err := validateImport(candidate); err != nil {
		return AppState{}, err
	}
	return candidate, nil
}

// validateImport checks an already-decoded candidate state: profile present
// and structurally valid, every log carrying a real date.
func validateImport(candidate AppState) error {
	if candidate.Profile == nil {
		return fmt.Errorf("%w: missing profile", errInvalidImport)
	}
	if candidate.Logs == nil {
		return fmt.Errorf("%w: logs must be an array", errInvalidImport)
	}
	if err := validate.Struct(candidate.Profile); err != nil {
		return fmt.Errorf("%w: profile: %v", errInvalidImport, err)
	}
	if candidate.Profile.StartDate.IsZero() || candidate.Profile.TargetDate.IsZero() {
		return fmt.Errorf("%w: profile dates are required", errInvalidImport)
	}
	for i, l := range candidate.Logs {
		if l.Date.IsZero() {
			return fmt.Errorf("%w: log %d has no date", errInvalidImport, i)
		}
		if err := validate.Struct(l); err != nil {
			return fmt.Errorf("%w: log %s: %v", errInvalidImport, l.Date, err)
		}
	}
	return nil
}

/* ─── Demo seed ───────────────────────────────────────────────────────── */

// generateDemoData produces a synthetic but internally consistent state: a
// fixed demo profile whose plan started 30 days ago and targets 60 days out,
// plus a 31-day log history simulating non-linear weight loss: a fixed
// daily downward drift with bounded random fluctuation, and bounded random
// calories, exercise, sleep, and water per day. The profile's current weight
// is forced to match the final generated day, keeping profile and history
// consistent.
func generateDemoData(todayDate Date) AppState {
	startDate := todayDate.AddDays(-30)
	targetDate := todayDate.AddDays(60)

	bodyFat := 25.0
	profile := UserProfile{
		Name:              "Alex Demo",
		Age:               30,
		Height:            175,
		CurrentWeight:     86.5,
		Gender:            GenderMale,
		BodyFatPercentage: &bodyFat,
		TargetWeight:      78,
		ActivityLevel:     ActivityModerate,
		StartDate:         startDate,
		TargetDate:        targetDate,
	}

	logs := make([]DailyLog, 0, 31)
	weight := 90.0
	for i := 0; i <= 30; i++ {
		// Base loss of 0.12 kg/day plus fluctuation in [-0.05, 0.15).
		weight += -0.12 + (rand.Float64()*0.2 - 0.05)

		notes := ""
		if i == 30 {
			notes = "Focado / Focused"
		}
		logs = append(logs, DailyLog{
			Date:                   startDate.AddDays(i),
			Weight:                 round1(weight),
			CaloriesIn:             1800 + rand.Intn(800),
			CaloriesBurnedExercise: rand.Intn(600),
			SleepHours:             round1(5 + rand.Float64()*4),
			WaterIntake:            round1(1.0 + rand.Float64()*2.5),
			Notes:                  notes,
		})
	}

	profile.CurrentWeight = logs[len(logs)-1].Weight
	return AppState{Profile: &profile, Logs: logs}
}
