package main

import (
	"fmt"
	"time"
)

// Date wraps time.Time to serialize as "YYYY-MM-DD" in JSON. All values are
// midnight UTC so that day arithmetic never drifts across timezones.
type Date struct{ time.Time }

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Time.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

/* ─── Enums ──────────────────────────────────────────────────────────── */

// Gender matches the persisted document values ("MALE" / "FEMALE").
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ActivityLevel is a closed set of tags, each mapping to a fixed TDEE
// multiplier. The tag is the in-memory representation; the persisted document
// stores the bare multiplier (see MarshalJSON), so arithmetic never happens
// on the tag itself.
type ActivityLevel string

const (
	ActivitySedentary   ActivityLevel = "sedentary"
	ActivityLight       ActivityLevel = "light"
	ActivityModerate    ActivityLevel = "moderate"
	ActivityActive      ActivityLevel = "active"
	ActivityExtraActive ActivityLevel = "extra_active"
)

// activityMultipliers maps activity level tags to their TDEE multiplier.
// This is the single source of truth for valid activity levels. Also used
// to decode the numeric form found in persisted/imported documents.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:   1.2,
	ActivityLight:       1.375,
	ActivityModerate:    1.55,
	ActivityActive:      1.725,
	ActivityExtraActive: 1.9,
}

// Multiplier returns the TDEE multiplier for the level, or ok=false for an
// unknown tag.
func (a ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// MarshalJSON writes the numeric multiplier, the document format the app has
// always used.
func (a ActivityLevel) MarshalJSON() ([]byte, error) {
	m, ok := activityMultipliers[a]
	if !ok {
		return nil, fmt.Errorf("unknown activity level %q", string(a))
	}
	return []byte(fmt.Sprintf("%g", m)), nil
}

// UnmarshalJSON maps a stored multiplier back to its tag. Unknown multipliers
// are rejected so a corrupted document fails import validation instead of
// silently skewing every TDEE downstream.
func (a *ActivityLevel) UnmarshalJSON(b []byte) error {
	var mult float64
	if _, err := fmt.Sscanf(string(b), "%g", &mult); err != nil {
		return fmt.Errorf("invalid activity level %s", string(b))
	}
	for tag, m := range activityMultipliers {
		if m == mult {
			*a = tag
			return nil
		}
	}
	return fmt.Errorf("unknown activity multiplier %g", mult)
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// UserProfile is the single per-user profile. Validate tags are enforced on
// imported documents only; in-app flows construct profiles through prompts
// that already constrain the values.
type UserProfile struct {
	Name              string        `json:"name"              validate:"required"`
	Age               int           `json:"age"               validate:"gt=0,lt=130"`
	Height            float64       `json:"height"            validate:"gt=0"` // cm
	CurrentWeight     float64       `json:"currentWeight"     validate:"gt=0"` // kg
	Gender            Gender        `json:"gender"            validate:"oneof=MALE FEMALE"`
	BodyFatPercentage *float64      `json:"bodyFatPercentage,omitempty" validate:"omitempty,gt=0,lt=100"`
	TargetWeight      float64       `json:"targetWeight"      validate:"gt=0"` // kg
	ActivityLevel     ActivityLevel `json:"activityLevel"     validate:"oneof=sedentary light moderate active extra_active"`
	StartDate         Date          `json:"startDate"`
	TargetDate        Date          `json:"targetDate"`
}

// DailyLog is one day's record. The collection in AppState holds at most one
// entry per date; upsertLog enforces this.
type DailyLog struct {
	Date                   Date    `json:"date"`
	Weight                 float64 `json:"weight"                 validate:"gte=0"` // kg
	CaloriesIn             int     `json:"caloriesIn"             validate:"gte=0"`
	CaloriesBurnedExercise int     `json:"caloriesBurnedExercise" validate:"gte=0"`
	SleepHours             float64 `json:"sleepHours"             validate:"gte=0,lte=24"`
	WaterIntake            float64 `json:"waterIntake"            validate:"gte=0"` // liters
	Notes                  string  `json:"notes,omitempty"`
}

// HealthMetrics is derived output, recomputed from profile + logs on every
// read, never stored.
type HealthMetrics struct {
	BMR                  int     `json:"bmr"`
	TDEE                 int     `json:"tdee"`
	DailyDeficitRequired int     `json:"dailyDeficitRequired"`
	ProjectedWeightToday float64 `json:"projectedWeightToday"`
	DaysRemaining        int     `json:"daysRemaining"`
	IsOnTrack            bool    `json:"isOnTrack"`
}

// AppState is the whole persisted document: {profile, logs}. Mutations
// replace the value as a unit; log order is irrelevant (consumers re-sort).
type AppState struct {
	Profile *UserProfile `json:"profile"`
	Logs    []DailyLog   `json:"logs"`
}
