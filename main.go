// Local, single-user weight-management tracker. State lives in one JSON
// document on disk; every screen recomputes its numbers from that state.
// Usage: go run . (reads .env for GEMINI_API_KEY / HEALTH_TRACK_DATA)
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// app holds the shell's working state: the current document, where it
// persists, the UI language, and the advice endpoint (overridable for tests).
type app struct {
	state         AppState
	path          string
	lang          Language
	in            *bufio.Reader
	geminiBaseURL string
}

func main() {
	log.SetPrefix("lg/health-track-go: ")
	log.SetFlags(0)

	// .env is optional — everything but AI advice works without it.
	_ = godotenv.Load()

	path := storePath()
	state, err := loadState(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load data file %s: %v\n", path, err)
		os.Exit(1)
	}

	baseURL := os.Getenv("GEMINI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	a := &app{
		state:         state,
		path:          path,
		lang:          LangPT,
		in:            bufio.NewReader(os.Stdin),
		geminiBaseURL: baseURL,
	}
	a.run()
}

func (a *app) run() {
	for {
		t := tr(a.lang)
		fmt.Printf("\n=== %s ===\n", t.AppTitle)
		if a.state.Profile == nil {
			fmt.Println(t.MenuOnboarding)
		} else {
			fmt.Println(t.MenuMain)
		}

		choice := a.readLine(t.PromptChoice)
		switch {
		case choice == "q":
			fmt.Println(t.Goodbye)
			return
		case choice == "l":
			if a.lang == LangPT {
				a.lang = LangEN
			} else {
				a.lang = LangPT
			}
		case a.state.Profile == nil:
			a.onboardingChoice(choice)
		default:
			a.mainChoice(choice)
		}
	}
}

func (a *app) onboardingChoice(choice string) {
	t := tr(a.lang)
	switch choice {
	case "1":
		a.createProfile()
	case "2":
		a.importBackup()
	case "3":
		a.loadDemo()
	default:
		fmt.Println(t.InvalidOption)
	}
}

func (a *app) mainChoice(choice string) {
	t := tr(a.lang)
	switch choice {
	case "1":
		a.showOverview()
	case "2":
		a.editDailyLog()
	case "3":
		a.showSpreadsheet()
	case "4":
		a.settings()
	default:
		fmt.Println(t.InvalidOption)
	}
}

/* ─── Onboarding ─────────────────────────────────────────────────────── */

// createProfile walks the user through profile creation and seeds the first
// log for today.
func (a *app) createProfile() {
	now := today()
	profile := UserProfile{
		Name:          a.readLine("Name: "),
		Age:           a.readInt("Age: ", 30),
		Height:        a.readFloat("Height (cm): ", 170),
		CurrentWeight: a.readFloat("Current weight (kg): ", 80),
		TargetWeight:  a.readFloat("Target weight (kg): ", 75),
		StartDate:     now,
		TargetDate:    a.readDate("Target date", now.AddDays(90)),
	}
	if strings.EqualFold(a.readLine("Gender (m/f): "), "m") {
		profile.Gender = GenderMale
	} else {
		profile.Gender = GenderFemale
	}
	fmt.Println("Activity: [1] sedentary [2] light [3] moderate [4] active [5] extra active")
	switch a.readLine(tr(a.lang).PromptChoice) {
	case "1":
		profile.ActivityLevel = ActivitySedentary
	case "2":
		profile.ActivityLevel = ActivityLight
	case "4":
		profile.ActivityLevel = ActivityActive
	case "5":
		profile.ActivityLevel = ActivityExtraActive
	default:
		profile.ActivityLevel = ActivityModerate
	}

	a.state = completeOnboarding(a.state, profile, now, a.lang)
	a.persist()
}

/* ─── Screens ────────────────────────────────────────────────────────── */

// showOverview prints the derived metrics, the projection series for the
// full plan range, and offers an AI advice request.
func (a *app) showOverview() {
	t := tr(a.lang)
	now := today()
	m := computeMetrics(a.state.Profile, a.state.Logs, now)

	fmt.Printf("\n%s: %.1f kg   %s: %.2f kg   ", t.CurrentWeight,
		latestLoggedWeight(a.state.Logs, a.state.Profile.CurrentWeight), t.Projected, m.ProjectedWeightToday)
	if m.IsOnTrack {
		fmt.Println(t.OnTrack)
	} else {
		fmt.Println(t.OffTrack)
	}
	fmt.Printf("BMR: %d kcal   TDEE: %d kcal   %s: %d kcal   %s: %d kcal   %s: %d\n",
		m.BMR, m.TDEE, t.DailyGoal, m.DailyDeficitRequired,
		t.MaxIntake, m.TDEE-m.DailyDeficitRequired, t.DaysLeft, m.DaysRemaining)

	mode := ProjectionLinear
	if a.readLine("Projection [1] linear [2] curved: ") == "2" {
		mode = ProjectionGeometric
	}
	rng := RangeAll
	switch a.readLine("Range [1] 7d [2] 30d [3] all: ") {
	case "1":
		rng = Range7Days
	case "2":
		rng = Range30Days
	}

	points := buildChartSeries(a.state.Profile, a.state.Logs, m, rng, mode, a.lang, now)
	fmt.Printf("\n%-12s %10s %10s %10s %10s %8s %8s\n",
		t.ColDate, t.RealWeight, t.Projected, t.ColCalIn, "Burn", t.ColWater, t.ColSleep)
	for _, pt := range points {
		fmt.Printf("%-12s %10s %10.2f %10s %10s %8s %8s\n",
			pt.Label, fmtFloat(pt.Weight), pt.ExpectedWeight,
			fmtInt(pt.CaloriesIn), fmtInt(pt.CaloriesBurned),
			fmtFloat(pt.Water), fmtFloat(pt.Sleep))
	}

	if strings.EqualFold(a.readLine("AI advice? (y/N): "), "y") {
		fmt.Println(t.AdviceLoading)
		advice := getHealthAdvice(context.Background(), a.state.Profile, a.state.Logs, m, a.lang, a.geminiBaseURL)
		fmt.Println("\n" + advice)
	}
}

// editDailyLog records or updates the log for a chosen date. The weight
// field pre-fills from the latest known weight for convenience.
func (a *app) editDailyLog() {
	t := tr(a.lang)
	now := today()
	date := a.readDate(strings.TrimSuffix(t.PromptDate, ": "), now)

	entry := DailyLog{Date: date}
	for _, l := range a.state.Logs {
		if l.Date.Equal(date) {
			entry = l
			break
		}
	}
	if entry.Weight == 0 {
		entry.Weight = latestLoggedWeight(a.state.Logs, a.state.Profile.CurrentWeight)
	}

	entry.Weight = a.readFloat(t.ColWeight+": ", entry.Weight)
	entry.CaloriesIn = a.readInt(t.ColCalIn+": ", entry.CaloriesIn)
	entry.CaloriesBurnedExercise = a.readInt(t.ColExercise+": ", entry.CaloriesBurnedExercise)
	entry.SleepHours = a.readFloat(t.ColSleep+": ", entry.SleepHours)
	entry.WaterIntake = a.readFloat(t.ColWater+": ", entry.WaterIntake)
	entry.Notes = a.readLine("Notes: ")

	a.state = upsertLog(a.state, entry, now)
	a.persist()
	fmt.Println(t.SavedSuccess)
}

// showSpreadsheet prints the reconciled calendar table (newest first) and
// offers deleting one entry.
func (a *app) showSpreadsheet() {
	t := tr(a.lang)
	rows := buildSpreadsheetRows(a.state.Profile, a.state.Logs, today())

	if f := a.readLine("Filter date (substring, empty = all): "); f != "" {
		rows = filterRows(rows, map[string]string{"date": f})
	}
	sortRows(rows, "date", SortDesc)

	if len(rows) == 0 {
		fmt.Println(t.NoRecords)
		return
	}
	fmt.Printf("\n%-12s %4s %10s %10s %10s %8s %8s\n",
		t.ColDate, "", t.ColWeight, t.ColCalIn, t.ColExercise, t.ColWater, t.ColSleep)
	for _, row := range rows {
		mark := " "
		if row.Exists {
			mark = "*"
		}
		fmt.Printf("%-12s %4s %10.1f %10d %10d %8.1f %8.1f\n",
			row.Date, mark, row.Data.Weight, row.Data.CaloriesIn,
			row.Data.CaloriesBurnedExercise, row.Data.WaterIntake, row.Data.SleepHours)
	}

	if d := a.readLine("Delete date (YYYY-MM-DD, empty = none): "); d != "" {
		date, err := ParseDate(d)
		if err != nil {
			fmt.Println(t.InvalidOption)
			return
		}
		if a.confirm(t.ConfirmDelete) {
			a.state = deleteLog(a.state, date)
			a.persist()
		}
	}
}

// settings handles export, import, demo data, and full reset.
func (a *app) settings() {
	t := tr(a.lang)
	fmt.Println("[1] Export backup  [2] Import backup  [3] Load demo  [4] Reset")
	switch a.readLine(t.PromptChoice) {
	case "1":
		name, err := exportBackup(a.state, today())
		if err != nil {
			log.Printf("[store] export failed: %v", err)
			return
		}
		fmt.Printf("%s %s\n", t.ExportOK, name)
	case "2":
		a.importBackup()
	case "3":
		a.loadDemo()
	case "4":
		if a.confirm(t.ConfirmReset) {
			a.state = resetState()
			a.persist()
			fmt.Println(t.ResetDone)
		}
	default:
		fmt.Println(t.InvalidOption)
	}
}

func (a *app) importBackup() {
	t := tr(a.lang)
	path := a.readLine("File: ")
	if a.state.Profile != nil && !a.confirm(t.ConfirmOverride) {
		return
	}
	imported, err := importBackupFile(path)
	if err != nil {
		// Existing state is preserved unchanged on any rejection.
		fmt.Println(t.InvalidFile)
		return
	}
	a.state = imported
	a.persist()
	fmt.Println(t.ImportOK)
}

func (a *app) loadDemo() {
	t := tr(a.lang)
	if a.state.Profile != nil && !a.confirm(t.ConfirmDemo) {
		return
	}
	a.state = generateDemoData(today())
	a.persist()
	fmt.Println(t.DemoLoaded)
}

// persist writes the whole document after every mutation.
func (a *app) persist() {
	if err := saveState(a.path, a.state); err != nil {
		log.Printf("[store] save failed: %v", err)
	}
}

/* ─── Prompt helpers ─────────────────────────────────────────────────── */

func (a *app) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readFloat prompts for a number; empty or unparseable input keeps def.
func (a *app) readFloat(prompt string, def float64) float64 {
	s := a.readLine(fmt.Sprintf("%s[%g] ", prompt, def))
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func (a *app) readInt(prompt string, def int) int {
	s := a.readLine(fmt.Sprintf("%s[%d] ", prompt, def))
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func (a *app) readDate(prompt string, def Date) Date {
	s := a.readLine(fmt.Sprintf("%s [%s]: ", prompt, def))
	if s == "" {
		return def
	}
	d, err := ParseDate(s)
	if err != nil {
		fmt.Println(tr(a.lang).InvalidOption)
		return def
	}
	return d
}

func (a *app) confirm(msg string) bool {
	return strings.EqualFold(a.readLine(msg+" (y/N): "), "y")
}

/* ─── Table cell formatting ──────────────────────────────────────────── */

// fmtFloat renders an optional value, "-" when absent.
func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
