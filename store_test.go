package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

/* ─── Load / save tests ──────────────────────────────────────────────── */

func TestLoadState_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	state, err := loadState(path)
	if err != nil {
		t.Fatalf("missing file should be a fresh start, got error: %v", err)
	}
	if state.Profile != nil {
		t.Error("fresh state has a profile")
	}
	if state.Logs == nil || len(state.Logs) != 0 {
		t.Error("fresh state logs must be an empty non-nil slice")
	}
}

func TestLoadState_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadState(path); err == nil {
		t.Fatal("corrupt file should surface an error, not a silent reset")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	original := makeState()

	if err := saveState(path, original); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := loadState(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Profile == nil || loaded.Profile.Name != original.Profile.Name {
		t.Error("profile did not survive the roundtrip")
	}
	if loaded.Profile.ActivityLevel != ActivityModerate {
		t.Errorf("activity level = %q, want moderate (via numeric multiplier)", loaded.Profile.ActivityLevel)
	}
	if !loaded.Profile.StartDate.Equal(original.Profile.StartDate) {
		t.Errorf("start date = %s, want %s", loaded.Profile.StartDate, original.Profile.StartDate)
	}
	if len(loaded.Logs) != len(original.Logs) {
		t.Fatalf("got %d logs, want %d", len(loaded.Logs), len(original.Logs))
	}
	if !loaded.Logs[0].Date.Equal(original.Logs[0].Date) || loaded.Logs[0].Weight != original.Logs[0].Weight {
		t.Errorf("log 0 = %+v, want %+v", loaded.Logs[0], original.Logs[0])
	}
}

func TestStorePath_EnvOverride(t *testing.T) {
	t.Setenv("HEALTH_TRACK_DATA", "/tmp/custom.json")
	if got := storePath(); got != "/tmp/custom.json" {
		t.Errorf("storePath() = %q, want env override", got)
	}

	t.Setenv("HEALTH_TRACK_DATA", "")
	if got := storePath(); got != defaultStorePath {
		t.Errorf("storePath() = %q, want default %q", got, defaultStorePath)
	}
}

/* ─── Backup tests ───────────────────────────────────────────────────── */

func TestExportBackup_ImportRoundtrip(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	state := makeState()
	name, err := exportBackup(state, testToday())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if name != "health-track-backup-2026-09-01.json" {
		t.Errorf("backup name = %q, want dated name", name)
	}

	imported, err := importBackupFile(name)
	if err != nil {
		t.Fatalf("exported backup fails import: %v", err)
	}
	if imported.Profile.Name != state.Profile.Name || len(imported.Logs) != len(state.Logs) {
		t.Error("backup did not roundtrip through import")
	}
}

func TestImportBackupFile_Missing(t *testing.T) {
	_, err := importBackupFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing import file")
	}
	// A read failure is an I/O error, not a validation rejection.
	if errors.Is(err, errInvalidImport) {
		t.Error("missing file should not report as an invalid payload")
	}
}

func TestImportBackupFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"profile": null, "logs": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := importBackupFile(path)
	if !errors.Is(err, errInvalidImport) {
		t.Errorf("error %v does not wrap errInvalidImport", err)
	}
}
