package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// defaultStorePath mirrors the storage key the app has always used for its
// single persisted document.
const defaultStorePath = "health_track_app_v1.json"

// storePath returns the data file location, overridable via HEALTH_TRACK_DATA.
func storePath() string {
	if p := os.Getenv("HEALTH_TRACK_DATA"); p != "" {
		return p
	}
	return defaultStorePath
}

// loadState reads the persisted {profile, logs} document. A missing file is
// a fresh first run, not an error. A corrupted file is an error; the caller
// decides whether to start over rather than silently discarding data.
func loadState(path string) (AppState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return resetState(), nil
	}
	if err != nil {
		return AppState{}, fmt.Errorf("read state: %w", err)
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return AppState{}, fmt.Errorf("parse state: %w", err)
	}
	if state.Logs == nil {
		state.Logs = []DailyLog{}
	}
	return state, nil
}

// saveState rewrites the whole document. The state is one value replaced
// atomically on each mutation, so last full write wins. No merging.
func saveState(path string, state AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// exportBackup writes the current state to a dated backup file in the
// working directory and returns its name. The file shape is identical to the
// persisted document, so backups are importable as-is.
func exportBackup(state AppState, todayDate Date) (string, error) {
	name := fmt.Sprintf("health-track-backup-%s.json", todayDate)
	if err := saveState(name, state); err != nil {
		return "", err
	}
	return name, nil
}

// importBackupFile reads and validates a backup file. On any failure the
// returned error wraps errInvalidImport (or an I/O error) and no state is
// produced; the caller keeps what it had.
func importBackupFile(path string) (AppState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[store] import read failed: %v", err)
		return AppState{}, fmt.Errorf("read import file: %w", err)
	}
	return decodeImport(data)
}
