package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sipli/internal/model"
)

// Store reads and writes the persisted state document at a fixed path.
type Store struct {
	path string
}

// New returns a store for the given state file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultStatePath returns the XDG-compliant default state file location.
func DefaultStatePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "sipli", "state.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "sipli", "state.json")
}

// LoadOrDefault reads the persisted state. It never fails the caller:
// a missing, unreadable, or corrupt file yields the default empty state.
// Unknown JSON fields (including keys retired in earlier releases, such
// as game_state and manual_weather) are silently dropped.
func (s *Store) LoadOrDefault() PersistedState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultState()
	}

	state := DefaultState()
	if err := json.Unmarshal(data, &state); err != nil {
		return DefaultState()
	}
	state.normalize()
	return state
}

// Save writes the state atomically: marshal to a temp file in the same
// directory, fsync, then rename over the target. A concurrent reader
// sees either the old document or the new one, never a mix.
func (s *Store) Save(state PersistedState) error {
	state.normalize()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		return fmt.Errorf("chmod state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	committed = true
	return nil
}

// AddEntry appends an intake entry and persists before returning, so a
// widget refresh immediately afterward observes it.
func (s *Store) AddEntry(e model.IntakeEntry) error {
	state := s.LoadOrDefault()
	state.Entries = append(state.Entries, e)
	return s.Save(state)
}

// AddEntries appends a batch of entries in one save. Used by the health
// import path, which may carry hundreds of records.
func (s *Store) AddEntries(entries []model.IntakeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	state := s.LoadOrDefault()
	state.Entries = append(state.Entries, entries...)
	return s.Save(state)
}

// RemoveEntry deletes an entry by ID and persists. It reports whether
// the entry existed.
func (s *Store) RemoveEntry(id string) (bool, error) {
	state := s.LoadOrDefault()
	for i, e := range state.Entries {
		if e.ID == id {
			state.Entries = append(state.Entries[:i], state.Entries[i+1:]...)
			return true, s.Save(state)
		}
	}
	return false, nil
}

// UpdateProfile validates and persists a new profile. Malformed values
// are rejected here so downstream calculators never see them.
func (s *Store) UpdateProfile(p model.UserProfile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	state := s.LoadOrDefault()
	state.Profile = p
	return s.Save(state)
}

// SetWeather records the latest weather snapshot.
func (s *Store) SetWeather(w model.WeatherSnapshot) error {
	if w.CapturedAt.IsZero() {
		w.CapturedAt = time.Now()
	}
	state := s.LoadOrDefault()
	state.LastWeather = &w
	return s.Save(state)
}

// ClearWeather forgets the last weather reading, removing any
// weather-based goal adjustment.
func (s *Store) ClearWeather() error {
	state := s.LoadOrDefault()
	state.LastWeather = nil
	return s.Save(state)
}

// SetWorkout records today's workout summary.
func (s *Store) SetWorkout(w model.WorkoutSummary) error {
	if w.CapturedAt.IsZero() {
		w.CapturedAt = time.Now()
	}
	state := s.LoadOrDefault()
	state.LastWorkout = w
	return s.Save(state)
}
