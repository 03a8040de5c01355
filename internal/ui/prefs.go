package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nearby/internal/model"
)

// UIPreferences stores persisted app preferences.
type UIPreferences struct {
	Category       string `json:"category"`
	RadiusMeters   int    `json:"radius_meters"`
	SortByDistance bool   `json:"sort_by_distance"`
}

func defaultUIPreferences() UIPreferences {
	return UIPreferences{
		Category:     string(model.DefaultCategory),
		RadiusMeters: model.DefaultRadius,
	}
}

func prefsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, ".nearby", "ui_prefs.json"), nil
}

// loadUIPreferences reads saved preferences. Values that are out of range
// fall back to defaults.
func loadUIPreferences() UIPreferences {
	path, err := prefsPath()
	if err != nil {
		return defaultUIPreferences()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaultUIPreferences()
	}

	var prefs UIPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return defaultUIPreferences()
	}
	if !model.Category(prefs.Category).Valid() {
		prefs.Category = string(model.DefaultCategory)
	}
	if prefs.RadiusMeters == 0 {
		prefs.RadiusMeters = model.DefaultRadius
	}
	prefs.RadiusMeters = model.ClampRadius(prefs.RadiusMeters)
	return prefs
}

func saveUIPreferences(prefs UIPreferences) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create prefs dir: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
