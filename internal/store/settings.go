package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/fitlog/internal/model"
)

// Setting keys recognized by fitlog. Defaults live in code and are not
// written to the table until the first explicit set.
const (
	KeyCalorieGoal       = "calorieGoal"
	KeyWaterGoal         = "waterGoal"
	KeyExerciseGoal      = "exerciseGoal"
	KeyWaterIncrement    = "waterIncrement"
	KeyExerciseIncrement = "exerciseIncrement"
	KeyLastUpdatedDate   = "lastUpdatedDate"
)

// Setting returns the stored value for key and whether it was present.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting upserts one setting. Settings are independent; no
// multi-key transaction is needed.
func (s *Store) SetSetting(key, value string) error {
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}
	return nil
}

// SettingFloat returns the setting parsed as a number, or def when it is
// unset or malformed.
func (s *Store) SettingFloat(key string, def float64) (float64, error) {
	raw, ok, err := s.Setting(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, nil
	}
	return v, nil
}

// SetSettingFloat stores a numeric setting.
func (s *Store) SetSettingFloat(key string, v float64) error {
	return s.SetSetting(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// Goals loads every goal and increment setting, substituting the in-code
// default for anything unset.
func (s *Store) Goals() (model.Goals, error) {
	defs := model.DefaultGoals()
	var g model.Goals
	var err error

	if g.CalorieGoal, err = s.SettingFloat(KeyCalorieGoal, defs.CalorieGoal); err != nil {
		return g, err
	}
	if g.WaterGoal, err = s.SettingFloat(KeyWaterGoal, defs.WaterGoal); err != nil {
		return g, err
	}
	if g.ExerciseGoal, err = s.SettingFloat(KeyExerciseGoal, defs.ExerciseGoal); err != nil {
		return g, err
	}
	if g.WaterIncrement, err = s.SettingFloat(KeyWaterIncrement, defs.WaterIncrement); err != nil {
		return g, err
	}
	if g.ExerciseIncrement, err = s.SettingFloat(KeyExerciseIncrement, defs.ExerciseIncrement); err != nil {
		return g, err
	}
	return g, nil
}
