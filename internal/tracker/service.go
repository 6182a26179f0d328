// Package tracker implements the user-facing operations over the store:
// validated entry writes, tap increments, edits, deletes, window
// summaries, and the daily reset of display totals.
package tracker

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/fitlog/internal/metrics"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/store"
)

// Service owns no persisted state of its own; everything durable lives
// in the store, and aggregates are derived on demand.
type Service struct {
	store *store.Store
	now   func() time.Time

	// mu serializes compound read-then-write sequences (tap increments,
	// daily reset). Single store calls rely on the storage layer's own
	// linearization. A concurrent writer outside this process could
	// still interleave between the read and the write; accepted for a
	// single-user app.
	mu sync.Mutex
}

// New returns a service over an open store.
func New(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// AddCalories validates and logs a calorie entry, returning it with its
// assigned id.
func (s *Service) AddCalories(amount float64) (model.Entry, error) {
	if err := checkAmount("amount", amount); err != nil {
		return model.Entry{}, err
	}
	return s.append(model.NewQuantityEntry(model.TypeCalories, amount, s.now()))
}

// LogMood records a mood check-in.
func (s *Service) LogMood(m model.Mood) (model.Entry, error) {
	if !m.Valid() {
		return model.Entry{}, &model.ValidationError{Field: "mood", Reason: fmt.Sprintf("unknown mood %q", m)}
	}
	return s.append(model.NewMoodEntry(m, s.now()))
}

// Increment logs one tap of water or exercise using the configured
// increment (or override when positive) and returns the entry together
// with the new total for the current day.
//
// The re-sum of today's entries and the append are separate store calls:
// a writer outside this process could slip between them and the printed
// total would be stale by one tap. Documented rather than locked across
// processes; mu serializes increments from this one.
func (s *Service) Increment(typ model.EntryType, override float64) (model.Entry, float64, error) {
	if typ != model.TypeWater && typ != model.TypeExercise {
		return model.Entry{}, 0, &model.ValidationError{Field: "type", Reason: fmt.Sprintf("cannot increment %q", typ)}
	}
	if override != 0 {
		if err := checkAmount("amount", override); err != nil {
			return model.Entry{}, 0, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.store.Goals()
	if err != nil {
		return model.Entry{}, 0, err
	}
	amount := goals.WaterIncrement
	if typ == model.TypeExercise {
		amount = goals.ExerciseIncrement
	}
	if override != 0 {
		amount = override
	}

	now := s.now()
	entries, err := s.store.GetByType(typ)
	if err != nil {
		return model.Entry{}, 0, err
	}
	total := metrics.SumDay(entries, typ, now)

	e, err := s.append(model.NewQuantityEntry(typ, amount, now))
	if err != nil {
		return model.Entry{}, 0, err
	}
	return e, total + amount, nil
}

// Edit replaces the entry with the given id after validating the
// replacement. Quantity entries must carry a positive amount, same as at
// append time. A missing id is a hard failure (store.ErrNotFound).
func (s *Service) Edit(id int64, e model.Entry) error {
	if e.Type != model.TypeMood {
		if err := checkAmount("amount", e.Quantity); err != nil {
			return err
		}
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return s.store.Replace(id, e)
}

// Get returns one entry by id.
func (s *Service) Get(id int64) (model.Entry, error) {
	return s.store.Get(id)
}

// Entries returns the log, optionally filtered to one type. An empty
// typ means no filter.
func (s *Service) Entries(typ model.EntryType) ([]model.Entry, error) {
	if typ == "" {
		return s.store.GetAll()
	}
	return s.store.GetByType(typ)
}

// Delete removes the given ids. Missing ids are ignored.
func (s *Service) Delete(ids []int64) error {
	return s.store.DeleteByIDs(ids)
}

// ClearAll wipes every entry. Used only by the explicit reset action.
func (s *Service) ClearAll() error {
	return s.store.ClearAll()
}

// Goals returns the current goals and increments.
func (s *Service) Goals() (model.Goals, error) {
	return s.store.Goals()
}

// SetGoal validates and persists one goal or increment setting.
func (s *Service) SetGoal(key string, value float64) error {
	switch key {
	case store.KeyCalorieGoal, store.KeyWaterGoal, store.KeyExerciseGoal,
		store.KeyWaterIncrement, store.KeyExerciseIncrement:
	default:
		return &model.ValidationError{Field: "setting", Reason: fmt.Sprintf("unknown setting %q", key)}
	}
	if err := checkAmount(key, value); err != nil {
		return err
	}
	return s.store.SetSettingFloat(key, value)
}

// Summary aggregates one window over the current entries and goals.
func (s *Service) Summary(w metrics.Window) (metrics.Summary, error) {
	entries, err := s.store.GetAll()
	if err != nil {
		return metrics.Summary{}, err
	}
	goals, err := s.store.Goals()
	if err != nil {
		return metrics.Summary{}, err
	}
	return metrics.Summarize(entries, goals, w, s.now()), nil
}

func (s *Service) append(e model.Entry) (model.Entry, error) {
	if err := e.Validate(); err != nil {
		return model.Entry{}, err
	}
	id, err := s.store.Append(e)
	if err != nil {
		return model.Entry{}, err
	}
	e.ID = id
	return e, nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &model.ValidationError{Field: field, Reason: "must be a positive number"}
	}
	return nil
}
