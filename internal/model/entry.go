package model

import (
	"fmt"
	"time"
)

// DayFormat is the calendar-day encoding used for same-day comparisons
// and for the lastUpdatedDate setting.
const DayFormat = "2006-01-02"

// EntryType identifies what a logged entry measures. The set is closed.
type EntryType string

const (
	TypeCalories EntryType = "calories"
	TypeWater    EntryType = "water"
	TypeExercise EntryType = "exercise"
	TypeMood     EntryType = "mood"
)

// EntryTypes lists every valid entry type.
var EntryTypes = []EntryType{TypeCalories, TypeWater, TypeExercise, TypeMood}

// Valid reports whether t is a member of the closed type set.
func (t EntryType) Valid() bool {
	switch t {
	case TypeCalories, TypeWater, TypeExercise, TypeMood:
		return true
	}
	return false
}

// Unit returns the display unit for quantities of this type.
func (t EntryType) Unit() string {
	switch t {
	case TypeCalories:
		return "kcal"
	case TypeWater:
		return "ml"
	case TypeExercise:
		return "min"
	}
	return ""
}

// ParseEntryType parses a user-supplied type name.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(s)
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Reason: fmt.Sprintf("%q is not one of calories, water, exercise, mood", s)}
	}
	return t, nil
}

// Mood is a check-in value for mood entries.
type Mood string

const (
	MoodHappy   Mood = "Happy"
	MoodNeutral Mood = "Neutral"
	MoodSad     Mood = "Sad"
)

// Moods lists every valid mood value.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad}

// Valid reports whether m is a member of the closed mood set.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad:
		return true
	}
	return false
}

// ParseMood parses a user-supplied mood name.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", &ValidationError{Field: "mood", Reason: fmt.Sprintf("%q is not one of Happy, Neutral, Sad", s)}
	}
	return m, nil
}

// Entry is one immutable logged occurrence of calorie intake, water
// intake, exercise, or a mood check-in. Entries are only ever replaced
// whole (edit) or deleted by id; Quantity is meaningful iff the type is
// not mood, Mood iff it is.
type Entry struct {
	ID       int64
	Date     time.Time
	Type     EntryType
	Quantity float64
	Mood     Mood
}

// NewQuantityEntry builds an unvalidated calories/water/exercise entry.
func NewQuantityEntry(t EntryType, quantity float64, date time.Time) Entry {
	return Entry{Date: date, Type: t, Quantity: quantity}
}

// NewMoodEntry builds an unvalidated mood check-in entry.
func NewMoodEntry(m Mood, date time.Time) Entry {
	return Entry{Date: date, Type: TypeMood, Mood: m}
}

// Day returns the calendar-day encoding of the entry date.
func (e Entry) Day() string {
	return e.Date.Format(DayFormat)
}

// Validate checks the quantity/mood presence invariant.
func (e Entry) Validate() error {
	if !e.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown type %q", e.Type)}
	}
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "missing"}
	}
	if e.Type == TypeMood {
		if !e.Mood.Valid() {
			return &ValidationError{Field: "mood", Reason: fmt.Sprintf("unknown mood %q", e.Mood)}
		}
		if e.Quantity != 0 {
			return &ValidationError{Field: "quantity", Reason: "not allowed on mood entries"}
		}
		return nil
	}
	if e.Mood != "" {
		return &ValidationError{Field: "mood", Reason: "only allowed on mood entries"}
	}
	if e.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}

// ValidationError reports user input rejected at the boundary before it
// reaches storage.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
