package model

// Goals holds the user's per-day targets and the fixed amounts added per
// water/exercise tap.
type Goals struct {
	CalorieGoal       float64
	WaterGoal         float64
	ExerciseGoal      float64
	WaterIncrement    float64
	ExerciseIncrement float64
}

// DefaultGoals returns the in-code defaults used until a setting is
// explicitly stored.
func DefaultGoals() Goals {
	return Goals{
		CalorieGoal:       1500,
		WaterGoal:         2000, // ml
		ExerciseGoal:      30,   // minutes
		WaterIncrement:    256,  // ml per tap
		ExerciseIncrement: 30,   // minutes per tap
	}
}

// MoodCounts tallies check-ins per mood value over a window.
type MoodCounts struct {
	Happy   int
	Neutral int
	Sad     int
}

// Total returns the number of counted check-ins.
func (c MoodCounts) Total() int {
	return c.Happy + c.Neutral + c.Sad
}

// MoodBreakdown holds mood percentages against the fixed check-in slot
// budget. Unreported can go negative when more check-ins were logged
// than the window has slots.
type MoodBreakdown struct {
	Happy      float64
	Neutral    float64
	Sad        float64
	Unreported float64
}
