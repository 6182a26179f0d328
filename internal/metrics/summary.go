package metrics

import (
	"time"

	"github.com/fitlog/internal/model"
)

// Summary holds aggregated totals and goal progress for one window.
type Summary struct {
	Window   Window
	Calories float64
	Water    float64
	Exercise float64

	CaloriesPct float64
	WaterPct    float64
	ExercisePct float64

	Moods   model.MoodCounts
	MoodPct model.MoodBreakdown

	Goals model.Goals
}

// Summarize computes the full summary for a window at the given time.
// Today and current-month progress is capped at 100%; the trailing
// 3-month and 12-month windows report uncapped progress against the goal
// scaled by the window's month count. The current-month view keeps the
// original product's quirk of charting the current day's mood check-ins.
func Summarize(entries []model.Entry, goals model.Goals, w Window, now time.Time) Summary {
	s := Summary{Window: w, Goals: goals}

	switch w {
	case WindowToday:
		s.Calories = SumDay(entries, model.TypeCalories, now)
		s.Water = SumDay(entries, model.TypeWater, now)
		s.Exercise = SumDay(entries, model.TypeExercise, now)
		s.CaloriesPct = GoalProgress(s.Calories, goals.CalorieGoal)
		s.WaterPct = GoalProgress(s.Water, goals.WaterGoal)
		s.ExercisePct = GoalProgress(s.Exercise, goals.ExerciseGoal)
		s.Moods = CountMoodsDay(entries, now)
		s.MoodPct = MoodBreakdownDay(s.Moods)

	case WindowMonth:
		s.Calories = SumMonth(entries, model.TypeCalories, now)
		s.Water = SumMonth(entries, model.TypeWater, now)
		s.Exercise = SumMonth(entries, model.TypeExercise, now)
		s.CaloriesPct = GoalProgress(s.Calories, goals.CalorieGoal)
		s.WaterPct = GoalProgress(s.Water, goals.WaterGoal)
		s.ExercisePct = GoalProgress(s.Exercise, goals.ExerciseGoal)
		s.Moods = CountMoodsDay(entries, now)
		s.MoodPct = MoodBreakdownDay(s.Moods)

	case WindowPast3Months, WindowYear:
		months := w.Months()
		from, to := PastMonthsRange(now, months)
		s.Calories = SumQuantity(entries, model.TypeCalories, from, to)
		s.Water = SumQuantity(entries, model.TypeWater, from, to)
		s.Exercise = SumQuantity(entries, model.TypeExercise, from, to)
		s.CaloriesPct = PeriodProgress(s.Calories, goals.CalorieGoal, months)
		s.WaterPct = PeriodProgress(s.Water, goals.WaterGoal, months)
		s.ExercisePct = PeriodProgress(s.Exercise, goals.ExerciseGoal, months)
		s.Moods = CountMoods(entries, from, to)
		s.MoodPct = MoodBreakdownMonths(s.Moods, months)
	}

	return s
}
