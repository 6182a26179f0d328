package metrics

import "github.com/fitlog/internal/model"

// moodSlotsPerMonth is the fixed check-in budget used as the percentage
// denominator: one mood check-in per weekday, approximated as 5 per
// month. Logging more check-ins than a window has slots drives
// Unreported negative; that matches the shipped behavior and is left
// unclamped.
const moodSlotsPerMonth = 5

// MoodBreakdownDay returns mood percentages for the single-day window,
// against a budget of 5 slots.
func MoodBreakdownDay(counts model.MoodCounts) model.MoodBreakdown {
	return breakdown(counts, moodSlotsPerMonth)
}

// MoodBreakdownMonths returns mood percentages for a trailing window of
// months, with the slot budget scaled by the month count.
func MoodBreakdownMonths(counts model.MoodCounts, months int) model.MoodBreakdown {
	return breakdown(counts, moodSlotsPerMonth*months)
}

func breakdown(c model.MoodCounts, slots int) model.MoodBreakdown {
	if slots <= 0 {
		return model.MoodBreakdown{}
	}
	n := float64(slots)
	return model.MoodBreakdown{
		Happy:      float64(c.Happy) / n * 100,
		Neutral:    float64(c.Neutral) / n * 100,
		Sad:        float64(c.Sad) / n * 100,
		Unreported: float64(slots-c.Total()) / n * 100,
	}
}
