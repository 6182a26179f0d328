// Package metrics computes sums, mood counts, and goal progress over
// windows of the entry log. Every function is pure: it operates on the
// slices and values passed in and never touches storage.
package metrics

import (
	"time"

	"github.com/fitlog/internal/model"
)

// SumQuantity sums the quantity of entries matching typ with a date in
// [from, to] inclusive. Entries without a quantity count as zero and an
// empty match set sums to 0, so the result is always a finite number.
func SumQuantity(entries []model.Entry, typ model.EntryType, from, to time.Time) float64 {
	var total float64
	for _, e := range entries {
		if e.Type != typ || e.Date.IsZero() {
			continue
		}
		if inRange(e.Date, from, to) {
			total += e.Quantity
		}
	}
	return total
}

// CountMoods tallies mood check-ins with a date in [from, to] inclusive.
// Values outside the known mood set are ignored, never an error.
func CountMoods(entries []model.Entry, from, to time.Time) model.MoodCounts {
	var counts model.MoodCounts
	for _, e := range entries {
		if e.Type != model.TypeMood || e.Date.IsZero() || !inRange(e.Date, from, to) {
			continue
		}
		countMood(&counts, e.Mood)
	}
	return counts
}

// SumDay sums quantities for entries on the same calendar day as now,
// matching on the YYYY-MM-DD encoding of the entry date.
func SumDay(entries []model.Entry, typ model.EntryType, now time.Time) float64 {
	day := now.Format(model.DayFormat)
	var total float64
	for _, e := range entries {
		if e.Type == typ && !e.Date.IsZero() && e.Day() == day {
			total += e.Quantity
		}
	}
	return total
}

// CountMoodsDay tallies mood check-ins on the same calendar day as now.
func CountMoodsDay(entries []model.Entry, now time.Time) model.MoodCounts {
	day := now.Format(model.DayFormat)
	var counts model.MoodCounts
	for _, e := range entries {
		if e.Type == model.TypeMood && !e.Date.IsZero() && e.Day() == day {
			countMood(&counts, e.Mood)
		}
	}
	return counts
}

// SumMonth sums quantities for entries in the same calendar month and
// year as now.
func SumMonth(entries []model.Entry, typ model.EntryType, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		if e.Type != typ || e.Date.IsZero() {
			continue
		}
		if e.Date.Month() == now.Month() && e.Date.Year() == now.Year() {
			total += e.Quantity
		}
	}
	return total
}

// PastMonthsRange returns the inclusive [now - months, now] window using
// calendar-month subtraction: 3 months back from March 15 is December 15,
// not 90 days.
func PastMonthsRange(now time.Time, months int) (time.Time, time.Time) {
	return now.AddDate(0, -months, 0), now
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

func countMood(counts *model.MoodCounts, m model.Mood) {
	switch m {
	case model.MoodHappy:
		counts.Happy++
	case model.MoodNeutral:
		counts.Neutral++
	case model.MoodSad:
		counts.Sad++
	}
}
