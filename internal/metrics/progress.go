package metrics

// GoalProgress returns the percent of goal reached, capped at 100. A
// non-positive goal yields 0 rather than a division by zero.
func GoalProgress(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	pct := total / goal * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// PeriodProgress returns the percent of the goal scaled to a trailing
// window of months. Unlike GoalProgress it is not capped and may exceed
// 100. A non-positive goal or month count yields 0.
func PeriodProgress(total, goal float64, months int) float64 {
	if goal <= 0 || months <= 0 {
		return 0
	}
	return total / (goal * float64(months)) * 100
}
