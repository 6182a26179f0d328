package tracker

import (
	"github.com/fitlog/internal/metrics"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/store"
)

// Totals are the running display totals for the current day. They are a
// display convenience only; the entry log stays the source of truth and
// TodayTotals rederives them at any time.
type Totals struct {
	Calories float64
	Water    float64
	Exercise float64
}

// ResetDaily compares the stored lastUpdatedDate against today. When the
// day has rolled over, or no date was ever stored, it zeroes the caller's
// display totals and persists today's date, reporting true. Persisted
// entries are never touched. Running it again on the same day is a
// no-op, so every startup path can call it unconditionally.
func (s *Service) ResetDaily(totals *Totals) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(model.DayFormat)
	last, ok, err := s.store.Setting(store.KeyLastUpdatedDate)
	if err != nil {
		return false, err
	}
	if ok && last == today {
		return false, nil
	}

	if totals != nil {
		*totals = Totals{}
	}
	if err := s.store.SetSetting(store.KeyLastUpdatedDate, today); err != nil {
		return false, err
	}
	return true, nil
}

// TodayTotals rederives the display totals from the entry log.
func (s *Service) TodayTotals() (Totals, error) {
	entries, err := s.store.GetAll()
	if err != nil {
		return Totals{}, err
	}
	now := s.now()
	return Totals{
		Calories: metrics.SumDay(entries, model.TypeCalories, now),
		Water:    metrics.SumDay(entries, model.TypeWater, now),
		Exercise: metrics.SumDay(entries, model.TypeExercise, now),
	}, nil
}
