package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fitlog/internal/metrics"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/store"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "fitlog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	svc := New(st)
	svc.now = func() time.Time { return now }
	return svc
}

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestAddCalories(t *testing.T) {
	svc := newTestService(t, testNow)

	e, err := svc.AddCalories(350)
	if err != nil {
		t.Fatalf("AddCalories: %v", err)
	}
	if e.ID <= 0 {
		t.Fatalf("ID = %d, want assigned", e.ID)
	}
	if e.Type != model.TypeCalories || e.Quantity != 350 {
		t.Fatalf("entry = %+v, want 350 calories", e)
	}
}

func TestAddCaloriesRejectsNonPositive(t *testing.T) {
	svc := newTestService(t, testNow)

	for _, v := range []float64{0, -100} {
		_, err := svc.AddCalories(v)
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("AddCalories(%v) error = %v, want ValidationError", v, err)
		}
	}
}

func TestLogMoodRejectsUnknown(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, err := svc.LogMood("Angry"); err == nil {
		t.Fatal("LogMood(Angry) succeeded, want error")
	}
	if _, err := svc.LogMood(model.MoodNeutral); err != nil {
		t.Fatalf("LogMood(Neutral): %v", err)
	}
}

func TestIncrementUsesConfiguredAmount(t *testing.T) {
	svc := newTestService(t, testNow)

	e, total, err := svc.Increment(model.TypeWater, 0)
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if e.Quantity != 256 {
		t.Fatalf("Quantity = %v, want default increment 256", e.Quantity)
	}
	if total != 256 {
		t.Fatalf("total = %v, want 256", total)
	}

	_, total, err = svc.Increment(model.TypeWater, 0)
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if total != 512 {
		t.Fatalf("total after second tap = %v, want 512", total)
	}
}

func TestIncrementOverride(t *testing.T) {
	svc := newTestService(t, testNow)

	e, total, err := svc.Increment(model.TypeExercise, 45)
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if e.Quantity != 45 || total != 45 {
		t.Fatalf("entry %v total %v, want 45 both", e.Quantity, total)
	}
}

func TestIncrementHonorsChangedSetting(t *testing.T) {
	svc := newTestService(t, testNow)

	if err := svc.SetGoal(store.KeyWaterIncrement, 330); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	e, _, err := svc.Increment(model.TypeWater, 0)
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if e.Quantity != 330 {
		t.Fatalf("Quantity = %v, want updated increment 330", e.Quantity)
	}
}

func TestIncrementRejectsWrongType(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, _, err := svc.Increment(model.TypeCalories, 0); err == nil {
		t.Fatal("Increment(calories) succeeded, want error")
	}
	if _, _, err := svc.Increment(model.TypeMood, 0); err == nil {
		t.Fatal("Increment(mood) succeeded, want error")
	}
}

func TestIncrementTotalCountsOnlyToday(t *testing.T) {
	svc := newTestService(t, testNow)

	// An entry from yesterday must not leak into today's total.
	yesterday := model.NewQuantityEntry(model.TypeWater, 1000, testNow.AddDate(0, 0, -1))
	if _, err := svc.append(yesterday); err != nil {
		t.Fatalf("append: %v", err)
	}

	_, total, err := svc.Increment(model.TypeWater, 0)
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if total != 256 {
		t.Fatalf("total = %v, want 256", total)
	}
}

func TestEdit(t *testing.T) {
	svc := newTestService(t, testNow)

	e, err := svc.AddCalories(300)
	if err != nil {
		t.Fatalf("AddCalories: %v", err)
	}

	e.Quantity = 450
	if err := svc.Edit(e.ID, e); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	got, err := svc.Get(e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Quantity != 450 {
		t.Fatalf("Quantity = %v, want 450", got.Quantity)
	}
}

func TestEditNotFound(t *testing.T) {
	svc := newTestService(t, testNow)

	err := svc.Edit(99, model.NewQuantityEntry(model.TypeWater, 256, testNow))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Edit missing id error = %v, want ErrNotFound", err)
	}
}

func TestEditRejectsZeroAmount(t *testing.T) {
	svc := newTestService(t, testNow)

	e, err := svc.AddCalories(300)
	if err != nil {
		t.Fatalf("AddCalories: %v", err)
	}

	e.Quantity = 0
	err = svc.Edit(e.ID, e)
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Edit with zero amount error = %v, want ValidationError", err)
	}

	got, err := svc.Get(e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Quantity != 300 {
		t.Fatalf("stored quantity = %v, want untouched 300", got.Quantity)
	}
}

func TestEditRejectsInvalidReplacement(t *testing.T) {
	svc := newTestService(t, testNow)

	e, err := svc.AddCalories(300)
	if err != nil {
		t.Fatalf("AddCalories: %v", err)
	}

	bad := e
	bad.Quantity = -1
	if err := svc.Edit(e.ID, bad); err == nil {
		t.Fatal("Edit with negative quantity succeeded, want error")
	}
}

func TestSetGoalUnknownKey(t *testing.T) {
	svc := newTestService(t, testNow)

	if err := svc.SetGoal("stepGoal", 10000); err == nil {
		t.Fatal("SetGoal(stepGoal) succeeded, want error")
	}
}

func TestResetDailyStaleDay(t *testing.T) {
	svc := newTestService(t, testNow)

	totals := Totals{Calories: 1200, Water: 1500, Exercise: 30}

	// No lastUpdatedDate yet: stale by definition.
	reset, err := svc.ResetDaily(&totals)
	if err != nil {
		t.Fatalf("ResetDaily: %v", err)
	}
	if !reset {
		t.Fatal("first ResetDaily = false, want reset on missing date")
	}
	if totals != (Totals{}) {
		t.Fatalf("totals = %+v, want zeroed", totals)
	}

	// Same day again: no-op.
	totals = Totals{Calories: 400}
	reset, err = svc.ResetDaily(&totals)
	if err != nil {
		t.Fatalf("ResetDaily: %v", err)
	}
	if reset {
		t.Fatal("same-day ResetDaily = true, want no-op")
	}
	if totals.Calories != 400 {
		t.Fatalf("totals touched on no-op: %+v", totals)
	}
}

func TestResetDailyRollsOver(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, err := svc.ResetDaily(nil); err != nil {
		t.Fatalf("ResetDaily: %v", err)
	}

	// Entries survive the rollover; only display totals reset.
	if _, err := svc.AddCalories(500); err != nil {
		t.Fatalf("AddCalories: %v", err)
	}

	svc.now = func() time.Time { return testNow.AddDate(0, 0, 1) }

	totals := Totals{Calories: 500}
	reset, err := svc.ResetDaily(&totals)
	if err != nil {
		t.Fatalf("ResetDaily: %v", err)
	}
	if !reset {
		t.Fatal("next-day ResetDaily = false, want reset")
	}
	if totals != (Totals{}) {
		t.Fatalf("totals = %+v, want zeroed", totals)
	}

	entries, err := svc.Entries("")
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries after rollover = %d, want 1", len(entries))
	}
}

func TestTodayTotals(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, err := svc.AddCalories(700); err != nil {
		t.Fatalf("AddCalories: %v", err)
	}
	if _, _, err := svc.Increment(model.TypeWater, 0); err != nil {
		t.Fatalf("Increment: %v", err)
	}

	totals, err := svc.TodayTotals()
	if err != nil {
		t.Fatalf("TodayTotals: %v", err)
	}
	if totals.Calories != 700 || totals.Water != 256 || totals.Exercise != 0 {
		t.Fatalf("TodayTotals = %+v, want {700 256 0}", totals)
	}
}

func TestSummary(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, err := svc.AddCalories(750); err != nil {
		t.Fatalf("AddCalories: %v", err)
	}

	s, err := svc.Summary(metrics.WindowToday)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s.Calories != 750 {
		t.Fatalf("Calories = %v, want 750", s.Calories)
	}
	if s.CaloriesPct != 50 {
		t.Fatalf("CaloriesPct = %v, want 50", s.CaloriesPct)
	}
}

func TestDeleteIgnoresMissing(t *testing.T) {
	svc := newTestService(t, testNow)

	e, err := svc.AddCalories(300)
	if err != nil {
		t.Fatalf("AddCalories: %v", err)
	}
	if err := svc.Delete([]int64{e.ID, 999}); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, _ := svc.Entries("")
	if len(entries) != 0 {
		t.Fatalf("entries after delete = %d, want 0", len(entries))
	}
}
