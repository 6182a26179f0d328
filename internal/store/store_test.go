package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fitlog/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "fitlog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func mustAppend(t *testing.T, st *Store, e model.Entry) int64 {
	t.Helper()
	id, err := st.Append(e)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	return id
}

var testDate = time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)

func TestAppendAndGet(t *testing.T) {
	st := newTestStore(t)

	id := mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate))
	if id <= 0 {
		t.Fatalf("Append id = %d, want positive", id)
	}

	e, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.ID != id {
		t.Fatalf("ID = %d, want %d", e.ID, id)
	}
	if e.Type != model.TypeWater {
		t.Fatalf("Type = %q, want water", e.Type)
	}
	if e.Quantity != 256 {
		t.Fatalf("Quantity = %v, want 256", e.Quantity)
	}
	if !e.Date.Equal(testDate) {
		t.Fatalf("Date = %v, want %v", e.Date, testDate)
	}
	if e.Mood != "" {
		t.Fatalf("Mood = %q, want empty", e.Mood)
	}
}

func TestAppendMoodEntry(t *testing.T) {
	st := newTestStore(t)

	id := mustAppend(t, st, model.NewMoodEntry(model.MoodHappy, testDate))

	e, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Mood != model.MoodHappy {
		t.Fatalf("Mood = %q, want Happy", e.Mood)
	}
	if e.Quantity != 0 {
		t.Fatalf("Quantity = %v, want 0 on mood entry", e.Quantity)
	}
}

func TestGetNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Get(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing id error = %v, want ErrNotFound", err)
	}
}

func TestGetAllIDOrder(t *testing.T) {
	st := newTestStore(t)

	mustAppend(t, st, model.NewQuantityEntry(model.TypeCalories, 300, testDate))
	mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate))
	mustAppend(t, st, model.NewMoodEntry(model.MoodSad, testDate))

	entries, err := st.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("GetAll len = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ID <= entries[i-1].ID {
			t.Fatalf("ids not ascending: %d then %d", entries[i-1].ID, entries[i].ID)
		}
	}
}

func TestGetByType(t *testing.T) {
	st := newTestStore(t)

	mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate))
	mustAppend(t, st, model.NewQuantityEntry(model.TypeCalories, 300, testDate))
	mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 512, testDate))

	entries, err := st.GetByType(model.TypeWater)
	if err != nil {
		t.Fatalf("GetByType: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("GetByType len = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Type != model.TypeWater {
			t.Fatalf("GetByType returned type %q", e.Type)
		}
	}
}

func TestReplace(t *testing.T) {
	st := newTestStore(t)

	id := mustAppend(t, st, model.NewQuantityEntry(model.TypeCalories, 300, testDate))

	updated := model.NewQuantityEntry(model.TypeCalories, 450, testDate.Add(time.Hour))
	if err := st.Replace(id, updated); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	e, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Quantity != 450 {
		t.Fatalf("Quantity = %v, want 450", e.Quantity)
	}
	if !e.Date.Equal(testDate.Add(time.Hour)) {
		t.Fatalf("Date = %v, want %v", e.Date, testDate.Add(time.Hour))
	}
}

func TestReplaceNotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.Replace(99, model.NewQuantityEntry(model.TypeWater, 256, testDate))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Replace missing id error = %v, want ErrNotFound", err)
	}
}

func TestDeleteByIDs(t *testing.T) {
	st := newTestStore(t)

	id1 := mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate))
	id2 := mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate))
	id3 := mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate))

	// Missing ids in the set are ignored.
	if err := st.DeleteByIDs([]int64{id1, id3, 999}); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}

	entries, err := st.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != id2 {
		t.Fatalf("remaining = %v, want only id %d", entries, id2)
	}

	// Idempotent: deleting the same set again changes nothing.
	if err := st.DeleteByIDs([]int64{id1, id3}); err != nil {
		t.Fatalf("DeleteByIDs again: %v", err)
	}
	entries, _ = st.GetAll()
	if len(entries) != 1 {
		t.Fatalf("remaining after repeat = %d, want 1", len(entries))
	}
}

func TestDeleteByIDsLargeSet(t *testing.T) {
	st := newTestStore(t)

	// More ids than one delete chunk holds.
	count := deleteChunkSize*2 + 37
	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate)))
	}
	keep := mustAppend(t, st, model.NewQuantityEntry(model.TypeCalories, 300, testDate))

	if err := st.DeleteByIDs(ids); err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}

	entries, err := st.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != keep {
		t.Fatalf("remaining = %d entries, want only id %d", len(entries), keep)
	}
}

func TestDeleteByIDsEmpty(t *testing.T) {
	st := newTestStore(t)
	if err := st.DeleteByIDs(nil); err != nil {
		t.Fatalf("DeleteByIDs(nil): %v", err)
	}
}

func TestClearAllKeepsSettings(t *testing.T) {
	st := newTestStore(t)

	mustAppend(t, st, model.NewQuantityEntry(model.TypeWater, 256, testDate))
	if err := st.SetSettingFloat(KeyWaterGoal, 3000); err != nil {
		t.Fatalf("SetSettingFloat: %v", err)
	}

	if err := st.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	entries, _ := st.GetAll()
	if len(entries) != 0 {
		t.Fatalf("entries after clear = %d, want 0", len(entries))
	}

	v, err := st.SettingFloat(KeyWaterGoal, 0)
	if err != nil {
		t.Fatalf("SettingFloat: %v", err)
	}
	if v != 3000 {
		t.Fatalf("water goal after clear = %v, want 3000", v)
	}
}

func TestSettings(t *testing.T) {
	st := newTestStore(t)

	if _, ok, err := st.Setting("missing"); err != nil || ok {
		t.Fatalf("Setting(missing) = ok=%v err=%v, want unset", ok, err)
	}

	if err := st.SetSetting(KeyLastUpdatedDate, "2026-08-28"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	v, ok, err := st.Setting(KeyLastUpdatedDate)
	if err != nil {
		t.Fatalf("Setting: %v", err)
	}
	if !ok || v != "2026-08-28" {
		t.Fatalf("Setting = %q ok=%v, want 2026-08-28", v, ok)
	}

	// Upsert overwrites.
	if err := st.SetSetting(KeyLastUpdatedDate, "2026-08-29"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}
	v, _, _ = st.Setting(KeyLastUpdatedDate)
	if v != "2026-08-29" {
		t.Fatalf("Setting after overwrite = %q, want 2026-08-29", v)
	}
}

func TestSettingFloatDefault(t *testing.T) {
	st := newTestStore(t)

	v, err := st.SettingFloat("unset", 42)
	if err != nil {
		t.Fatalf("SettingFloat: %v", err)
	}
	if v != 42 {
		t.Fatalf("SettingFloat(unset) = %v, want default 42", v)
	}

	// Malformed stored value falls back to the default.
	if err := st.SetSetting("bogus", "not-a-number"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	v, err = st.SettingFloat("bogus", 7)
	if err != nil {
		t.Fatalf("SettingFloat: %v", err)
	}
	if v != 7 {
		t.Fatalf("SettingFloat(bogus) = %v, want default 7", v)
	}
}

func TestGoalsDefaults(t *testing.T) {
	st := newTestStore(t)

	g, err := st.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	want := model.DefaultGoals()
	if g != want {
		t.Fatalf("Goals = %+v, want defaults %+v", g, want)
	}

	if err := st.SetSettingFloat(KeyCalorieGoal, 1800); err != nil {
		t.Fatalf("SetSettingFloat: %v", err)
	}
	g, err = st.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if g.CalorieGoal != 1800 {
		t.Fatalf("CalorieGoal = %v, want 1800", g.CalorieGoal)
	}
	if g.WaterGoal != want.WaterGoal {
		t.Fatalf("WaterGoal = %v, want default %v", g.WaterGoal, want.WaterGoal)
	}
}
