package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lifebalance/lifebalance/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "lifebalance.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return store
}

func TestJSONStoreInitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifebalance.json")
	store := NewJSONStore(path)

	if err := store.Load(); err == nil {
		t.Fatal("expected load to fail before init")
	}
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Fatal("expected second init to fail")
	}

	state, err := store.GetState()
	if err != nil {
		t.Fatal(err)
	}
	state.WaterIntakeMl = 750
	state.StreakDays = 3
	if err := store.SaveState(state); err != nil {
		t.Fatal(err)
	}

	// A fresh instance reads the same data back.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	got, err := reopened.GetState()
	if err != nil {
		t.Fatal(err)
	}
	if got.WaterIntakeMl != 750 || got.StreakDays != 3 {
		t.Errorf("got intake=%d streak=%d, want 750/3", got.WaterIntakeMl, got.StreakDays)
	}
}

func TestJSONStoreFillsDefaultsForOldBlobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifebalance.json")

	// A blob written by an older version: most fields missing.
	blob := `{"version":1,"state":{"water_intake_ml":500,"streak_days":2}}`
	if err := os.WriteFile(path, []byte(blob), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	state, err := store.GetState()
	if err != nil {
		t.Fatal(err)
	}
	if state.WaterIntakeMl != 500 {
		t.Errorf("WaterIntakeMl = %d, want 500", state.WaterIntakeMl)
	}
	if state.WaterGoalLiters != 2.0 {
		t.Errorf("WaterGoalLiters = %f, want default 2.0", state.WaterGoalLiters)
	}
	if state.WakeupTime != "07:00" {
		t.Errorf("WakeupTime = %q, want default 07:00", state.WakeupTime)
	}
	if state.QuranPagesGoal != 5 {
		t.Errorf("QuranPagesGoal = %d, want default 5", state.QuranPagesGoal)
	}
	if state.Tasks == nil || state.SleepHistory == nil || state.GratitudeNotes == nil {
		t.Error("nil slices not replaced with empty ones")
	}
}

func TestJSONStoreAccounts(t *testing.T) {
	store := newTestJSONStore(t)

	acct := models.Account{
		ID:         "a1",
		Name:       "Dana",
		Identifier: "dana@example.com",
		State:      models.DefaultState(),
		CreatedAt:  time.Now(),
	}
	if err := store.SaveAccount(acct); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetAccountByIdentifier("dana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "a1" || got.Name != "Dana" {
		t.Errorf("got %+v", got)
	}

	all, err := store.GetAllAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("have %d accounts, want 1", len(all))
	}

	if err := store.DeleteAccount("a1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetAccount("a1"); err == nil {
		t.Error("account still present after delete")
	}
	if err := store.DeleteAccount("a1"); err == nil {
		t.Error("expected delete of missing account to fail")
	}
}

func TestJSONStoreSession(t *testing.T) {
	store := newTestJSONStore(t)

	sess, err := store.GetSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.SignedIn() {
		t.Error("fresh store reports a signed-in session")
	}

	now := time.Now()
	if err := store.SaveSession(models.Session{AccountID: "a1", StartedAt: &now}); err != nil {
		t.Fatal(err)
	}

	sess, err = store.GetSession()
	if err != nil {
		t.Fatal(err)
	}
	if !sess.SignedIn() || sess.AccountID != "a1" {
		t.Errorf("session = %+v", sess)
	}
	if sess.StartedAt == nil {
		t.Error("StartedAt lost")
	}
}
