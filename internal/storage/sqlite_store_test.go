package storage

import (
	"testing"
	"time"

	"github.com/lifebalance/lifebalance/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(":memory:")
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreStateRoundtrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	state, err := store.GetState()
	if err != nil {
		t.Fatalf("seeded state missing: %v", err)
	}
	if state.WaterGoalLiters != 2.0 {
		t.Errorf("default goal = %f, want 2.0", state.WaterGoalLiters)
	}

	state.WaterIntakeMl = 1200
	state.Tasks = append(state.Tasks, models.Task{ID: "t1", Title: "stretch", Status: models.TaskTodo, CreatedAt: time.Now()})
	state.NotifiedSlots = map[string]string{"09:00": "2026-03-10"}
	if err := store.SaveState(state); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetState()
	if err != nil {
		t.Fatal(err)
	}
	if got.WaterIntakeMl != 1200 {
		t.Errorf("WaterIntakeMl = %d, want 1200", got.WaterIntakeMl)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Title != "stretch" {
		t.Errorf("tasks = %+v", got.Tasks)
	}
	if got.NotifiedSlots["09:00"] != "2026-03-10" {
		t.Errorf("NotifiedSlots = %v", got.NotifiedSlots)
	}
}

func TestSQLiteStoreAccountUpsert(t *testing.T) {
	store := newTestSQLiteStore(t)

	acct := models.Account{
		ID:         "a1",
		Name:       "Omar",
		Identifier: "omar",
		State:      models.DefaultState(),
		CreatedAt:  time.Now(),
		LastLogin:  time.Now(),
	}
	if err := store.SaveAccount(acct); err != nil {
		t.Fatal(err)
	}

	acct.Name = "Omar K"
	acct.TotalTimeSpent = 90 * time.Minute
	if err := store.SaveAccount(acct); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetAccount("a1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Omar K" {
		t.Errorf("Name = %q, want updated name", got.Name)
	}
	if got.TotalTimeSpent != 90*time.Minute {
		t.Errorf("TotalTimeSpent = %v, want 90m", got.TotalTimeSpent)
	}

	all, err := store.GetAllAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("upsert created %d rows, want 1", len(all))
	}
}

func TestSQLiteStoreSessionSingleRow(t *testing.T) {
	store := newTestSQLiteStore(t)

	sess, err := store.GetSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.SignedIn() {
		t.Error("fresh store reports a signed-in session")
	}

	if err := store.SaveSession(models.Session{AccountID: "a1"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSession(models.Session{Guest: true}); err != nil {
		t.Fatal(err)
	}

	sess, err = store.GetSession()
	if err != nil {
		t.Fatal(err)
	}
	if sess.SignedIn() {
		t.Error("guest session reports signed in")
	}
	if !sess.Guest {
		t.Error("guest flag lost")
	}
}
