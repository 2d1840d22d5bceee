package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lifebalance/lifebalance/internal/models"
)

func testAccount() models.Account {
	state := models.DefaultState()
	state.WaterIntakeMl = 1500
	state.QuranPagesReadToday = 4
	state.StreakDays = 9

	return models.Account{
		ID:         "acct-1",
		Name:       "Dana",
		Identifier: "dana@example.com",
		State:      state,
		CreatedAt:  time.Now(),
	}
}

func TestUpsertCreatesWhenMissing(t *testing.T) {
	var gotMethod, gotPath string
	var payload UserPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			if r.Header.Get("apikey") != "secret" {
				t.Errorf("missing apikey header on lookup")
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
			return
		}
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	if err := client.Upsert(context.Background(), testAccount()); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST for a new user", gotMethod)
	}
	if gotPath != "/rest/v1/users" {
		t.Errorf("path = %s, want /rest/v1/users", gotPath)
	}
	if payload.ID != "acct-1" || payload.WaterIntake != 1500 || payload.StreakDays != 9 {
		t.Errorf("payload = %+v", payload)
	}
	if payload.CreatedAt == "" {
		t.Error("CreatedAt not stamped on insert")
	}
}

func TestUpsertPatchesWhenPresent(t *testing.T) {
	var gotMethod, gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"acct-1"}]`))
			return
		}
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	if err := client.Upsert(context.Background(), testAccount()); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s, want PATCH for an existing user", gotMethod)
	}
	if gotQuery != "id=eq.acct-1" {
		t.Errorf("query = %s, want id=eq.acct-1", gotQuery)
	}
}

func TestUpsertThrottled(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	if err := client.Upsert(context.Background(), testAccount()); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	first := calls

	// A second upsert inside the rate window is silently dropped.
	if err := client.Upsert(context.Background(), testAccount()); err != nil {
		t.Fatalf("throttled upsert returned error: %v", err)
	}
	if calls != first {
		t.Errorf("throttled upsert still hit the server (%d calls)", calls)
	}
}

func TestNilClientNoops(t *testing.T) {
	var client *Client
	client.UpsertAsync(testAccount())
	if err := client.Upsert(context.Background(), testAccount()); err != nil {
		t.Errorf("nil client Upsert returned %v", err)
	}
	if err := client.Suggest(context.Background(), "", "", "hi"); err != nil {
		t.Errorf("nil client Suggest returned %v", err)
	}
	if New("", "key") != nil {
		t.Error("New with empty URL should return nil")
	}
}

func TestBuildPayloadCapsDetailLists(t *testing.T) {
	acct := testAccount()
	for i := 0; i < 30; i++ {
		acct.State.SleepHistory = append(acct.State.SleepHistory, models.SleepEntry{Quality: models.SleepGood})
		acct.State.Tasks = append(acct.State.Tasks, models.Task{ID: "t", Status: models.TaskDone})
		acct.State.GratitudeNotes = append(acct.State.GratitudeNotes, models.GratitudeNote{ID: "n"})
	}

	payload := BuildPayload(acct)

	if len(payload.SleepData) != 20 {
		t.Errorf("SleepData has %d entries, want 20", len(payload.SleepData))
	}
	if len(payload.TasksData) != 20 {
		t.Errorf("TasksData has %d entries, want 20", len(payload.TasksData))
	}
	if len(payload.GratitudeData) != 20 {
		t.Errorf("GratitudeData has %d entries, want 20", len(payload.GratitudeData))
	}
	if payload.TasksCompleted != 30 {
		t.Errorf("TasksCompleted = %d, want 30", payload.TasksCompleted)
	}
	// The full snapshot keeps everything.
	if len(payload.FullPrefs.Tasks) != 30 {
		t.Errorf("FullPrefs truncated to %d tasks", len(payload.FullPrefs.Tasks))
	}
}
