// Package sync mirrors a condensed per-user summary to the companion host
// dashboard over its REST API. Every call is best-effort: failures are logged
// and swallowed, nothing is retried, and local persistence never waits on the
// network.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
	"golang.org/x/time/rate"

	"github.com/lifebalance/lifebalance/internal/constants"
	"github.com/lifebalance/lifebalance/internal/logger"
	"github.com/lifebalance/lifebalance/internal/models"
)

// UserPayload is the upsert body for the dashboard's users resource: the
// condensed summary plus the full preferences snapshot.
type UserPayload struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Identifier      string `json:"identifier,omitempty"`
	WaterIntake     int    `json:"water_intake"`
	WaterGoal       int    `json:"water_goal"`
	QuranPagesToday int    `json:"quran_pages_today"`
	QuranDailyGoal  int    `json:"quran_daily_goal"`
	QuranTotalPages int    `json:"quran_total_pages"`
	QuranStreak     int    `json:"quran_streak"`
	TasksCompleted  int    `json:"tasks_completed"`
	GratitudeCount  int    `json:"gratitude_count"`
	StreakDays      int    `json:"streak_days"`

	SleepData     []models.SleepEntry    `json:"sleep_data,omitempty"`
	TasksData     []models.Task          `json:"tasks_data,omitempty"`
	GratitudeData []models.GratitudeNote `json:"gratitude_data,omitempty"`
	FullPrefs     models.StateRecord     `json:"full_prefs"`

	UpdatedAt string `json:"updated_at"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SuggestionPayload is the body for a submitted suggestion.
type SuggestionPayload struct {
	UserName       string `json:"user_name,omitempty"`
	UserIdentifier string `json:"user_identifier,omitempty"`
	Text           string `json:"text"`
	CreatedAt      string `json:"created_at"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// LoadConfig reads the sync endpoint from the environment (.env honored via
// godotenv) and the API key from the environment or the OS keyring. An empty
// URL means sync is disabled.
func LoadConfig() (url, key string) {
	_ = godotenv.Load(constants.SyncEnvFile)

	url = os.Getenv(constants.SyncURLEnv)
	if url == "" {
		return "", ""
	}

	key = os.Getenv(constants.SyncKeyEnv)
	if key == "" {
		if stored, err := keyring.Get(constants.SyncKeyringService, "api-key"); err == nil {
			key = stored
		}
	}

	return url, key
}

// New returns a sync client, or nil when no endpoint is configured. A nil
// *Client is safe to use; all methods no-op.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		// One upsert every few seconds is plenty for a single user mashing
		// the water button.
		limiter: rate.NewLimiter(rate.Every(3*time.Second), 1),
	}
}

// UpsertAsync pushes the account summary in the background.
func (c *Client) UpsertAsync(acct models.Account) {
	if c == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := c.Upsert(ctx, acct); err != nil {
			logger.Warn("Remote sync failed", "account", acct.ID, "error", err)
		}
	}()
}

// Upsert sends the condensed summary for the account: PATCH when the row
// already exists, POST otherwise.
func (c *Client) Upsert(ctx context.Context, acct models.Account) error {
	if c == nil {
		return nil
	}
	if !c.limiter.Allow() {
		logger.Debug("Sync throttled, dropping upsert", "account", acct.ID)
		return nil
	}

	payload := BuildPayload(acct)

	exists, err := c.userExists(ctx, acct.ID)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if exists {
		endpoint := fmt.Sprintf("users?id=eq.%s", url.QueryEscape(acct.ID))
		return c.do(ctx, http.MethodPatch, endpoint, body)
	}

	payload.CreatedAt = payload.UpdatedAt
	body, err = json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "users", body)
}

// Suggest posts a suggestion record.
func (c *Client) Suggest(ctx context.Context, name, identifier, text string) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(SuggestionPayload{
		UserName:       name,
		UserIdentifier: identifier,
		Text:           text,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "suggestions", body)
}

// BuildPayload condenses the account state into the dashboard summary. The
// per-domain detail lists are capped at the 20 most recent items.
func BuildPayload(acct models.Account) UserPayload {
	state := acct.State

	return UserPayload{
		ID:              acct.ID,
		Name:            acct.Name,
		Identifier:      acct.Identifier,
		WaterIntake:     state.WaterIntakeMl,
		WaterGoal:       state.WaterGoalMl(),
		QuranPagesToday: state.QuranPagesReadToday,
		QuranDailyGoal:  state.QuranPagesGoal,
		QuranTotalPages: state.QuranTotalPagesEver,
		QuranStreak:     state.QuranStreakDays,
		TasksCompleted:  state.DoneTaskCount(),
		GratitudeCount:  len(state.GratitudeNotes),
		StreakDays:      state.StreakDays,
		SleepData:       lastN(state.SleepHistory, 20),
		TasksData:       lastN(state.Tasks, 20),
		GratitudeData:   firstN(state.GratitudeNotes, 20),
		FullPrefs:       state,
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func (c *Client) userExists(ctx context.Context, id string) (bool, error) {
	endpoint := fmt.Sprintf("users?id=eq.%s&select=id", url.QueryEscape(id))
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return false, fmt.Errorf("sync lookup failed with status %d", res.StatusCode)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) error {
	req, err := c.newRequest(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("sync request failed with status %d: %s", res.StatusCode, string(msg))
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/rest/v1/%s", c.baseURL, endpoint), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}
