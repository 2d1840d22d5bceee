package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lifebalance/lifebalance/internal/models"
)

const sqliteSchemaVersion = 1

// SQLiteStore keeps the state blob and the multi-user record store in a
// local SQLite database. The state itself stays a single JSON document per
// logical user; SQLite gives durable writes and cheap account queries.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := openSQLite(s.path)
	if err != nil {
		return err
	}
	s.db = db

	if err := s.migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed the default state blob on first init.
	if _, err := s.GetState(); err != nil {
		if err := s.SaveState(models.DefaultState()); err != nil {
			return fmt.Errorf("failed to save default state: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if s.path != ":memory:" {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lifebalance init' first")
		}
	}

	db, err := openSQLite(s.path)
	if err != nil {
		return err
	}
	s.db = db

	return s.migrate()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	return db, nil
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= sqliteSchemaVersion {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS state_blobs (
		user_id    TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS accounts (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		identifier       TEXT NOT NULL UNIQUE,
		state            TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		last_login       TEXT NOT NULL,
		total_time_spent INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS session (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		account_id TEXT NOT NULL DEFAULT '',
		guest      INTEGER NOT NULL DEFAULT 0,
		started_at TEXT
	);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", sqliteSchemaVersion))
	return err
}

// currentUserKey identifies the active local state blob. Per-account history
// lives in the accounts table; this row is always the working copy.
const currentUserKey = "current"

func (s *SQLiteStore) GetState() (models.StateRecord, error) {
	if s.db == nil {
		return models.StateRecord{}, fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow(`SELECT data FROM state_blobs WHERE user_id = ?`, currentUserKey).Scan(&data)
	if err != nil {
		return models.StateRecord{}, fmt.Errorf("state not found: %w", err)
	}

	var state models.StateRecord
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.StateRecord{}, fmt.Errorf("failed to parse state: %w", err)
	}
	state.ApplyDefaults()

	return state, nil
}

func (s *SQLiteStore) SaveState(state models.StateRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO state_blobs (user_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		currentUserKey, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) scanAccount(row *sql.Row) (models.Account, error) {
	var acct models.Account
	var stateData, createdAt, lastLogin string
	var totalNs int64

	if err := row.Scan(&acct.ID, &acct.Name, &acct.Identifier, &stateData, &createdAt, &lastLogin, &totalNs); err != nil {
		return models.Account{}, err
	}

	if err := json.Unmarshal([]byte(stateData), &acct.State); err != nil {
		return models.Account{}, fmt.Errorf("failed to parse account state: %w", err)
	}
	acct.State.ApplyDefaults()
	acct.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	acct.LastLogin, _ = time.Parse(time.RFC3339, lastLogin)
	acct.TotalTimeSpent = time.Duration(totalNs)

	return acct, nil
}

const accountColumns = `id, name, identifier, state, created_at, last_login, total_time_spent`

func (s *SQLiteStore) GetAccount(id string) (models.Account, error) {
	if s.db == nil {
		return models.Account{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	acct, err := s.scanAccount(row)
	if err != nil {
		return models.Account{}, fmt.Errorf("account not found: %s", id)
	}
	return acct, nil
}

func (s *SQLiteStore) GetAccountByIdentifier(identifier string) (models.Account, error) {
	if s.db == nil {
		return models.Account{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE identifier = ?`, identifier)
	acct, err := s.scanAccount(row)
	if err != nil {
		return models.Account{}, fmt.Errorf("account not found: %s", identifier)
	}
	return acct, nil
}

func (s *SQLiteStore) GetAllAccounts() ([]models.Account, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT ` + accountColumns + ` FROM accounts ORDER BY last_login DESC`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var acct models.Account
		var stateData, createdAt, lastLogin string
		var totalNs int64

		if err := rows.Scan(&acct.ID, &acct.Name, &acct.Identifier, &stateData, &createdAt, &lastLogin, &totalNs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(stateData), &acct.State); err != nil {
			return nil, fmt.Errorf("failed to parse account state: %w", err)
		}
		acct.State.ApplyDefaults()
		acct.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		acct.LastLogin, _ = time.Parse(time.RFC3339, lastLogin)
		acct.TotalTimeSpent = time.Duration(totalNs)
		accounts = append(accounts, acct)
	}

	return accounts, rows.Err()
}

func (s *SQLiteStore) SaveAccount(acct models.Account) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	stateData, err := json.Marshal(acct.State)
	if err != nil {
		return fmt.Errorf("failed to serialize account state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO accounts (id, name, identifier, state, created_at, last_login, total_time_spent)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			identifier = excluded.identifier,
			state = excluded.state,
			last_login = excluded.last_login,
			total_time_spent = excluded.total_time_spent`,
		acct.ID, acct.Name, acct.Identifier, string(stateData),
		acct.CreatedAt.UTC().Format(time.RFC3339),
		acct.LastLogin.UTC().Format(time.RFC3339),
		int64(acct.TotalTimeSpent),
	)
	return err
}

func (s *SQLiteStore) DeleteAccount(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetSession() (models.Session, error) {
	if s.db == nil {
		return models.Session{}, fmt.Errorf("storage not loaded")
	}

	var sess models.Session
	var guest int
	var startedAt sql.NullString
	err := s.db.QueryRow(`SELECT account_id, guest, started_at FROM session WHERE id = 1`).
		Scan(&sess.AccountID, &guest, &startedAt)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}

	sess.Guest = guest != 0
	if startedAt.Valid && startedAt.String != "" {
		if t, perr := time.Parse(time.RFC3339, startedAt.String); perr == nil {
			sess.StartedAt = &t
		}
	}

	return sess, nil
}

func (s *SQLiteStore) SaveSession(sess models.Session) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	guest := 0
	if sess.Guest {
		guest = 1
	}
	var startedAt interface{}
	if sess.StartedAt != nil {
		startedAt = sess.StartedAt.UTC().Format(time.RFC3339)
	}

	_, err := s.db.Exec(
		`INSERT INTO session (id, account_id, guest, started_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			account_id = excluded.account_id,
			guest = excluded.guest,
			started_at = excluded.started_at`,
		sess.AccountID, guest, startedAt,
	)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
