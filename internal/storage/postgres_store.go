package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	"github.com/lifebalance/lifebalance/internal/models"
)

// PostgresStore is the Provider backed by a shared PostgreSQL database. It is
// meant for installs that point the CLI at the same database the companion
// host dashboard reads, so every local write is immediately visible there.
type PostgresStore struct {
	connString string
	db         *sql.DB
}

func NewPostgresStore(connString string) *PostgresStore {
	return &PostgresStore{
		connString: connString,
	}
}

// HasEmbeddedCredentials reports whether the connection string carries a
// password inline. Those are rejected; use the environment, .pgpass, or the
// OS keyring instead.
func HasEmbeddedCredentials(connString string) bool {
	u, err := url.Parse(connString)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if _, err := s.GetState(); err != nil {
		if err := s.SaveState(models.DefaultState()); err != nil {
			return fmt.Errorf("failed to save default state: %w", err)
		}
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.migrate()
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connString)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) migrate() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS state_blobs (
		user_id    TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS accounts (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		identifier       TEXT NOT NULL UNIQUE,
		state            TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL,
		last_login       TIMESTAMPTZ NOT NULL,
		total_time_spent BIGINT NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS session (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		account_id TEXT NOT NULL DEFAULT '',
		guest      BOOLEAN NOT NULL DEFAULT FALSE,
		started_at TIMESTAMPTZ
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *PostgresStore) GetState() (models.StateRecord, error) {
	if s.db == nil {
		return models.StateRecord{}, fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow(`SELECT data FROM state_blobs WHERE user_id = $1`, currentUserKey).Scan(&data)
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

func (s *PostgresStore) SaveState(state models.StateRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO state_blobs (user_id, data, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT(user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		currentUserKey, string(data), time.Now().UTC(),
	)
	return err
}

func (s *PostgresStore) GetAccount(id string) (models.Account, error) {
	return s.getAccountWhere(`id = $1`, id)
}

func (s *PostgresStore) GetAccountByIdentifier(identifier string) (models.Account, error) {
	return s.getAccountWhere(`identifier = $1`, identifier)
}

func (s *PostgresStore) getAccountWhere(where, arg string) (models.Account, error) {
	if s.db == nil {
		return models.Account{}, fmt.Errorf("storage not loaded")
	}

	var acct models.Account
	var stateData string
	var totalNs int64

	err := s.db.QueryRow(
		`SELECT id, name, identifier, state, created_at, last_login, total_time_spent
		 FROM accounts WHERE `+where, arg,
	).Scan(&acct.ID, &acct.Name, &acct.Identifier, &stateData, &acct.CreatedAt, &acct.LastLogin, &totalNs)
	if err != nil {
		return models.Account{}, fmt.Errorf("account not found: %s", arg)
	}

	if err := json.Unmarshal([]byte(stateData), &acct.State); err != nil {
		return models.Account{}, fmt.Errorf("failed to parse account state: %w", err)
	}
	acct.State.ApplyDefaults()
	acct.TotalTimeSpent = time.Duration(totalNs)

	return acct, nil
}

func (s *PostgresStore) GetAllAccounts() ([]models.Account, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(
		`SELECT id, name, identifier, state, created_at, last_login, total_time_spent
		 FROM accounts ORDER BY last_login DESC`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var acct models.Account
		var stateData string
		var totalNs int64

		if err := rows.Scan(&acct.ID, &acct.Name, &acct.Identifier, &stateData, &acct.CreatedAt, &acct.LastLogin, &totalNs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(stateData), &acct.State); err != nil {
			return nil, fmt.Errorf("failed to parse account state: %w", err)
		}
		acct.State.ApplyDefaults()
		acct.TotalTimeSpent = time.Duration(totalNs)
		accounts = append(accounts, acct)
	}

	return accounts, rows.Err()
}

func (s *PostgresStore) SaveAccount(acct models.Account) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	stateData, err := json.Marshal(acct.State)
	if err != nil {
		return fmt.Errorf("failed to serialize account state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO accounts (id, name, identifier, state, created_at, last_login, total_time_spent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT(id) DO UPDATE SET
			name = EXCLUDED.name,
			identifier = EXCLUDED.identifier,
			state = EXCLUDED.state,
			last_login = EXCLUDED.last_login,
			total_time_spent = EXCLUDED.total_time_spent`,
		acct.ID, acct.Name, acct.Identifier, string(stateData),
		acct.CreatedAt.UTC(), acct.LastLogin.UTC(), int64(acct.TotalTimeSpent),
	)
	return err
}

func (s *PostgresStore) DeleteAccount(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

func (s *PostgresStore) GetSession() (models.Session, error) {
	if s.db == nil {
		return models.Session{}, fmt.Errorf("storage not loaded")
	}

	var sess models.Session
	var startedAt sql.NullTime
	err := s.db.QueryRow(`SELECT account_id, guest, started_at FROM session WHERE id = 1`).
		Scan(&sess.AccountID, &sess.Guest, &startedAt)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}

	if startedAt.Valid {
		t := startedAt.Time
		sess.StartedAt = &t
	}

	return sess, nil
}

func (s *PostgresStore) SaveSession(sess models.Session) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var startedAt interface{}
	if sess.StartedAt != nil {
		startedAt = sess.StartedAt.UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO session (id, account_id, guest, started_at) VALUES (1, $1, $2, $3)
		 ON CONFLICT(id) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			guest = EXCLUDED.guest,
			started_at = EXCLUDED.started_at`,
		sess.AccountID, sess.Guest, startedAt,
	)
	return err
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connString
}
