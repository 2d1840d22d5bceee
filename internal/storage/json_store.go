package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lifebalance/lifebalance/internal/models"
)

type Store struct {
	Version  int                       `json:"version"`
	State    models.StateRecord        `json:"state"`
	Accounts map[string]models.Account `json:"accounts"`
	Session  models.Session            `json:"session"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		State:    models.DefaultState(),
		Accounts: make(map[string]models.Account),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lifebalance init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Missing fields from older blobs pick up documented defaults.
	s.store.State.ApplyDefaults()
	if s.store.Accounts == nil {
		s.store.Accounts = make(map[string]models.Account)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetState() (models.StateRecord, error) {
	if s.store == nil {
		return models.StateRecord{}, fmt.Errorf("storage not loaded")
	}
	return s.store.State, nil
}

func (s *JSONStore) SaveState(state models.StateRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.State = state
	return s.save()
}

func (s *JSONStore) GetAccount(id string) (models.Account, error) {
	if s.store == nil {
		return models.Account{}, fmt.Errorf("storage not loaded")
	}

	acct, ok := s.store.Accounts[id]
	if !ok {
		return models.Account{}, fmt.Errorf("account not found: %s", id)
	}

	return acct, nil
}

func (s *JSONStore) GetAccountByIdentifier(identifier string) (models.Account, error) {
	if s.store == nil {
		return models.Account{}, fmt.Errorf("storage not loaded")
	}

	for _, acct := range s.store.Accounts {
		if acct.Identifier == identifier {
			return acct, nil
		}
	}

	return models.Account{}, fmt.Errorf("account not found: %s", identifier)
}

func (s *JSONStore) GetAllAccounts() ([]models.Account, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	accounts := make([]models.Account, 0, len(s.store.Accounts))
	for _, acct := range s.store.Accounts {
		accounts = append(accounts, acct)
	}

	return accounts, nil
}

func (s *JSONStore) SaveAccount(acct models.Account) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Accounts[acct.ID] = acct
	return s.save()
}

func (s *JSONStore) DeleteAccount(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Accounts[id]; !ok {
		return fmt.Errorf("account not found: %s", id)
	}

	delete(s.store.Accounts, id)
	return s.save()
}

func (s *JSONStore) GetSession() (models.Session, error) {
	if s.store == nil {
		return models.Session{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Session, nil
}

func (s *JSONStore) SaveSession(sess models.Session) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Session = sess
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
