package storage

import "github.com/lifebalance/lifebalance/internal/models"

// Provider is the persistence port for the engine. All components depend on
// this abstraction, never on a concrete storage mechanism, so tests can swap
// in a memory-backed store.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Current state blob
	GetState() (models.StateRecord, error)
	SaveState(models.StateRecord) error

	// Multi-user record store
	GetAccount(id string) (models.Account, error)
	GetAccountByIdentifier(identifier string) (models.Account, error)
	GetAllAccounts() ([]models.Account, error)
	SaveAccount(models.Account) error
	DeleteAccount(id string) error

	// Session
	GetSession() (models.Session, error)
	SaveSession(models.Session) error

	// Utils
	GetConfigPath() string
}
