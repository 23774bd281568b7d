package interfaces

import "github.com/ttyf-labs/ttyf/internal/models"

// SecretStore holds access credentials keyed by institution (item) id.
type SecretStore interface {
	// Set stores a credential under the given key.
	Set(key, value string) error

	// Get retrieves a credential. Returns models.ErrSecretNotFound when
	// no entry exists.
	Get(key string) (string, error)

	// Delete removes a credential. Deleting an absent key is an error.
	Delete(key string) error
}

// ConnectionStore resolves named financial connections. It doubles as a
// process-lifetime cache: a miss triggers one reload from the backing
// file before failing.
type ConnectionStore interface {
	// Get returns the connection with the given name.
	Get(name string) (models.Connection, error)

	// All returns every registered connection in registry file order.
	All() ([]models.Connection, error)

	// Reload re-reads the backing file and re-resolves credentials.
	Reload() error
}
