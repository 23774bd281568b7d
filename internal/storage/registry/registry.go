// Package registry resolves named financial connections from the local
// registry file and the secret store.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ttyf-labs/ttyf/internal/common"
	"github.com/ttyf-labs/ttyf/internal/interfaces"
	"github.com/ttyf-labs/ttyf/internal/models"
)

// connectionRecord is one entry of the registry file, a JSON array of
// {id, name} records maintained by the companion CLI.
type connectionRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Registry implements ConnectionStore. It caches resolved connections
// for the process lifetime; a lookup miss triggers one reload from the
// backing file before failing.
type Registry struct {
	path    string
	secrets interfaces.SecretStore
	logger  *common.Logger

	mu          sync.RWMutex
	connections map[string]models.Connection
	order       []string
}

// New creates a registry over the given file path and secret store.
// Call Load before first use; a failed load at startup is fatal.
func New(path string, secrets interfaces.SecretStore, logger *common.Logger) *Registry {
	return &Registry{
		path:    path,
		secrets: secrets,
		logger:  logger,
	}
}

// Load reads the registry file and resolves every credential. A
// registered connection without a stored credential fails the whole
// load.
func (r *Registry) Load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read connection registry %s: %w", r.path, err)
	}

	var records []connectionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse connection registry %s: %w", r.path, err)
	}

	connections := make(map[string]models.Connection, len(records))
	order := make([]string, 0, len(records))
	for _, rec := range records {
		token, err := r.secrets.Get(rec.ID)
		if err != nil {
			if errors.Is(err, models.ErrSecretNotFound) {
				return &models.CredentialMissingError{Name: rec.Name, ItemID: rec.ID}
			}
			return fmt.Errorf("failed to resolve credential for connection %q: %w", rec.Name, err)
		}
		connections[rec.Name] = models.Connection{
			Name:        rec.Name,
			AccessToken: token,
			ItemID:      rec.ID,
		}
		order = append(order, rec.Name)
	}

	r.mu.Lock()
	r.connections = connections
	r.order = order
	r.mu.Unlock()

	r.logger.Debug().Int("connections", len(order)).Msg("Connection registry loaded")
	return nil
}

// Reload re-reads the backing file and re-resolves credentials.
func (r *Registry) Reload() error {
	return r.Load()
}

// Get returns the connection with the given name. A miss reloads the
// registry once, so connections added since startup are picked up.
func (r *Registry) Get(name string) (models.Connection, error) {
	r.mu.RLock()
	conn, ok := r.connections[name]
	r.mu.RUnlock()
	if ok {
		return conn, nil
	}

	if err := r.Load(); err != nil {
		return models.Connection{}, err
	}

	r.mu.RLock()
	conn, ok = r.connections[name]
	r.mu.RUnlock()
	if !ok {
		return models.Connection{}, &models.ConnectionNotFoundError{Name: name}
	}
	return conn, nil
}

// All returns every registered connection in registry file order,
// loading the file first if it has not been read yet.
func (r *Registry) All() ([]models.Connection, error) {
	r.mu.RLock()
	loaded := r.connections != nil
	r.mu.RUnlock()

	if !loaded {
		if err := r.Load(); err != nil {
			return nil, err
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]models.Connection, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.connections[name])
	}
	return all, nil
}
