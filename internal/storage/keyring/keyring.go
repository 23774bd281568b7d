// Package keyring stores access credentials in the OS keychain
package keyring

import (
	"errors"
	"fmt"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/ttyf-labs/ttyf/internal/models"
)

// ServiceName is the keychain service under which credentials are
// stored, shared with the companion CLI.
const ServiceName = "ttyf_plaid"

// Store implements the SecretStore interface over the OS keychain.
type Store struct {
	service string
}

// NewStore creates a keychain-backed secret store.
func NewStore() *Store {
	return &Store{service: ServiceName}
}

// NewStoreWithService creates a store under a non-default service name.
func NewStoreWithService(service string) *Store {
	return &Store{service: service}
}

// Set stores a credential under the given key.
func (s *Store) Set(key, value string) error {
	if err := gokeyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("failed to store credential for %s: %w", key, err)
	}
	return nil
}

// Get retrieves a credential. Returns models.ErrSecretNotFound when no
// entry exists.
func (s *Store) Get(key string) (string, error) {
	value, err := gokeyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", models.ErrSecretNotFound
		}
		return "", fmt.Errorf("failed to read credential for %s: %w", key, err)
	}
	return value, nil
}

// Delete removes a credential. Deleting an absent key is an error.
func (s *Store) Delete(key string) error {
	if err := gokeyring.Delete(s.service, key); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return fmt.Errorf("credential for %s: %w", key, models.ErrSecretNotFound)
		}
		return fmt.Errorf("failed to delete credential for %s: %w", key, err)
	}
	return nil
}
