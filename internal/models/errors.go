package models

import (
	"errors"
	"fmt"
)

// ErrSecretNotFound is returned by a SecretStore when no entry exists
// for the requested key.
var ErrSecretNotFound = errors.New("secret not found")

// ConnectionNotFoundError indicates a connection name absent from the
// registry, after a reload attempt.
type ConnectionNotFoundError struct {
	Name string
}

func (e *ConnectionNotFoundError) Error() string {
	return fmt.Sprintf("connection %q not found in registry", e.Name)
}

// CredentialMissingError indicates a registered connection whose
// credential is absent from the secret store. Registry loading treats
// this as fatal.
type CredentialMissingError struct {
	Name   string
	ItemID string
}

func (e *CredentialMissingError) Error() string {
	return fmt.Sprintf("no stored credential for connection %q (item %s)", e.Name, e.ItemID)
}

// UpstreamRequestError indicates a failed call to the banking API. It is
// never retried; the failing endpoint and status are carried for
// diagnosis.
type UpstreamRequestError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *UpstreamRequestError) Error() string {
	return fmt.Sprintf("upstream request failed: %s (status %d, endpoint %s)", e.Message, e.StatusCode, e.Endpoint)
}

// MissingBalanceError indicates an account with no current balance where
// net worth or liability math requires one.
type MissingBalanceError struct {
	AccountID   string
	AccountName string
}

func (e *MissingBalanceError) Error() string {
	return fmt.Sprintf("account %q (%s) has no current balance", e.AccountName, e.AccountID)
}

// ResourceLoadError indicates an unreadable or malformed bundled
// resource. This is misconfiguration, not a runtime condition to
// recover from.
type ResourceLoadError struct {
	Resource string
	Err      error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("failed to load resource %s: %v", e.Resource, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}
