// Package accounts fetches and normalizes account data per connection
package accounts

import (
	"context"
	"fmt"

	"github.com/ttyf-labs/ttyf/internal/common"
	"github.com/ttyf-labs/ttyf/internal/interfaces"
	"github.com/ttyf-labs/ttyf/internal/models"
)

// Service implements AccountService
type Service struct {
	registry interfaces.ConnectionStore
	client   interfaces.BankingClient
	logger   *common.Logger
}

// NewService creates a new account service
func NewService(registry interfaces.ConnectionStore, client interfaces.BankingClient, logger *common.Logger) *Service {
	return &Service{
		registry: registry,
		client:   client,
		logger:   logger,
	}
}

// GetItem fetches the accounts for one named connection. The registry
// resolves the name (reloading once on a miss); the upstream account
// list is normalized by the client.
func (s *Service) GetItem(ctx context.Context, name string) (*models.Item, error) {
	conn, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}

	accounts, err := s.client.ListAccounts(ctx, conn.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for connection %q: %w", name, err)
	}

	s.logger.Debug().Str("connection", name).Int("accounts", len(accounts)).Msg("Fetched accounts")

	return &models.Item{
		Name:        name,
		Accounts:    accounts,
		ItemID:      conn.ItemID,
		AccessToken: conn.AccessToken,
	}, nil
}

// ListItems fetches accounts for every registered connection in
// registry order. A failure on any connection aborts the whole call;
// partial results are never returned.
func (s *Service) ListItems(ctx context.Context) ([]*models.Item, error) {
	connections, err := s.registry.All()
	if err != nil {
		return nil, err
	}

	items := make([]*models.Item, 0, len(connections))
	for _, conn := range connections {
		item, err := s.GetItem(ctx, conn.Name)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
