package db

import (
	"context"
	"database/sql"

	"github.com/loginbox/loginbox/internal/server/accounts"
)

// InMemoryRepositoryManager backs the repositories with in-process maps.
// Used by tests and local runs without a database.
type InMemoryRepositoryManager struct {
	accounts accounts.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{accounts: accounts.NewInMemoryRepository()}
}
