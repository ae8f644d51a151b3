// Package db wires database connections, migrations, and repositories
// behind a single manager so the rest of the server depends on interfaces.
package db

import (
	"context"
	"database/sql"

	"github.com/loginbox/loginbox/internal/server/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
}
