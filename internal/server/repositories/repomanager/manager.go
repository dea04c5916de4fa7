package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/clients"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/resources"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/roles"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, so services can compose several repositories in one tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Roles(db dbx.DBTX) roles.Repository
	Clients(db dbx.DBTX) clients.Repository
	Resources(db dbx.DBTX) resources.Repository
}
