package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/melodia/internal/dbx"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a connection or transaction
// and knows how to bring the schema up to date.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Favorites(db dbx.DBTX) favorites.Repository
}
