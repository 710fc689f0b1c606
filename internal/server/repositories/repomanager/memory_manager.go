package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/melodia/internal/dbx"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/memory"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/users"
)

// MemoryRepositoryManager serves every caller from one shared memory.Store.
// The DBTX arguments are ignored and may be nil.
type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.store.Users()
}

func (m *MemoryRepositoryManager) Favorites(dbx.DBTX) favorites.Repository {
	return m.store.Favorites()
}
