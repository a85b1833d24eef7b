package pgsql

import (
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		NodeRepo:  newPgxNodeRepository(dbPool),
		EntryRepo: newPgxEntryRepository(dbPool),
	}
}
