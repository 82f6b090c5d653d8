package pgsql

import (
	portsrepo "github.com/SscSPs/accounts_movements_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
	}
}
