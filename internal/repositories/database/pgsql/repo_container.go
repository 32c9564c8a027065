package pgsql

import (
	portsrepo "github.com/poultrymitra/mitra_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BatchRepo:       newPgxBatchRepository(dbPool),
	}
}
