package pgsql

import (
	portsrepo "github.com/SscSPs/online_banking_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InterestRateRepo:   newPgxInterestRateRepository(dbPool),
		SavingsAccountRepo: newPgxSavingsAccountRepository(dbPool),
		SettlementRunRepo:  newPgxSettlementRunRepository(dbPool),
	}
}
