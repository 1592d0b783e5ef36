package services

import (
	portsrepo "github.com/SscSPs/online_banking_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, observer SettlementObserver) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.InterestRate = NewInterestRateService(repos.InterestRateRepo, repos.SavingsAccountRepo)
	container.Savings = NewSavingsService(
		repos.SavingsAccountRepo,
		repos.InterestRateRepo,
		repos.SettlementRunRepo,
		WithSettlementWorkers(cfg.SettlementWorkers),
		WithSettlementObserver(observer),
	)

	return container
}
